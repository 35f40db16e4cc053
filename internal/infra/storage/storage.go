package storage

import (
	"fmt"
	"oss-upload-helper/internal/credential"
)

// Client is a live session bound to one endpoint and one credential.
// Close must be called exactly once when the upload is finished.
type Client interface {
	// PutObjectFromFile uploads the whole file in a single request
	PutObjectFromFile(bucket, key, localPath string) error

	// UploadFile uploads the file in parts and commits it once every part is done
	UploadFile(bucket, key, localPath string, opts MultipartOptions) error

	// Close releases the connections held by the client
	Close() error
}

// OpenFunc opens a client for endpoint (a full URL, scheme included)
type OpenFunc func(endpoint string, cred credential.Credential) (Client, error)

// MultipartOptions configures a chunked upload
type MultipartOptions struct {
	// PartSize is the size of each part in bytes
	PartSize int64

	// TaskNum is the number of parts uploaded concurrently
	TaskNum int

	// EnableCheckpoint lets an interrupted upload resume from a checkpoint file
	EnableCheckpoint bool

	// Metadata is attached to the committed object
	Metadata map[string]string
}

// ServiceError is a request the storage service received and rejected
type ServiceError struct {
	Code       string
	Message    string
	RequestID  string
	HostID     string
	StatusCode int
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("storage service error: status=%d code=%s message=%s request_id=%s host_id=%s",
		e.StatusCode, e.Code, e.Message, e.RequestID, e.HostID)
}
