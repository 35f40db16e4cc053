// Package uploader picks the upload strategy for a local file, runs it
// against a storage client and reduces the result to success or failure.
package uploader

import (
	"errors"
	"fmt"
	"os"
	"oss-upload-helper/internal/credential"
	"oss-upload-helper/internal/infra/storage"
	"oss-upload-helper/internal/log"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"oss-upload-helper/internal/pkg/format"
	"strings"
)

// Params describes one upload
type Params struct {
	// Endpoint is the OSS host without scheme, e.g. oss-cn-hangzhou.aliyuncs.com
	Endpoint    string
	Credential  credential.Credential
	Bucket      string
	LocalPath   string
	RemoteKey   string
	PartSizeMiB int
	TaskNum     int
}

// Validate re-checks the parameters the caller is expected to have validated already
func (p Params) Validate() error {
	if p.Credential == nil {
		return apperrors.NewConfigError("credential is required", nil)
	}
	return ValidateTarget(p.Endpoint, p.Bucket, p.LocalPath, p.RemoteKey, p.PartSizeMiB, p.TaskNum)
}

// ValidateTarget checks everything about an upload except its credential,
// so callers can reject a request before resolving one.
func ValidateTarget(endpoint, bucket, localPath, remoteKey string, partSizeMiB, taskNum int) error {
	switch {
	case endpoint == "":
		return apperrors.NewConfigError("endpoint is required", nil)
	case strings.Contains(endpoint, "://"):
		return apperrors.NewConfigError(fmt.Sprintf("endpoint %q must not include a scheme", endpoint), nil)
	case bucket == "":
		return apperrors.NewConfigError("bucket name is required", nil)
	case localPath == "":
		return apperrors.NewConfigError("local path is required", nil)
	case remoteKey == "":
		return apperrors.NewConfigError("remote path is required", nil)
	case partSizeMiB <= 0:
		return apperrors.NewConfigError(fmt.Sprintf("part size must be positive, got %d", partSizeMiB), nil)
	case taskNum <= 0:
		return apperrors.NewConfigError(fmt.Sprintf("task number must be positive, got %d", taskNum), nil)
	}
	return nil
}

// EndpointURL returns the HTTPS URL of an endpoint host
func EndpointURL(endpoint string) string {
	return "https://" + endpoint
}

// Dispatcher uploads local files through clients created by its OpenFunc.
// It holds no per-upload state; every call owns its own client.
type Dispatcher struct {
	open storage.OpenFunc
}

// NewDispatcher creates a dispatcher
func NewDispatcher(open storage.OpenFunc) *Dispatcher {
	return &Dispatcher{open: open}
}

// Upload transfers p.LocalPath to p.Bucket/p.RemoteKey and reports true on success.
//
// Missing local files, service rejections and transport failures are written to sink and
// reported as false with a nil error. Invalid parameters and unexpected faults, including a
// panic inside the client, are returned as errors. The client is closed exactly once on
// every path after it has been opened.
func (d *Dispatcher) Upload(sink log.Sink, p Params) (bool, error) {
	if err := p.Validate(); err != nil {
		sink.Errorf("Upload request is invalid: %v", err)
		return false, err
	}

	info, err := os.Stat(p.LocalPath)
	if err != nil || !info.Mode().IsRegular() {
		sink.Errorf("Local file not found: %s", p.LocalPath)
		return false, nil
	}

	client, err := d.open(EndpointURL(p.Endpoint), p.Credential)
	if err != nil {
		sink.Errorf("Failed to create OSS client: %v", err)
		return false, nil
	}
	defer client.Close()

	return d.transfer(sink, client, p, info.Size())
}

func (d *Dispatcher) transfer(sink log.Sink, client storage.Client, p Params, size int64) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			sink.Errorf("Caught an unexpected error: %v", r)
			ok, err = false, apperrors.NewUnexpectedFaultError(fmt.Errorf("panic: %v", r))
		}
	}()

	partSize := PartSizeBytes(p.PartSizeMiB)
	threshold := Threshold(p.PartSizeMiB)

	var uploadErr error
	switch ChooseStrategy(size, p.PartSizeMiB) {
	case StrategySimple:
		sink.Infof("File size %s is less than %s, will use simple upload",
			format.Bytes(size), format.Bytes(threshold))
		uploadErr = client.PutObjectFromFile(p.Bucket, p.RemoteKey, p.LocalPath)
	case StrategyMultipart:
		sink.Infof("File size %s reaches %s, will use multipart upload (%d tasks, %s per part)",
			format.Bytes(size), format.Bytes(threshold), p.TaskNum, format.Bytes(partSize))
		uploadErr = client.UploadFile(p.Bucket, p.RemoteKey, p.LocalPath, storage.MultipartOptions{
			PartSize:         partSize,
			TaskNum:          p.TaskNum,
			EnableCheckpoint: true,
			Metadata:         map[string]string{},
		})
	}

	if uploadErr == nil {
		sink.Infof("Object %s uploaded to bucket %s", p.RemoteKey, p.Bucket)
		return true, nil
	}
	return report(sink, uploadErr)
}

// report writes the diagnostic lines for a failed upload
func report(sink log.Sink, err error) (bool, error) {
	switch Classify(err) {
	case ClassServiceRejection:
		var srvErr *storage.ServiceError
		errors.As(err, &srvErr)
		sink.Errorf("Caught a service error, which means your request made it to OSS, but was rejected with an error response for some reason.")
		sink.Errorf("Error Message: %s", srvErr.Message)
		sink.Errorf("Error Code: %s", srvErr.Code)
		sink.Errorf("Request ID: %s", srvErr.RequestID)
		sink.Errorf("Host ID: %s", srvErr.HostID)
		return false, nil
	case ClassTransportFailure:
		sink.Errorf("Caught a client error, which means the client encountered a serious internal problem while trying to communicate with OSS, such as not being able to access the network.")
		sink.Errorf("Error Message: %s", err.Error())
		return false, nil
	default:
		sink.Errorf("Caught an unexpected error: %v", err)
		return false, apperrors.NewUnexpectedFaultError(err)
	}
}
