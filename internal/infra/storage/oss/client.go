package oss

import (
	"errors"
	"io"
	"net/http"
	"oss-upload-helper/internal/credential"
	"oss-upload-helper/internal/infra/storage"
	"oss-upload-helper/internal/pkg/progress"
	"sync"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSS accepts traffic limits between 100KB/s and 100MB/s, expressed in bit/s
const (
	minTrafficLimit = 100 * 1024 * 8
	maxTrafficLimit = 100 * 1024 * 1024 * 8
)

// Options tune every client created by an opener
type Options struct {
	// TrafficLimit is the per-request bandwidth cap in bytes/second (0 for unlimited)
	TrafficLimit int64

	// Progress receives transfer progress; nil disables progress output
	Progress io.Writer
}

// NewOpener returns a storage.OpenFunc creating Alibaba Cloud OSS clients
func NewOpener(opts Options) storage.OpenFunc {
	return func(endpoint string, cred credential.Credential) (storage.Client, error) {
		return Open(endpoint, cred, opts)
	}
}

// Client implements storage.Client for Alibaba Cloud OSS
type Client struct {
	client     *oss.Client
	httpClient *http.Client
	opts       Options
	closeOnce  sync.Once
}

// Open creates an OSS client. Static credentials use the key pair only,
// temporary credentials add the STS security token.
func Open(endpoint string, cred credential.Credential, opts Options) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	httpClient := &http.Client{Transport: transport}

	var (
		client *oss.Client
		err    error
	)
	switch c := cred.(type) {
	case credential.Static:
		client, err = oss.New(endpoint, c.AccessKeyID, c.AccessKeySecret, oss.HTTPClient(httpClient))
	case credential.Temporary:
		client, err = oss.New(endpoint, c.AccessKeyID, c.AccessKeySecret,
			oss.SecurityToken(c.SecurityToken), oss.HTTPClient(httpClient))
	default:
		err = errors.New("unsupported credential type")
	}
	if err != nil {
		httpClient.CloseIdleConnections()
		return nil, err
	}
	return &Client{client: client, httpClient: httpClient, opts: opts}, nil
}

// PutObjectFromFile uploads the whole file with a single PutObject request
func (c *Client) PutObjectFromFile(bucketName, key, localPath string) error {
	bucket, err := c.client.Bucket(bucketName)
	if err != nil {
		return translate(err)
	}
	return translate(bucket.PutObjectFromFile(key, localPath, c.requestOptions()...))
}

// UploadFile runs the SDK resumable upload: the file is split into opts.PartSize parts,
// opts.TaskNum parts are in flight at once and the upload is completed after the last part.
func (c *Client) UploadFile(bucketName, key, localPath string, opts storage.MultipartOptions) error {
	bucket, err := c.client.Bucket(bucketName)
	if err != nil {
		return translate(err)
	}
	options := c.requestOptions()
	options = append(options, oss.Routines(opts.TaskNum), oss.Checkpoint(opts.EnableCheckpoint, ""))
	for k, v := range opts.Metadata {
		options = append(options, oss.Meta(k, v))
	}
	return translate(bucket.UploadFile(key, localPath, opts.PartSize, options...))
}

// Close releases idle connections; later calls are no-ops
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
	return nil
}

func (c *Client) requestOptions() []oss.Option {
	var options []oss.Option
	if c.opts.Progress != nil {
		options = append(options, oss.Progress(newProgressListener(c.opts.Progress)))
	}
	// If traffic is 0, don't apply rate limiting (unlimited)
	if c.opts.TrafficLimit > 0 {
		options = append(options, oss.TrafficLimitHeader(trafficLimitBits(c.opts.TrafficLimit)))
	}
	return options
}

func trafficLimitBits(bytesPerSecond int64) int64 {
	bits := bytesPerSecond * 8
	if bits < minTrafficLimit {
		return minTrafficLimit
	}
	if bits > maxTrafficLimit {
		return maxTrafficLimit
	}
	return bits
}

// translate maps SDK service errors onto storage.ServiceError; other errors pass through
func translate(err error) error {
	if err == nil {
		return nil
	}
	var srvErr oss.ServiceError
	if errors.As(err, &srvErr) {
		return fromServiceError(srvErr)
	}
	var srvErrPtr *oss.ServiceError
	if errors.As(err, &srvErrPtr) && srvErrPtr != nil {
		return fromServiceError(*srvErrPtr)
	}
	return err
}

func fromServiceError(e oss.ServiceError) *storage.ServiceError {
	return &storage.ServiceError{
		Code:       e.Code,
		Message:    e.Message,
		RequestID:  e.RequestID,
		HostID:     e.HostID,
		StatusCode: e.StatusCode,
	}
}

// progressListener implements the OSS progress listener on top of a progress.Tracker
type progressListener struct {
	tracker *progress.Tracker
}

func newProgressListener(w io.Writer) *progressListener {
	return &progressListener{tracker: progress.NewTracker(w, 0)}
}

// ProgressChanged is called when upload progress changes
func (l *progressListener) ProgressChanged(event *oss.ProgressEvent) {
	switch event.EventType {
	case oss.TransferStartedEvent:
		l.tracker.SetTotal(event.TotalBytes)
	case oss.TransferDataEvent:
		l.tracker.Set(event.ConsumedBytes)
	case oss.TransferCompletedEvent:
		l.tracker.Set(event.ConsumedBytes)
		l.tracker.Complete()
	case oss.TransferFailedEvent:
		l.tracker.Fail()
	default:
	}
}
