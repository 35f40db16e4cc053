package service

import (
	"context"
	"oss-upload-helper/internal/credential"
	"oss-upload-helper/internal/log"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"oss-upload-helper/internal/uploader"
)

// UploadRequest holds the already-validated input of one upload.
// Either TokenURL is set (the key pair is then ignored) or both key fields are.
type UploadRequest struct {
	Endpoint        string
	TokenURL        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	LocalPath       string
	RemotePath      string
	PartSize        int // MiB
	TaskNum         int
}

// Validate checks the credential invariant and the upload target of the request
func (r UploadRequest) Validate() error {
	if r.TokenURL == "" && (r.AccessKeyID == "" || r.AccessKeySecret == "") {
		return apperrors.NewConfigError("either an STS URL or both AccessKeyId and AccessKeySecret are required", nil)
	}
	return uploader.ValidateTarget(r.Endpoint, r.BucketName, r.LocalPath, r.RemotePath, r.PartSize, r.TaskNum)
}

// UploadOutcome is the success flag plus the lines written while uploading
type UploadOutcome struct {
	Success bool
	Lines   []string
}

// UploadService resolves the credential and hands the transfer to the dispatcher
type UploadService struct {
	resolver   *credential.Resolver
	dispatcher *uploader.Dispatcher
}

// NewUploadService creates a new upload service
func NewUploadService(resolver *credential.Resolver, dispatcher *uploader.Dispatcher) *UploadService {
	return &UploadService{resolver: resolver, dispatcher: dispatcher}
}

// Upload runs one upload and reports whether it succeeded.
// A failed credential fetch is logged and reported as false before any storage client exists.
// Only invalid requests and unexpected faults are returned as errors.
func (s *UploadService) Upload(ctx context.Context, req UploadRequest, sink log.Sink) (bool, error) {
	sink.Infof("Start uploading to OSS...")
	ok, err := s.upload(ctx, req, sink)
	if ok {
		sink.Infof("Upload success!")
	} else {
		sink.Errorf("Upload failed!")
	}
	return ok, err
}

// UploadWithOutcome runs Upload and also collects every line written, in order
func (s *UploadService) UploadWithOutcome(ctx context.Context, req UploadRequest, sinks ...log.Sink) (UploadOutcome, error) {
	recorder := log.NewRecorder()
	ok, err := s.Upload(ctx, req, log.Tee(append([]log.Sink{recorder}, sinks...)...))
	return UploadOutcome{Success: ok, Lines: recorder.Strings()}, err
}

func (s *UploadService) upload(ctx context.Context, req UploadRequest, sink log.Sink) (bool, error) {
	if err := req.Validate(); err != nil {
		sink.Errorf("Upload request is invalid: %v", err)
		return false, err
	}

	if req.TokenURL != "" {
		sink.Infof("Fetching temporary credential from %s", credential.RedactURL(req.TokenURL))
	}
	cred, err := s.resolver.Resolve(ctx, req.TokenURL, req.AccessKeyID, req.AccessKeySecret)
	if err != nil {
		sink.Errorf("Failed to fetch temporary credential: %v", err)
		return false, nil
	}

	return s.dispatcher.Upload(sink, uploader.Params{
		Endpoint:    req.Endpoint,
		Credential:  cred,
		Bucket:      req.BucketName,
		LocalPath:   req.LocalPath,
		RemoteKey:   req.RemotePath,
		PartSizeMiB: req.PartSize,
		TaskNum:     req.TaskNum,
	})
}
