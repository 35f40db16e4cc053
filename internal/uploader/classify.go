package uploader

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"oss-upload-helper/internal/infra/storage"
	"syscall"
)

// Class is the category of a failed transfer
type Class int

const (
	// ClassServiceRejection means OSS received the request and answered with an error
	ClassServiceRejection Class = iota + 1
	// ClassTransportFailure means the request could not be completed from this side
	ClassTransportFailure
	// ClassUnexpected is anything else
	ClassUnexpected
)

func (c Class) String() string {
	switch c {
	case ClassServiceRejection:
		return "ServiceRejection"
	case ClassTransportFailure:
		return "TransportFailure"
	default:
		return "Unexpected"
	}
}

// Classify sorts an upload error. Service rejections are checked first,
// then local/network failures; whatever remains is unexpected.
func Classify(err error) Class {
	var srvErr *storage.ServiceError
	if errors.As(err, &srvErr) {
		return ClassServiceRejection
	}
	if isTransportFailure(err) {
		return ClassTransportFailure
	}
	return ClassUnexpected
}

func isTransportFailure(err error) bool {
	// *url.Error and *net.OpError both implement net.Error
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	for _, target := range []error{
		io.EOF,
		io.ErrUnexpectedEOF,
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.EPIPE,
		context.DeadlineExceeded,
		context.Canceled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
