package oss

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"oss-upload-helper/internal/credential"
	"oss-upload-helper/internal/infra/storage"
	"oss-upload-helper/internal/pkg/i18n"
	"testing"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testEndpoint = "https://oss-cn-hangzhou.aliyuncs.com"

func TestMain(m *testing.M) {
	i18n.Init(language.English)
	os.Exit(m.Run())
}

func TestOpenStatic(t *testing.T) {
	c, err := Open(testEndpoint, credential.Static{AccessKeyID: "AK", AccessKeySecret: "SK"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "AK", c.client.Config.AccessKeyID)
	assert.Empty(t, c.client.Config.SecurityToken)

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestOpenTemporary(t *testing.T) {
	c, err := Open(testEndpoint, credential.Temporary{AccessKeyID: "STS.A", AccessKeySecret: "B", SecurityToken: "C"}, Options{})
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, "STS.A", c.client.Config.AccessKeyID)
	assert.Equal(t, "C", c.client.Config.SecurityToken)
}

type otherCredential struct {
	credential.Static
}

func TestOpenRejectsUnknownCredential(t *testing.T) {
	_, err := Open(testEndpoint, otherCredential{}, Options{})
	assert.Error(t, err)
}

func TestNewOpener(t *testing.T) {
	client, err := NewOpener(Options{})(testEndpoint, credential.Static{AccessKeyID: "AK", AccessKeySecret: "SK"})
	require.NoError(t, err)
	assert.IsType(t, &Client{}, client)
	assert.NoError(t, client.Close())
}

func TestTranslate(t *testing.T) {
	srvErr := oss.ServiceError{
		Code:       "NoSuchBucket",
		Message:    "The specified bucket does not exist.",
		RequestID:  "abc-123",
		HostID:     "my-bucket.oss-cn-hangzhou.aliyuncs.com",
		StatusCode: 404,
	}
	want := &storage.ServiceError{
		Code:       "NoSuchBucket",
		Message:    "The specified bucket does not exist.",
		RequestID:  "abc-123",
		HostID:     "my-bucket.oss-cn-hangzhou.aliyuncs.com",
		StatusCode: 404,
	}

	assert.Equal(t, want, translate(srvErr))
	assert.Equal(t, want, translate(&srvErr))
	assert.Equal(t, want, translate(fmt.Errorf("complete multipart: %w", srvErr)))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translate(plain))
	assert.NoError(t, translate(nil))
}

func TestTrafficLimitBits(t *testing.T) {
	assert.Equal(t, int64(minTrafficLimit), trafficLimitBits(1))
	assert.Equal(t, int64(8*1024*1024), trafficLimitBits(1024*1024))
	assert.Equal(t, int64(maxTrafficLimit), trafficLimitBits(1<<40))
}

func TestRequestOptions(t *testing.T) {
	c := &Client{}
	assert.Empty(t, c.requestOptions())

	c.opts = Options{TrafficLimit: 1024 * 1024, Progress: &bytes.Buffer{}}
	assert.Len(t, c.requestOptions(), 2)
}

func TestProgressListener(t *testing.T) {
	var buf bytes.Buffer
	l := newProgressListener(&buf)

	l.ProgressChanged(&oss.ProgressEvent{EventType: oss.TransferStartedEvent, TotalBytes: 2048})
	l.ProgressChanged(&oss.ProgressEvent{EventType: oss.TransferDataEvent, ConsumedBytes: 1024, TotalBytes: 2048})
	assert.Equal(t, int64(1024), l.tracker.Transferred())

	l.ProgressChanged(&oss.ProgressEvent{EventType: oss.TransferCompletedEvent, ConsumedBytes: 2048, TotalBytes: 2048})
	assert.Equal(t, int64(2048), l.tracker.Transferred())
	assert.Contains(t, buf.String(), "Upload completed!")
	assert.Contains(t, buf.String(), "Total uploaded: 2.0 KB")
}
