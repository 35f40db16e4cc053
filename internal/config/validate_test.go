package config

import (
	apperrors "oss-upload-helper/internal/pkg/errors"
	"oss-upload-helper/internal/pkg/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Endpoint:        "oss-cn-hangzhou.aliyuncs.com",
		AccessKeyId:     "AK",
		AccessKeySecret: "SK",
		BucketName:      "my-bucket",
		LocalPath:       "app.tar.gz",
		RemotePath:      "release/app.tar.gz",
		PartSize:        10,
		TaskNum:         2,
	}
}

func resultFor(t *testing.T, results []CheckResult, item string) CheckResult {
	t.Helper()
	for _, r := range results {
		if r.Item == item {
			return r
		}
	}
	t.Fatalf("no check result for %s", item)
	return CheckResult{}
}

func TestCheckCredential(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		status format.Status
		value  string
	}{
		{"key pair", func(c *Config) {}, format.StatusOK, "AccessKey"},
		{"sts only", func(c *Config) { c.AccessKeyId, c.AccessKeySecret, c.StsURL = "", "", "https://sts.example.com" }, format.StatusOK, "STS"},
		{"sts and key pair", func(c *Config) { c.StsURL = "https://sts.example.com" }, format.StatusWarning, "STS"},
		{"nothing", func(c *Config) { c.AccessKeyId, c.AccessKeySecret = "", "" }, format.StatusError, ""},
		{"id only", func(c *Config) { c.AccessKeySecret = "" }, format.StatusError, "AccessKey"},
		{"secret only", func(c *Config) { c.AccessKeyId = "" }, format.StatusError, "AccessKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			r := resultFor(t, cfg.check(4), "Credential")
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.value, r.Value)
		})
	}
}

func TestCheckTaskNumber(t *testing.T) {
	cfg := validConfig()
	cfg.TaskNum = 9
	r := resultFor(t, cfg.check(4), "Task number")
	assert.Equal(t, format.StatusWarning, r.Status)
	assert.Equal(t, "Task number 9 is bigger than twice the CPU count (4)", r.Text())

	cfg.TaskNum = 8
	assert.Equal(t, format.StatusOK, resultFor(t, cfg.check(4), "Task number").Status)

	cfg.TaskNum = 0
	assert.Equal(t, format.StatusError, resultFor(t, cfg.check(4), "Task number").Status)
}

func TestCheckRequiredFields(t *testing.T) {
	cfg := &Config{PartSize: -1, TaskNum: 1}
	results := cfg.check(4)

	for _, item := range []string{"Endpoint", "Bucket", "Local path", "Remote path", "Part size"} {
		assert.Equal(t, format.StatusError, resultFor(t, results, item).Status, item)
	}
	assert.Equal(t, "Bucket name is required", resultFor(t, results, "Bucket").Text())
}

func TestValidate(t *testing.T) {
	warnings, err := validConfig().Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	cfg := validConfig()
	cfg.StsURL = "https://sts.example.com"
	warnings, err = cfg.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"AccessKey pair will be ignored when STS URL is set"}, warnings)

	cfg = validConfig()
	cfg.Endpoint = ""
	cfg.BucketName = " "
	_, err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "Endpoint is required; Bucket name is required")
}
