package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ossutilFile = `[Credentials]
language=EN
endpoint=https://oss-cn-hangzhou.aliyuncs.com
accessKeyID=LTAI5tExample
accessKeySecret=secret
`

func TestLoadOssutilConfig(t *testing.T) {
	creds, err := LoadOssutilConfig(writeTemp(t, ".ossutilconfig", ossutilFile))
	require.NoError(t, err)
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", creds.Endpoint)
	assert.Equal(t, "LTAI5tExample", creds.AccessKeyId)
	assert.Equal(t, "secret", creds.AccessKeySecret)
}

func TestLoadOssutilConfigMissingFile(t *testing.T) {
	_, err := LoadOssutilConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestOssutilApplyKeepsExplicitValues(t *testing.T) {
	creds := &OssutilCredentials{Endpoint: "oss-cn-hangzhou.aliyuncs.com", AccessKeyId: "AK", AccessKeySecret: "SK"}

	cfg := &Config{Endpoint: "oss-cn-beijing.aliyuncs.com"}
	creds.Apply(cfg)
	assert.Equal(t, "oss-cn-beijing.aliyuncs.com", cfg.Endpoint)
	assert.Equal(t, "AK", cfg.AccessKeyId)
	assert.Equal(t, "SK", cfg.AccessKeySecret)

	cfg = &Config{AccessKeyId: "mine"}
	creds.Apply(cfg)
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", cfg.Endpoint)
	assert.Equal(t, "mine", cfg.AccessKeyId)
	assert.Empty(t, cfg.AccessKeySecret)
}

func TestStripScheme(t *testing.T) {
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", StripScheme(" https://oss-cn-hangzhou.aliyuncs.com/ "))
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", StripScheme("http://oss-cn-hangzhou.aliyuncs.com"))
	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", StripScheme("oss-cn-hangzhou.aliyuncs.com"))
}
