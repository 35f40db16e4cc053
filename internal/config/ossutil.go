package config

import (
	"strings"

	"github.com/alyu/configparser"
)

const ossutilSection = "Credentials"

// OssutilCredentials are the values read from an ossutil config file
type OssutilCredentials struct {
	Endpoint        string
	AccessKeyId     string
	AccessKeySecret string
}

// LoadOssutilConfig reads the [Credentials] section of an ossutil config file (~/.ossutilconfig)
func LoadOssutilConfig(filename string) (*OssutilCredentials, error) {
	configparser.Delimiter = "="
	parsed, err := configparser.Read(filename)
	if err != nil {
		return nil, err
	}
	section, err := parsed.Section(ossutilSection)
	if err != nil {
		section, err = parsed.Section(strings.ToLower(ossutilSection))
	}
	if err != nil {
		return nil, err
	}
	options := section.Options()
	return &OssutilCredentials{
		Endpoint:        StripScheme(lookup(options, "endpoint")),
		AccessKeyId:     lookup(options, "accessKeyID"),
		AccessKeySecret: lookup(options, "accessKeySecret"),
	}, nil
}

// lookup finds an option ignoring key case, ossutil versions differ in spelling
func lookup(options map[string]string, key string) string {
	if v, ok := options[key]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range options {
		if strings.EqualFold(k, key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Apply fills empty endpoint and key fields of cfg
func (o *OssutilCredentials) Apply(cfg *Config) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = o.Endpoint
	}
	if cfg.AccessKeyId == "" && cfg.AccessKeySecret == "" {
		cfg.AccessKeyId = o.AccessKeyId
		cfg.AccessKeySecret = o.AccessKeySecret
	}
}

// StripScheme removes an http:// or https:// prefix from an endpoint
func StripScheme(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimSuffix(endpoint, "/")
}
