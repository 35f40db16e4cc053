package config

import (
	"encoding/json"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// OSS configuration
	Endpoint        string `json:"endpoint"` // host without scheme
	StsURL          string `json:"stsUrl"`   // token endpoint; when set the key pair is ignored
	AccessKeyId     string `json:"accessKeyId"`
	AccessKeySecret string `json:"accessKeySecret"`
	BucketName      string `json:"bucketName"`

	// Upload configuration
	LocalPath  string `json:"localPath"`
	RemotePath string `json:"remotePath"`
	PartSize   int    `json:"partSize"` // MiB per part, also drives the multipart threshold
	TaskNum    int    `json:"taskNum"`  // concurrent part uploads
	IOLimit    int64  `json:"ioLimit"`  // bandwidth limit in bytes/second, 0 for unlimited
	Progress   bool   `json:"progress"` // print transfer progress to stderr

	// STS configuration
	StsTimeout int `json:"stsTimeout"` // token request timeout in seconds

	// Log configuration
	LogDir      string `json:"logDir"`      // empty disables the log file
	LogFileName string `json:"logFileName"` // relative to LogDir or absolute

	// AI diagnosis configuration
	QwenAPIKey string `json:"qwenAPIKey"` // Qwen API key for AI diagnosis
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = json.Unmarshal(data, &cfg)
	return &cfg, err
}

// SetDefaults sets default values for configuration fields
func (c *Config) SetDefaults() {
	if c.PartSize == 0 {
		c.PartSize = 10 // 10MiB parts, files from 100MiB go multipart
	}
	if c.TaskNum == 0 {
		c.TaskNum = 4
	}
	if c.StsTimeout == 0 {
		c.StsTimeout = 30
	}
	// Enforce maximum timeout: 300 seconds
	if c.StsTimeout > 300 {
		c.StsTimeout = 300
	}
}
