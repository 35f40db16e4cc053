package config

import (
	"fmt"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"strconv"
	"strings"
	"unicode"
)

// Flags represents command line flags
type Flags struct {
	ConfigPath      string
	OssutilConfig   string
	Endpoint        string
	StsURL          string
	AccessKeyId     string
	AccessKeySecret string
	BucketName      string
	LocalPath       string
	RemotePath      string
	PartSize        int
	TaskNum         int
	IOLimitStr      string
	Progress        bool
	LogDir          string
	LogFileName     string
	LangFlag        string
	AIDiagnoseFlag  string
}

// LoadAndMergeConfig loads the config file (if any), the ossutil credentials (if any)
// and applies the command line flags on top
func LoadAndMergeConfig(flags *Flags) (*Config, error) {
	cfg := &Config{}
	if flags.ConfigPath != "" {
		loaded, err := LoadConfig(flags.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := MergeFlags(cfg, flags); err != nil {
		return nil, err
	}
	if flags.OssutilConfig != "" {
		creds, err := LoadOssutilConfig(flags.OssutilConfig)
		if err != nil {
			return nil, fmt.Errorf("load ossutil config error: %v", err)
		}
		creds.Apply(cfg)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// MergeFlags overrides config values with the flags that were set
func MergeFlags(cfg *Config, flags *Flags) error {
	overrideString(&cfg.Endpoint, StripScheme(flags.Endpoint))
	overrideString(&cfg.StsURL, flags.StsURL)
	overrideString(&cfg.AccessKeyId, flags.AccessKeyId)
	overrideString(&cfg.AccessKeySecret, flags.AccessKeySecret)
	overrideString(&cfg.BucketName, flags.BucketName)
	overrideString(&cfg.LocalPath, flags.LocalPath)
	overrideString(&cfg.RemotePath, flags.RemotePath)
	overrideString(&cfg.LogDir, flags.LogDir)
	overrideString(&cfg.LogFileName, flags.LogFileName)

	// 0 means "not passed"; negative values are kept so validation can report them
	if flags.PartSize != 0 {
		cfg.PartSize = flags.PartSize
	}
	if flags.TaskNum != 0 {
		cfg.TaskNum = flags.TaskNum
	}
	if flags.Progress {
		cfg.Progress = true
	}

	// Parse ioLimit from command line
	if flags.IOLimitStr != "" {
		parsedLimit, err := ParseRateLimit(flags.IOLimitStr)
		if err != nil {
			return apperrors.NewConfigError("invalid --io-limit", err)
		}
		cfg.IOLimit = parsedLimit
	}
	if cfg.IOLimit < 0 {
		cfg.IOLimit = 0 // -1 means unlimited
	}
	cfg.Endpoint = StripScheme(cfg.Endpoint)
	return nil
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// ParseRateLimit parses a rate limit string with units (e.g., "100MB/s", "1GB/s", "500KB/s")
// Returns bytes per second, or -1 for unlimited speed
// Supported units: B/s, KB/s, MB/s, GB/s (case insensitive)
func ParseRateLimit(rateStr string) (int64, error) {
	if rateStr == "" || rateStr == "0" {
		return 0, nil
	}
	if rateStr == "-1" {
		return -1, nil
	}

	input := rateStr
	rateStr = strings.TrimSpace(rateStr)
	rateStr = strings.ToUpper(rateStr)

	// Remove /s suffix if present
	rateStr = strings.TrimSuffix(rateStr, "/S")
	rateStr = strings.TrimSpace(rateStr)

	// Find where the number ends
	var numEnd int
	for i, r := range rateStr {
		if !unicode.IsDigit(r) && r != '.' {
			numEnd = i
			break
		}
		numEnd = i + 1
	}

	if numEnd == 0 {
		return 0, apperrors.NewParsingError("rate limit", input, fmt.Errorf("no number in %s", rateStr))
	}

	numStr := rateStr[:numEnd]
	value, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, apperrors.NewParsingError("rate limit", input, err)
	}
	if value <= 0 {
		return 0, nil
	}

	unitStr := strings.TrimSpace(rateStr[numEnd:])
	var multiplier float64
	switch unitStr {
	case "", "B", "BYTE", "BYTES":
		multiplier = 1
	case "KB", "K":
		multiplier = 1024
	case "MB", "M":
		multiplier = 1024 * 1024
	case "GB", "G":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, apperrors.NewParsingError("rate limit", input, fmt.Errorf("unsupported unit: %s (supported: B, KB, MB, GB)", unitStr))
	}

	return int64(value * multiplier), nil
}
