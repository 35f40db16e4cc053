package config

import (
	"fmt"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"oss-upload-helper/internal/pkg/format"
	"runtime"
	"strings"

	"github.com/gioco-play/easy-i18n/i18n"
)

// CheckResult is the verdict for one configuration item.
// Item and Message are i18n keys; Args fill Message.
type CheckResult struct {
	Item    string
	Value   string
	Message string
	Args    []interface{}
	Status  format.Status
}

// Text returns the translated message
func (r CheckResult) Text() string {
	if r.Message == "" {
		return ""
	}
	return i18n.Sprintf(r.Message, r.Args...)
}

// Check evaluates every field the upload needs, in form order
func (c *Config) Check() []CheckResult {
	return c.check(runtime.NumCPU())
}

func (c *Config) check(numCPU int) []CheckResult {
	var results []CheckResult
	add := func(item, value, msg string, status format.Status, args ...interface{}) {
		results = append(results, CheckResult{Item: item, Value: value, Message: msg, Args: args, Status: status})
	}

	if c.Endpoint == "" {
		add("Endpoint", "", "Endpoint is required", format.StatusError)
	} else {
		add("Endpoint", c.Endpoint, "", format.StatusOK)
	}

	hasKeyID, hasSecret := c.AccessKeyId != "", c.AccessKeySecret != ""
	switch {
	case c.StsURL == "" && !hasKeyID && !hasSecret:
		add("Credential", "", "STS URL and AccessKey pair cannot be empty at the same time", format.StatusError)
	case c.StsURL != "" && (hasKeyID || hasSecret):
		add("Credential", "STS", "AccessKey pair will be ignored when STS URL is set", format.StatusWarning)
	case c.StsURL == "" && (!hasKeyID || !hasSecret):
		add("Credential", "AccessKey", "AccessKeyId and AccessKeySecret must be set together", format.StatusError)
	case c.StsURL != "":
		add("Credential", "STS", "", format.StatusOK)
	default:
		add("Credential", "AccessKey", "", format.StatusOK)
	}

	required := []struct {
		item, value, msg string
	}{
		{"Bucket", c.BucketName, "Bucket name is required"},
		{"Local path", c.LocalPath, "Local path is required"},
		{"Remote path", c.RemotePath, "Remote path is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(r.item, "", r.msg, format.StatusError)
		} else {
			add(r.item, r.value, "", format.StatusOK)
		}
	}

	if c.PartSize <= 0 {
		add("Part size", fmt.Sprintf("%d", c.PartSize), "Part size must be a positive number of MiB", format.StatusError)
	} else {
		add("Part size", fmt.Sprintf("%d MiB", c.PartSize), "", format.StatusOK)
	}

	switch {
	case c.TaskNum <= 0:
		add("Task number", fmt.Sprintf("%d", c.TaskNum), "Task number must be positive", format.StatusError)
	case c.TaskNum > 2*numCPU:
		add("Task number", fmt.Sprintf("%d", c.TaskNum), "Task number %d is bigger than twice the CPU count (%d)",
			format.StatusWarning, c.TaskNum, numCPU)
	default:
		add("Task number", fmt.Sprintf("%d", c.TaskNum), "", format.StatusOK)
	}

	return results
}

// Validate returns the translated warnings, or a configuration error listing every failed item
func (c *Config) Validate() ([]string, error) {
	return summarize(c.Check())
}

func summarize(results []CheckResult) ([]string, error) {
	var warnings, problems []string
	for _, r := range results {
		switch r.Status {
		case format.StatusWarning:
			warnings = append(warnings, r.Text())
		case format.StatusError:
			problems = append(problems, r.Text())
		}
	}
	if len(problems) > 0 {
		return warnings, apperrors.NewConfigError(strings.Join(problems, "; "), nil)
	}
	return warnings, nil
}
