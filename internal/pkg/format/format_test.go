package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10 * 1024 * 1024, "10.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bytes(tt.in))
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "30s", Duration(30*time.Second))
	assert.Equal(t, "1m30s", Duration(90*time.Second))
	assert.Equal(t, "2h30m15s", Duration(2*time.Hour+30*time.Minute+15*time.Second))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "ab  ", padding("ab", 4))
	assert.Equal(t, "上传  ", padding("上传", 4))
	assert.Equal(t, "abcdef", padding("abcdef", 4))
}
