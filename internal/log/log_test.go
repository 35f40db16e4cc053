package log

import (
	"bytes"
	"fmt"
	"os"
	"oss-upload-helper/internal/pkg/i18n"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	i18n.Init(language.English)
	os.Exit(m.Run())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.Infof("Start uploading to OSS...")
	rec.Errorf("Error Code: %s", "AccessDenied")

	assert.Equal(t, []Line{
		{Level: LevelInfo, Message: "Start uploading to OSS..."},
		{Level: LevelError, Message: "Error Code: AccessDenied"},
	}, rec.Lines())
	assert.Equal(t, "Start uploading to OSS...\nERROR: Error Code: AccessDenied", rec.Text())
}

func TestTee(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	sink := Tee(a, b)
	sink.Infof("Upload success!")
	sink.Errorf("Upload failed!")

	assert.Equal(t, a.Strings(), b.Strings())
	assert.Equal(t, []string{"Upload success!", "ERROR: Upload failed!"}, a.Strings())
}

func TestConsoleContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewConsole(&buf, "OSS")
	ctx.Infof("Object %s uploaded to bucket %s", "a.txt", "my-bucket")
	ctx.Errorf("Upload failed!")
	ctx.Close()

	assert.Empty(t, ctx.FileName())
	assert.Contains(t, buf.String(), "Object a.txt uploaded to bucket my-bucket\n")
	assert.Contains(t, buf.String(), "ERROR: Upload failed!")
}

func TestContextWritesFile(t *testing.T) {
	tests := []struct {
		name        string
		logFileName func(dir string) string
		wantPath    func(dir string) string
	}{
		{
			name:        "relative name",
			logFileName: func(string) string { return "upload.log" },
			wantPath:    func(dir string) string { return filepath.Join(dir, "upload.log") },
		},
		{
			name:        "absolute name",
			logFileName: func(dir string) string { return filepath.Join(dir, "nested", "upload.log") },
			wantPath:    func(dir string) string { return filepath.Join(dir, "nested", "upload.log") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			ctx, err := NewContext(nil, dir, tt.logFileName(dir), "OSS")
			require.NoError(t, err)
			ctx.Infof("Upload success!")
			ctx.Errorf("Request ID: %s", "abc-123")
			ctx.Close()

			assert.Equal(t, tt.wantPath(dir), ctx.FileName())
			data, err := os.ReadFile(ctx.FileName())
			require.NoError(t, err)
			content := string(data)
			assert.Contains(t, content, "[SYSTEM] === OSS Upload Helper Log Started ===")
			assert.Contains(t, content, "[OSS] Upload success!")
			assert.Contains(t, content, "[OSS] ERROR: Request ID: abc-123")
			assert.Contains(t, content, "[SYSTEM] === OSS Upload Helper Log Ended ===")
		})
	}
}

func TestContextAutoNameKeepsRecentLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, fmt.Sprintf("oss-upload-helper-200001010000%02d.log", i))
		require.NoError(t, os.WriteFile(name, nil, 0644))
	}

	ctx, err := NewContext(nil, dir, "", "OSS")
	require.NoError(t, err)
	defer ctx.Close()

	assert.True(t, strings.HasPrefix(filepath.Base(ctx.FileName()), "oss-upload-helper-"))
	matches, err := filepath.Glob(filepath.Join(dir, "oss-upload-helper-*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 10)
	_, err = os.Stat(filepath.Join(dir, "oss-upload-helper-20000101000000.log"))
	assert.True(t, os.IsNotExist(err))
}
