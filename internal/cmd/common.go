package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"oss-upload-helper/internal/config"
	"oss-upload-helper/internal/credential"
	"oss-upload-helper/internal/infra/storage/oss"
	"oss-upload-helper/internal/service"
	"oss-upload-helper/internal/uploader"
	"oss-upload-helper/pkg/version"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gioco-play/easy-i18n/i18n"
	"golang.org/x/term"
)

// outputHeader displays the tool header
func outputHeader(w io.Writer) {
	bar := strings.Repeat("#", 80)
	title := "OSS Upload Helper"
	subtitle := "Upload local files to Alibaba Cloud OSS"
	ver := "v" + version.Get()
	timeStr := time.Now().Format("2006-01-02 15:04:05")

	fmt.Fprintf(w, "%s\n", bar)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", center(title)), title)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", center(subtitle)), subtitle)
	fmt.Fprintf(w, "%sVersion: %s    Time: %s\n", strings.Repeat(" ", 10), ver, timeStr)
	fmt.Fprintf(w, "%s\n", bar)
}

func center(s string) int {
	pad := (80 - len(s)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, color.YellowString("WARNING: %s", w))
	}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptSecret asks for the AccessKeySecret when only the id was configured
func promptSecret(cfg *config.Config) {
	if cfg.StsURL != "" || cfg.AccessKeyId == "" || cfg.AccessKeySecret != "" || !isInteractive() {
		return
	}
	i18n.Printf("Please input access key secret: ")
	secret, _ := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	cfg.AccessKeySecret = strings.TrimSpace(string(secret))
}

func newUploadService(cfg *config.Config) *service.UploadService {
	resolver := credential.NewResolver(&http.Client{Timeout: time.Duration(cfg.StsTimeout) * time.Second})

	opts := oss.Options{TrafficLimit: cfg.IOLimit}
	if cfg.Progress {
		opts.Progress = os.Stderr
	}
	return service.NewUploadService(resolver, uploader.NewDispatcher(oss.NewOpener(opts)))
}

func uploadRequest(cfg *config.Config) service.UploadRequest {
	return service.UploadRequest{
		Endpoint:        cfg.Endpoint,
		TokenURL:        cfg.StsURL,
		AccessKeyID:     cfg.AccessKeyId,
		AccessKeySecret: cfg.AccessKeySecret,
		BucketName:      cfg.BucketName,
		LocalPath:       cfg.LocalPath,
		RemotePath:      cfg.RemotePath,
		PartSize:        cfg.PartSize,
		TaskNum:         cfg.TaskNum,
	}
}
