package cmd

import (
	"context"
	"fmt"
	"os"
	"oss-upload-helper/internal/config"
	"oss-upload-helper/internal/pkg/i18n"

	"github.com/spf13/cobra"
)

var (
	// Flags shared by every command
	flags = &config.Flags{}

	// Config object shared across commands
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oss-upload-helper",
	Short: "OSS Upload Helper - upload a local file to Alibaba Cloud OSS",
	Long: `OSS Upload Helper uploads one local file to an Alibaba Cloud OSS bucket.
Files smaller than ten part sizes are sent with a single request, larger files
are uploaded in concurrent parts with checkpoint support. Credentials come from
a static AccessKey pair or from an STS token endpoint.

Examples:
  # Upload with an AccessKey pair
  oss-upload-helper upload --endpoint oss-cn-hangzhou.aliyuncs.com --access-key-id AK \
    --access-key-secret SK --bucket my-bucket --local-path app.tar.gz --remote-path release/app.tar.gz

  # Upload with a temporary credential from an STS endpoint
  oss-upload-helper upload --config upload.json --sts-url https://sts.example.com/token

  # Check the configuration without uploading
  oss-upload-helper check --config upload.json

  # Show version
  oss-upload-helper version`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize i18n
		i18n.InitAuto()
		i18n.SetLangFlag(flags.LangFlag)

		loaded, err := config.LoadAndMergeConfig(flags)
		if err != nil {
			return fmt.Errorf("load config error: %v", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file path (optional, JSON)")
	pf.StringVar(&flags.OssutilConfig, "ossutil-config", "", "read endpoint and AccessKey pair from an ossutil config file")
	pf.StringVar(&flags.LangFlag, "lang", "", "language: zh (Chinese) or en (English), auto-detect if unset")

	// OSS flags
	pf.StringVar(&flags.Endpoint, "endpoint", "", "OSS endpoint host, e.g. oss-cn-hangzhou.aliyuncs.com")
	pf.StringVar(&flags.StsURL, "sts-url", "", "STS token endpoint; when set the AccessKey pair is ignored")
	pf.StringVar(&flags.AccessKeyId, "access-key-id", "", "AccessKeyId")
	pf.StringVar(&flags.AccessKeySecret, "access-key-secret", "", "AccessKeySecret (asked from the tty if omitted)")
	pf.StringVar(&flags.BucketName, "bucket", "", "bucket name")

	// Upload flags
	pf.StringVar(&flags.LocalPath, "local-path", "", "local file to upload")
	pf.StringVar(&flags.RemotePath, "remote-path", "", "object key in the bucket")
	pf.IntVar(&flags.PartSize, "part-size", 0, "part size in MiB (default: 10)")
	pf.IntVar(&flags.TaskNum, "task-num", 0, "concurrent part uploads (default: 4)")
	pf.StringVar(&flags.IOLimitStr, "io-limit", "", "bandwidth limit with unit (e.g., '10MB/s'), -1 for unlimited")
	pf.BoolVar(&flags.Progress, "progress", false, "show transfer progress")

	// Log flags
	pf.StringVar(&flags.LogDir, "log-dir", "", "directory for the upload log file (disabled if empty)")
	pf.StringVar(&flags.LogFileName, "log-file", "", "custom log file name (relative to --log-dir or absolute)")
}

// GetConfig returns the global config object
func GetConfig() *config.Config {
	return cfg
}
