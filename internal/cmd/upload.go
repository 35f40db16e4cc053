package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"oss-upload-helper/internal/infra/ai"
	"oss-upload-helper/internal/log"
	"strings"

	"github.com/fatih/color"
	"github.com/gioco-play/easy-i18n/i18n"
	"github.com/spf13/cobra"
)

var errUploadFailed = errors.New("upload failed")

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a local file to OSS",
	Long: `Upload a local file to an OSS bucket.

Files smaller than 10 x part-size are uploaded with a single PutObject request,
larger files with a resumable multipart upload using --task-num concurrent parts.

Examples:
  # Upload using a config file
  oss-upload-helper upload --config upload.json

  # Upload a large file with 32MiB parts and 8 concurrent tasks
  oss-upload-helper upload --config upload.json --local-path big.iso --remote-path iso/big.iso \
    --part-size 32 --task-num 8 --progress`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&flags.AIDiagnoseFlag, "ai-diagnose", "", "AI diagnosis on upload failure: on/off. If not set, prompt interactively.")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	promptSecret(cfg)

	warnings, err := cfg.Validate()
	printWarnings(warnings)
	if err != nil {
		i18n.Printf("Configuration check failed: %v\n", err)
		return err
	}

	outputHeader(os.Stdout)

	console := log.NewConsole(os.Stdout, "OSS")
	logCtx := console
	if cfg.LogDir != "" || cfg.LogFileName != "" {
		fileCtx, err := log.NewContext(os.Stdout, cfg.LogDir, cfg.LogFileName, "OSS")
		if err != nil {
			return fmt.Errorf("failed to create log context: %v", err)
		}
		defer fileCtx.Close()
		logCtx = fileCtx
	}

	ctx := cmd.Context()
	outcome, err := newUploadService(cfg).UploadWithOutcome(ctx, uploadRequest(cfg), logCtx)
	if outcome.Success {
		return nil
	}

	if logCtx.FileName() != "" {
		i18n.Printf("You can check the log file for details: %s\n", logCtx.FileName())
	}
	diagnose(ctx, cfg.QwenAPIKey, strings.Join(outcome.Lines, "\n"))

	if err != nil {
		return err
	}
	return errUploadFailed
}

// diagnose offers an AI explanation of a failed upload
func diagnose(ctx context.Context, apiKey, logContent string) {
	switch flags.AIDiagnoseFlag {
	case "on":
	case "off":
		return
	default:
		if !isInteractive() {
			return
		}
		var input string
		i18n.Printf("Would you like to use AI diagnosis? (y/n): ")
		fmt.Scanln(&input)
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "y" && input != "yes" {
			return
		}
	}

	if apiKey == "" {
		i18n.Printf("Qwen API Key is required for AI diagnosis. Please set it in config.\n")
		return
	}
	suggestion, err := ai.NewQwenClient(apiKey).Diagnose(ctx, logContent)
	if err != nil {
		i18n.Printf("AI diagnosis failed: %v\n", err)
		return
	}
	fmt.Print(color.YellowString(i18n.Sprintf("AI diagnosis suggestion:\n")))
	fmt.Println(color.YellowString(suggestion))
}
