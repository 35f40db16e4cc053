package cmd

import (
	"fmt"
	"os"
	apperrors "oss-upload-helper/internal/pkg/errors"
	"oss-upload-helper/internal/pkg/format"
	"oss-upload-helper/internal/uploader"

	"github.com/gioco-play/easy-i18n/i18n"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the upload configuration",
	Long: `Validate the upload configuration and show which upload strategy would be used,
without contacting OSS.

Examples:
  oss-upload-helper check --config upload.json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	i18n.Printf("Checking upload configuration...\n")

	results := cfg.Check()
	for _, r := range results {
		format.Output(i18n.Sprintf(r.Item), r.Value, r.Text(), r.Status)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		i18n.Printf("Configuration check failed: %v\n", err)
		return err
	}

	info, statErr := os.Stat(cfg.LocalPath)
	if statErr != nil || !info.Mode().IsRegular() {
		format.Output(i18n.Sprintf("Strategy"), "", i18n.Sprintf("Local file not found: %s", cfg.LocalPath), format.StatusError)
		return apperrors.NewLocalFileNotFoundError(cfg.LocalPath, statErr)
	}
	strategy := uploader.ChooseStrategy(info.Size(), cfg.PartSize)
	value := fmt.Sprintf("%s (%s)", i18n.Sprintf(string(strategy)), format.Bytes(info.Size()))
	format.Output(i18n.Sprintf("Strategy"), value, "", format.StatusOK)

	printWarnings(warnings)
	i18n.Printf("Configuration check passed\n")
	return nil
}
