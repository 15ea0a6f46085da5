package cmd

import (
	"fmt"

	"github.com/f3rmion/onboard/internal/clipboard"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the plain-text report to the clipboard",
	RunE:  runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	in, err := loadSessionFromSettings(settings)
	if err != nil {
		return err
	}

	if err := clipboard.Write(onboard.Derive(in).Text()); err != nil {
		return fmt.Errorf("copying report: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Copied report to clipboard")
	return nil
}
