package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/onboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write an example session document",
	Long: `Write an example session document to PATH.

Without PATH the file is written to your config directory as
session.yaml (or .json/.toml with --format). With PATH the format
follows its extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing file")
	initCmd.Flags().String("format", "yaml", "format when no PATH is given: yaml, json, toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatName, _ := cmd.Flags().GetString("format")

	path, err := initPath(args, formatName, viper.GetString("config_dir"))
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("session file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := config.SaveSession(path, config.ExampleSession()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file with your wizard answers")
	fmt.Fprintf(out, "  2. Run 'onboard show --session %s' to check the summary\n", path)
	fmt.Fprintf(out, "  3. Run 'onboard --session %s' to open the summary screen\n", path)

	return nil
}

// initPath resolves where 'init' writes to.
func initPath(args []string, formatName, configDir string) (string, error) {
	if len(args) == 1 {
		if _, err := config.FormatForPath(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}

	format, err := config.ParseFormat(formatName)
	if err != nil {
		return "", err
	}
	if configDir == "" {
		configDir = "."
	}
	return filepath.Join(configDir, "session"+format.Extension()), nil
}
