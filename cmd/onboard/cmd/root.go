// Package cmd contains all CLI commands for the onboard tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/onboard/internal/config"
	"github.com/f3rmion/onboard/internal/logging"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/f3rmion/onboard/internal/session"
	"github.com/f3rmion/onboard/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// errNoSession is returned by commands that need a session document.
var errNoSession = errors.New("no session file given (use --session or ONBOARD_SESSION)")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Review an onboarding wizard's answers before the Dashboard",
	Long: `onboard shows the final summary screen of the onboarding wizard.

The summary lists the selected business, language and location, keywords
and competitors. From there you can go Back, or continue to the Dashboard
after a short loading animation.

Running 'onboard' without --session opens a file picker for a session
document (.json, .yaml, .yml or .toml). When the program exits it prints
how the wizard ended: back, dashboard or quit.`,
	RunE:         runTUI,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/onboard)")
	flags.StringP("session", "s", "", "session document to summarize")
	flags.Bool("verbose", false, "verbose logging")
	flags.String("log-file", "", "write logs to this file")
	flags.Bool("watch", false, "reload the session document when it changes")

	viper.BindPFlag("session", flags.Lookup("session"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("log_file", flags.Lookup("log-file"))
	viper.BindPFlag("watch", flags.Lookup("watch"))

	viper.SetDefault("alt_screen", true)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("ONBOARD")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(viper.GetString("config_dir"))
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Warning: could not read config file:", err)
		}
	}
}

// loadSettings materializes the merged flag, env and file settings.
func loadSettings() (config.Settings, error) {
	var s config.Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}

// loadSessionFromSettings reads the session document named in settings.
func loadSessionFromSettings(s config.Settings) (onboard.Inputs, error) {
	if s.Session == "" {
		return onboard.Inputs{}, errNoSession
	}
	return config.LoadSession(s.Session)
}

// pickerDir is where the file picker opens: the config dir when it exists,
// otherwise the working directory.
func pickerDir(s config.Settings) string {
	if s.ConfigDir != "" {
		if info, err := os.Stat(s.ConfigDir); err == nil && info.IsDir() {
			return s.ConfigDir
		}
	}
	return ""
}

// runTUI launches the summary screen.
func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(settings.LogFile, settings.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()
	cliLog := logging.For(logger, logging.ComponentCLI)
	tuiLog := logging.For(logger, logging.ComponentTUI)

	var app tui.AppModel
	if settings.Session != "" {
		in, err := config.LoadSession(settings.Session)
		if err != nil {
			return err
		}
		app = tui.NewAppWithSession(tuiLog, in, settings.Session)
	} else {
		app = tui.NewApp(tuiLog, pickerDir(settings))
	}

	var opts []tea.ProgramOption
	if settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)

	if settings.Watch {
		if settings.Session == "" {
			cliLog.Warn("--watch needs --session; not watching")
		} else {
			w, err := startWatcher(cmd, p, settings.Session, logger)
			if err != nil {
				return err
			}
			defer w.Stop()
		}
	}

	cliLog.Info("starting", zap.String("session", settings.Session), zap.Bool("watch", settings.Watch))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	if m, ok := final.(tui.AppModel); ok && m.Outcome() != tui.OutcomeNone {
		fmt.Fprintln(cmd.OutOrStdout(), m.Outcome())
	}
	return nil
}

// startWatcher forwards session document changes into the running program.
func startWatcher(cmd *cobra.Command, p *tea.Program, path string, logger *zap.Logger) (*session.Watcher, error) {
	log := logging.For(logger, logging.ComponentSession)

	w, err := session.NewWatcher(path,
		session.WithOnReload(func(in onboard.Inputs) {
			log.Info("session reloaded", zap.String("path", path))
			p.Send(tui.SessionLoadedMsg{Inputs: in, Path: path})
		}),
		session.WithOnError(func(err error) {
			p.Send(tui.SessionLoadedMsg{Path: path, Err: err})
		}),
	)
	if err != nil {
		return nil, err
	}

	if err := w.Start(cmd.Context()); err != nil {
		return nil, fmt.Errorf("watching session file: %w", err)
	}
	return w, nil
}
