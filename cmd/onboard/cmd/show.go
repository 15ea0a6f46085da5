package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	showFormat string
	showRaw    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the summary without the TUI",
	Long: `Print the derived summary of a session document.

Formats:
  text      one line per card (default)
  markdown  a report; rendered for the terminal unless --raw or piped
  json      the derived values, including totals

Example:
  onboard show --session session.yaml
  onboard show -s session.toml --format markdown`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format: text, markdown, json")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print markdown source instead of rendering it")
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	in, err := loadSessionFromSettings(settings)
	if err != nil {
		return err
	}

	styled := !showRaw && isTerminal(os.Stdout)
	return writeSummary(cmd.OutOrStdout(), onboard.Derive(in), showFormat, styled, terminalWidth())
}

// writeSummary prints s in format. Markdown is rendered with glamour when
// styled is set.
func writeSummary(w io.Writer, s onboard.Summary, format string, styled bool, width int) error {
	switch format {
	case "text", "":
		_, err := io.WriteString(w, s.Text())
		return err

	case "markdown", "md":
		md := s.Markdown()
		if styled {
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("creating markdown renderer: %w", err)
			}
			if md, err = r.Render(md); err != nil {
				return fmt.Errorf("rendering markdown: %w", err)
			}
		}
		_, err := io.WriteString(w, md)
		return err

	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling summary: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the stdout width, or 80 when it can't be read.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
