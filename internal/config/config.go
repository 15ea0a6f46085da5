// Package config handles user settings and the session documents that
// earlier wizard steps hand to the summary screen.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/f3rmion/onboard/internal/onboard"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for session files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported session format")

// Format is a session document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SessionExtensions lists the file extensions LoadSession understands.
var SessionExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// Settings holds the user's configuration.
type Settings struct {
	ConfigDir string `mapstructure:"config_dir"`
	Session   string `mapstructure:"session"`
	LogFile   string `mapstructure:"log_file"`
	Watch     bool   `mapstructure:"watch"`
	Verbose   bool   `mapstructure:"verbose"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Extension returns the canonical file extension for f.
func (f Format) Extension() string {
	return "." + string(f)
}

// LoadSession reads a session document and converts it into inputs. Only
// I/O and syntax errors are reported; badly shaped values are dropped.
func LoadSession(path string) (onboard.Inputs, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return onboard.Inputs{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return onboard.Inputs{}, fmt.Errorf("reading session file: %w", err)
	}

	doc, err := DecodeSession(data, format)
	if err != nil {
		return onboard.Inputs{}, fmt.Errorf("parsing session file: %w", err)
	}

	return onboard.FromMap(doc), nil
}

// DecodeSession decodes raw bytes into a generic document. Empty input
// decodes to an empty document.
func DecodeSession(data []byte, format Format) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var doc map[string]any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// EncodeSession encodes inputs in the given format.
func EncodeSession(in onboard.Inputs, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(in, "", "  ")
	case FormatYAML:
		return yaml.Marshal(&in)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(in); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// SaveSession writes inputs to path, picking the format from its extension.
func SaveSession(path string, in onboard.Inputs) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	out, err := EncodeSession(in, format)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	return nil
}

// ExampleSession returns the inputs written by 'onboard init'.
func ExampleSession() onboard.Inputs {
	return onboard.Inputs{
		Business: &onboard.BusinessData{
			Industry: "Food & Beverage",
			Category: "Specialty Coffee",
		},
		LanguageLocation: &onboard.LanguageLocationData{
			Selections: []onboard.LanguageSelection{
				{Language: "English", Location: "Portland, OR"},
			},
		},
		Keywords: []string{
			"specialty coffee",
			"cold brew",
			"coffee beans online",
			"espresso bar",
			"pour over",
			"coffee subscription",
			"latte art",
		},
		Competitors: &onboard.CompetitorData{
			BusinessCompetitors: []string{"Stumptown-101", "Blue Bottle-102", "Heart Coffee"},
			TotalCompetitors:    []string{"Stumptown-101", "Blue Bottle-102", "Heart Coffee", "Coava-204"},
		},
		Website: map[string]any{
			"url": "https://example.com",
		},
	}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboard"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "onboard"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
