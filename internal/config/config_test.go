package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"session.json", FormatJSON},
		{"session.yaml", FormatYAML},
		{"session.YML", FormatYAML},
		{"dir/session.toml", FormatTOML},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatForPath(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := FormatForPath("session.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, ".yaml", f.Extension())

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadSession_JSON(t *testing.T) {
	path := writeFile(t, "s.json", `{
		"businessData": {"industry": "Retail"},
		"keywordData": {"not": "an array"},
		"competitorData": {"businessCompetitors": [], "totalCompetitors": ["X", "Y"]}
	}`)

	in, err := LoadSession(path)
	require.NoError(t, err)

	s := onboard.Derive(in)
	assert.Equal(t, "Retail", s.Industry)
	assert.Empty(t, s.Keywords)
	assert.Equal(t, []string{"X", "Y"}, s.Competitors)
}

func TestLoadSession_YAML(t *testing.T) {
	path := writeFile(t, "s.yaml", `
languageLocationData:
  selections:
    - language: Portuguese
      location: Lisbon
keywordData:
  - surf
  - 2024
`)

	in, err := LoadSession(path)
	require.NoError(t, err)

	s := onboard.Derive(in)
	assert.Equal(t, "Portuguese", s.Language)
	assert.Equal(t, "Lisbon", s.Location)
	assert.Equal(t, []string{"surf", "2024"}, s.Keywords)
}

func TestLoadSession_TOML(t *testing.T) {
	path := writeFile(t, "s.toml", `
keywordData = ["a", "b"]

[businessData]
industry = "Travel"
category = "Hostels"

[[languageLocationData.selections]]
language = "Thai"
location = "Chiang Mai"
`)

	in, err := LoadSession(path)
	require.NoError(t, err)

	s := onboard.Derive(in)
	assert.Equal(t, "Travel", s.Industry)
	assert.Equal(t, "Hostels", s.Category)
	assert.Equal(t, "Thai", s.Language)
	assert.Equal(t, "Chiang Mai", s.Location)
	assert.Equal(t, []string{"a", "b"}, s.Keywords)
}

func TestLoadSession_EmptyFile(t *testing.T) {
	path := writeFile(t, "s.json", "  \n")

	in, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, onboard.IndustryPlaceholder, onboard.Derive(in).Industry)
}

func TestLoadSession_Errors(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading session file")

	bad := writeFile(t, "bad.json", `{"businessData": `)
	_, err = LoadSession(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing session file")

	_, err = LoadSession("session.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSaveSession_LoadsBack(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session"+ext)
			want := ExampleSession()

			require.NoError(t, SaveSession(path, want))

			got, err := LoadSession(path)
			require.NoError(t, err)
			assert.Equal(t, onboard.Derive(want), onboard.Derive(got))
		})
	}
}

func TestExampleSession(t *testing.T) {
	s := onboard.Derive(ExampleSession())

	assert.Len(t, s.Keywords, onboard.MaxDisplayItems)
	assert.Equal(t, 7, s.KeywordTotal)
	assert.Equal(t, []string{"Stumptown", "Blue Bottle", "Heart Coffee"}, s.Competitors)
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "onboard"), dir)
}
