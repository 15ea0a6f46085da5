package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/f3rmion/onboard/internal/config"
	"github.com/f3rmion/onboard/internal/onboard"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	s := onboard.Derive(config.ExampleSession())

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "text", false, 80))
		assert.Contains(t, buf.String(), "Business:    Food & Beverage (Specialty Coffee)")
		assert.Contains(t, buf.String(), "Stumptown, Blue Bottle, Heart Coffee")
	})

	t.Run("markdown raw", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "markdown", false, 80))
		assert.Contains(t, buf.String(), "## Keyword Selected")
		assert.Contains(t, buf.String(), "- `cold brew`")
	})

	t.Run("markdown styled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "markdown", true, 80))
		assert.Contains(t, buf.String(), "Keyword Selected")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "json", false, 80))

		var got onboard.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, s, got)
		assert.Equal(t, 7, got.KeywordTotal)
		assert.Len(t, got.Keywords, onboard.MaxDisplayItems)
	})

	t.Run("unknown", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, writeSummary(&buf, s, "html", false, 80))
	})
}

func TestInitPath(t *testing.T) {
	dir := t.TempDir()

	path, err := initPath(nil, "yaml", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.yaml"), path)

	path, err = initPath(nil, "toml", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "session.toml"), path)

	path, err = initPath([]string{"out/answers.json"}, "yaml", dir)
	require.NoError(t, err)
	assert.Equal(t, "out/answers.json", path)

	_, err = initPath([]string{"answers.txt"}, "yaml", dir)
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = initPath(nil, "xml", dir)
	assert.Error(t, err)
}

func TestLoadSessionFromSettings(t *testing.T) {
	_, err := loadSessionFromSettings(config.Settings{})
	assert.ErrorIs(t, err, errNoSession)

	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, config.SaveSession(path, config.ExampleSession()))

	in, err := loadSessionFromSettings(config.Settings{Session: path})
	require.NoError(t, err)
	assert.Equal(t, "Food & Beverage", in.Business.Industry)
}
