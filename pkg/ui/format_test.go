package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/ui"
)

func TestFormatNamesRoundTrip(t *testing.T) {
	for _, name := range ui.FormatNames {
		f, err := ui.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestParseFormatAliases(t *testing.T) {
	aliases := map[string]ui.Format{
		"":         ui.FormatAuto,
		" auto ":   ui.FormatAuto,
		"terminal": ui.FormatTerminal,
		"TERM":     ui.FormatTerminal,
		"plain":    ui.FormatText,
		"Json":     ui.FormatJSON,
	}
	for input, want := range aliases {
		got, err := ui.ParseFormat(input)
		require.NoError(t, err, "%q", input)
		assert.Equal(t, want, got, "%q", input)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ui.ParseFormat("yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format: yaml")
	assert.Equal(t, ui.FormatNames, errors.GetErrorDetails(err)["accepted"])
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("regular file is text", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})
}
