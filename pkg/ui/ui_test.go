package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/ui"
	"github.com/arthur-debert/assetgen/pkg/ui/display"
)

func sampleSummary() *display.Summary {
	return &display.Summary{
		Files:       []string{"/assets/mymod/blockstates/stone.json", "/assets/mymod/models/block/stone.json"},
		LangCreated: []string{"/assets/mymod/lang/en_us.json"},
		CreatedDirs: []string{},
		Namespaces: []display.NamespaceSummary{
			{Namespace: "mymod", Definitions: 1, Files: 2, Keys: 1},
			{Namespace: "broken", Definitions: 1, Conflict: true},
		},
		LangUpdates: []display.LangUpdate{
			{Namespace: "mymod", File: "en_us.json", Path: "/assets/mymod/lang/en_us.json", Added: []string{"block.mymod.stone"}},
		},
		Warnings:  []string{`No template keyword found: "fence"`},
		Conflicts: []string{"/assets/broken/lang is not a directory!"},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "terminal", format: ui.FormatTerminal},
		{name: "text", format: ui.FormatText},
		{name: "json", format: ui.FormatJSON},
		{name: "auto with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, renderer)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderSummary(sampleSummary()))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render summary", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderSummary(sampleSummary()))

		var got display.Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, *sampleSummary(), got)
	})

	t.Run("render coded error", func(t *testing.T) {
		buf.Reset()
		codedErr := errors.New(errors.ErrLangParse, "bad file").WithDetail("path", "/x.json")
		require.NoError(t, renderer.RenderError(codedErr))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "LANG_PARSE", got["code"])
		assert.Equal(t, "[LANG_PARSE] bad file", got["error"])
		assert.Equal(t, map[string]interface{}{"path": "/x.json"}, got["details"])
	})

	t.Run("render plain error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, assert.AnError.Error(), got["error"])
		assert.NotContains(t, got, "code")
	})

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var got map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "hello world", got["message"])
	})
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render summary", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderSummary(sampleSummary()))

		out := buf.String()
		assert.Contains(t, out, "Writing /assets/mymod/lang/en_us.json\n")
		assert.Contains(t, out, "Writing /assets/mymod/blockstates/stone.json\n")
		assert.Contains(t, out, "Writing to lang file: en_us.json (1 new keys)\n")
		assert.Contains(t, out, "Error: /assets/broken/lang is not a directory!\n")
		assert.Contains(t, out, "Warning: No template keyword found: \"fence\"\n")
		assert.Contains(t, out, "mymod")
		assert.Contains(t, out, "conflict")
		assert.Contains(t, out, "2 files, 1 new lang keys, 1 warnings, 1 conflicts\n")
	})

	t.Run("render dry run", func(t *testing.T) {
		buf.Reset()
		s := sampleSummary()
		s.DryRun = true
		require.NoError(t, renderer.RenderSummary(s))
		assert.Contains(t, buf.String(), "Would write /assets/mymod/blockstates/stone.json\n")
	})

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderSummary(sampleSummary()))
	out := buf.String()
	assert.Contains(t, out, "Assets generated")
	assert.Contains(t, out, "mymod")
	assert.Contains(t, out, "block.mymod.stone")
	assert.Contains(t, out, "is not a directory!")
	assert.Contains(t, out, "No template keyword found")
}
