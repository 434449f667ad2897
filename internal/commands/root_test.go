package commands

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetgen/pkg/core"
	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/ui/display"
)

const testDefine = `[
  {"id": "mymod:stone", "requires": ["block", "blockitem"]},
  {"id": "mymod:plank", "requires": ["item"]}
]`

// executeCommand runs a root command isolated from user config
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(&rootOptions{workDir: t.TempDir()})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDefine(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "define.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateJSON(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)
	assets := filepath.Join(dir, "assets")

	stdout, _, err := executeCommand(t, "--format", "json", "-d", define, assets)
	require.NoError(t, err)

	var summary display.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.False(t, summary.DryRun)
	assert.Len(t, summary.Files, 4)
	require.Len(t, summary.Namespaces, 1)
	assert.Equal(t, "mymod", summary.Namespaces[0].Namespace)
	require.Len(t, summary.LangUpdates, 1)
	assert.Equal(t, []string{"block.mymod.stone", "item.mymod.plank"}, summary.LangUpdates[0].Added)

	for _, rel := range []string{
		"mymod/blockstates/stone.json",
		"mymod/models/block/stone.json",
		"mymod/models/item/stone.json",
		"mymod/models/item/plank.json",
	} {
		assert.FileExists(t, filepath.Join(assets, filepath.FromSlash(rel)))
	}

	data, err := os.ReadFile(filepath.Join(assets, "mymod", "lang", "en_us.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"block.mymod.stone\": \"\",\n  \"item.mymod.plank\": \"\"\n}", string(data))
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)
	assets := filepath.Join(dir, "assets")

	stdout, _, err := executeCommand(t, "--format", "json", "--dry-run", "-d", define, assets)
	require.NoError(t, err)

	var summary display.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.True(t, summary.DryRun)
	assert.Len(t, summary.Files, 4)
	assert.NoDirExists(t, assets)
}

func TestGenerateText(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)
	assets := filepath.Join(dir, "assets")

	stdout, _, err := executeCommand(t, "--format", "text", "-d", define, assets)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Writing")
	assert.Contains(t, stdout, "4 files, 2 new lang keys, 0 warnings, 0 conflicts")
}

func TestGenerateVerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)

	stdout, stderr, err := executeCommand(t, "-v", "--format", "json", "-d", define, filepath.Join(dir, "assets"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Generation finished")

	var summary display.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
}

func TestGenerateEmptyAssetsArgument(t *testing.T) {
	_, stderr, err := executeCommand(t, "")
	require.Error(t, err)
	assert.Contains(t, stderr, core.MsgMissingAssets)

	var rendered renderedError
	assert.True(t, stderrors.As(err, &rendered))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGenerateMissingDefinition(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "--format", "json", "-d", filepath.Join(dir, "nope.json"), filepath.Join(dir, "assets"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionRead))

	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &obj))
	assert.Equal(t, string(errors.ErrDefinitionRead), obj["code"])
}

func TestGenerateInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)

	_, _, err := executeCommand(t, "--format", "xml", "-d", define, filepath.Join(dir, "assets"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NoDirExists(t, filepath.Join(dir, "assets"))
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	define := writeDefine(t, dir, testDefine)
	assets := filepath.Join(dir, "assets")

	configPath := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[lang]\nlocale = \"fr_fr\"\n"), 0644))

	_, _, err := executeCommand(t, "--format", "json", "--config", configPath, "-d", define, assets)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(assets, "mymod", "lang", "fr_fr.json"))
	assert.NoFileExists(t, filepath.Join(assets, "mymod", "lang", "en_us.json"))
}

func TestKindsJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "kinds", "--format", "json")
	require.NoError(t, err)

	var docs []kindDoc
	require.NoError(t, json.Unmarshal([]byte(stdout), &docs))
	require.NotEmpty(t, docs)

	block := docs[0]
	assert.Equal(t, "block", block.Kind)
	assert.Equal(t, "block.<namespace>.<name>", block.LangKey)
	require.Len(t, block.Files, 2)
	assert.Equal(t, "blockstates/<name>.json", block.Files[0].Path)
	assert.Equal(t, "block_blockstate", block.Files[0].Template)
	require.NotNil(t, block.ItemModel)
	assert.Equal(t, "models/item/<name>.json", block.ItemModel.Path)

	var item *kindDoc
	for i := range docs {
		if docs[i].Kind == "item" {
			item = &docs[i]
		}
	}
	require.NotNil(t, item)
	assert.Equal(t, "blockitem", item.Excludes)
	assert.Nil(t, item.ItemModel)
}

func TestKindsText(t *testing.T) {
	stdout, _, err := executeCommand(t, "kinds", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kinds")
	assert.Contains(t, stdout, "stair_model_inner")
	assert.Contains(t, stdout, "blockitem")
}

func TestHelpTopics(t *testing.T) {
	stdout, _, err := executeCommand(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "definitions")
	assert.Contains(t, stdout, "templates")
	assert.Contains(t, stdout, "--dry-run")
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "assetgen version dev")
	assert.Contains(t, stdout, "Commit: unknown")
}

func TestCompletion(t *testing.T) {
	stdout, _, err := executeCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "assetgen")

	_, _, err = executeCommand(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestGenCompletionUnknownShell(t *testing.T) {
	err := GenCompletion(NewRootCmd(), "tcsh", &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
