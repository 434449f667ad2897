package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetgen/pkg/config"
	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/testutil"
	"github.com/arthur-debert/assetgen/pkg/types"
)

const defineJSON = `[
  {"id": "mymod:stone", "requires": ["block", "blockitem", "slab"]},
  {"id": "mymod:plank", "requires": ["item"]},
  {"id": "mymod:odd", "requires": ["item", "blockitem"]},
  {"id": "other:brick", "requires": ["wall", "fence"]}
]`

func setup(t *testing.T) (types.FS, *config.Config) {
	t.Helper()
	fsys := testutil.MemoryFS(t, "/work", testutil.FileTree{"define.json": defineJSON})

	cfg := config.Default()
	cfg.Paths.Assets = "/work/assets"
	cfg.Paths.Define = "/work/define.json"
	return fsys, cfg
}

func TestGenerate(t *testing.T) {
	fsys, cfg := setup(t)

	out, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.NoError(t, err)

	// block + blockitem + slab + slab item, plank, wall + nothing for odd
	assert.Len(t, out.Result.Files, 3+4+1+5)
	assert.Len(t, out.Result.Warnings, 2)

	data, err := fsys.ReadFile("/work/assets/mymod/lang/en_us.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "block.mymod.stone": "",
  "block.mymod.stone_slab": "",
  "item.mymod.plank": ""
}`, string(data))

	data, err = fsys.ReadFile("/work/assets/other/lang/en_us.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"block.other.brick_wall\": \"\"\n}", string(data))

	data, err = fsys.ReadFile("/work/assets/mymod/models/item/stone_slab.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "mymod:block/stone_slab")

	require.NotNil(t, out.Summary)
	assert.Equal(t, 4, out.Summary.KeysAdded())
	assert.Len(t, out.Summary.Namespaces, 2)
}

func TestGenerateTwiceKeepsTranslations(t *testing.T) {
	fsys, cfg := setup(t)

	_, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.NoError(t, err)
	require.NoError(t, fsys.WriteFile("/work/assets/mymod/lang/en_us.json",
		[]byte(`{"item.mymod.plank": "Plank", "custom": "x"}`), 0644))

	out, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.NoError(t, err)

	data, err := fsys.ReadFile("/work/assets/mymod/lang/en_us.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "item.mymod.plank": "Plank",
  "custom": "x",
  "block.mymod.stone": "",
  "block.mymod.stone_slab": ""
}`, string(data))
	assert.Empty(t, out.Result.LangCreated)
}

func TestGenerateDryRun(t *testing.T) {
	fsys, cfg := setup(t)
	cfg.Output.DryRun = true

	out, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Result.Files)
	assert.True(t, out.Summary.DryRun)

	_, err = fsys.Stat("/work/assets")
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCustomTemplates(t *testing.T) {
	fsys, cfg := setup(t)
	require.NoError(t, fsys.WriteFile("/work/define.json", []byte(`[{"id": "mymod:plank", "requires": ["item"]}]`), 0644))

	tmpl := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(tmpl, "item_model.json", []byte(`{"n": "{NAME}@{namespace}"}`), 0644))

	_, err := Generate(GenerateOptions{Config: cfg, FS: fsys, Templates: afero.NewIOFS(tmpl)})
	require.NoError(t, err)

	data, err := fsys.ReadFile("/work/assets/mymod/models/item/plank.json")
	require.NoError(t, err)
	assert.Equal(t, `{"n": "plank@mymod"}`, string(data))
}

func TestGenerateTemplatesFromDisk(t *testing.T) {
	fsys, cfg := setup(t)
	dir := t.TempDir()
	cfg.Paths.Templates = dir

	_, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateMissing))

	cfg.Paths.Templates = filepath.Join(dir, "missing")
	_, err = Generate(GenerateOptions{Config: cfg, FS: fsys})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateLoad))
}

func TestGenerateErrors(t *testing.T) {
	t.Run("missing assets path", func(t *testing.T) {
		fsys, cfg := setup(t)
		cfg.Paths.Assets = ""
		_, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), MsgMissingAssets)
	})

	t.Run("missing define file", func(t *testing.T) {
		fsys, cfg := setup(t)
		cfg.Paths.Define = "/work/nope.json"
		_, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
		assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionRead))
	})

	t.Run("broken lang file", func(t *testing.T) {
		fsys, cfg := setup(t)
		_, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
		require.NoError(t, err)
		require.NoError(t, fsys.WriteFile("/work/assets/mymod/lang/de_de.json", []byte("{"), 0644))

		out, err := Generate(GenerateOptions{Config: cfg, FS: fsys})
		assert.True(t, errors.IsErrorCode(err, errors.ErrLangParse))
		require.NotNil(t, out)
		assert.NotNil(t, out.Summary)
	})
}
