package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetgen/pkg/filesystem"
	"github.com/arthur-debert/assetgen/pkg/types"
)

// FileTree describes a directory: string values are file contents,
// FileTree values are sub-directories
type FileTree map[string]interface{}

// MemoryFS returns an in-memory filesystem holding tree under root
func MemoryFS(t *testing.T, root string, tree FileTree) types.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.Mkdir(root, 0755))
	CreateFileTree(t, fsys, root, tree)
	return fsys
}

// CreateFileTree creates tree under basePath, which must exist
func CreateFileTree(t *testing.T, fsys types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fsys.Mkdir(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// AssertFileContent checks that path holds exactly expected
func AssertFileContent(t *testing.T, fsys types.FS, path, expected string, msgAndArgs ...interface{}) {
	t.Helper()
	data, err := fsys.ReadFile(path)
	if !assert.NoError(t, err, msgAndArgs...) {
		return
	}
	assert.Equal(t, expected, string(data), msgAndArgs...)
}

// AssertNotExists checks that nothing exists at path
func AssertNotExists(t *testing.T, fsys types.FS, path string, msgAndArgs ...interface{}) {
	t.Helper()
	_, err := fsys.Stat(path)
	assert.Error(t, err, msgAndArgs...)
}

// AssertIsDir checks that path is a directory
func AssertIsDir(t *testing.T, fsys types.FS, path string, msgAndArgs ...interface{}) {
	t.Helper()
	info, err := fsys.Stat(path)
	if !assert.NoError(t, err, msgAndArgs...) {
		return
	}
	assert.True(t, info.IsDir(), msgAndArgs...)
}
