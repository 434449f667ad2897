package types

import (
	"io/fs"
)

// FS is the filesystem interface required for asset generation
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	Mkdir(name string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Lstat does not follow symlinks where the implementation supports it.
	// In-memory implementations may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
