package config

import (
	"os"
)

// Config is the resolved configuration of one run
type Config struct {
	Paths  Paths           `koanf:"paths"`
	Lang   Lang            `koanf:"lang"`
	Output Output          `koanf:"output"`
	Files  FilePermissions `koanf:"files"`
}

// Paths holds input and output locations
type Paths struct {
	Assets    string `koanf:"assets"`
	Define    string `koanf:"define"`
	Templates string `koanf:"templates"`
}

// Lang holds lang file settings
type Lang struct {
	Locale    string `koanf:"locale"`
	Collation string `koanf:"collation"`
	Indent    int    `koanf:"indent"`
}

// Output holds presentation settings
type Output struct {
	Format string `koanf:"format"`
	DryRun bool   `koanf:"dryrun"`
}

// FilePermissions holds file and directory permission settings
type FilePermissions struct {
	File      os.FileMode `koanf:"file"`
	Directory os.FileMode `koanf:"directory"`
}
