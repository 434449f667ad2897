package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Application and project file names
const (
	// AppDirName is the directory name for assetgen-specific files under XDG dirs
	AppDirName = "assetgen"

	// UserConfigFile is the user-level config file inside the XDG config dir
	UserConfigFile = "config.toml"

	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = ".assetgen.toml"

	// EnvFile is an optional dotenv file in the working directory
	EnvFile = ".env"
)

// Sub-directories of a namespace, slash separated
const (
	BlockstatesDir   = "blockstates"
	LangDir          = "lang"
	BlockModelsDir   = "models/block"
	ItemModelsDir    = "models/item"
	BlockTexturesDir = "textures/block"
	ItemTexturesDir  = "textures/item"
)

// StandardDirs lists every directory created for a namespace, in creation order
var StandardDirs = []string{
	BlockstatesDir,
	LangDir,
	BlockModelsDir,
	ItemModelsDir,
	BlockTexturesDir,
	ItemTexturesDir,
}

// JSONExt is the extension of every generated file
const JSONExt = ".json"

// LogFileName is the log file inside the XDG state dir
const LogFileName = "assetgen.log"

// UserConfigPath returns the user-level config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigFile)
}

// LogFilePath returns the log file location
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// Layout maps namespaces and names onto the assets tree
type Layout struct {
	root string
}

// NewLayout creates a Layout rooted at the assets directory
func NewLayout(assetsRoot string) Layout {
	return Layout{root: filepath.Clean(assetsRoot)}
}

// Root returns the assets directory
func (l Layout) Root() string {
	return l.root
}

// NamespaceDir returns <assets>/<namespace>
func (l Layout) NamespaceDir(namespace string) string {
	return filepath.Join(l.root, namespace)
}

// Dir returns <assets>/<namespace>/<sub>
func (l Layout) Dir(namespace, sub string) string {
	return filepath.Join(l.root, namespace, filepath.FromSlash(sub))
}

// File returns <assets>/<namespace>/<sub>/<base>.json
func (l Layout) File(namespace, sub, base string) string {
	return filepath.Join(l.Dir(namespace, sub), filepath.FromSlash(base)+JSONExt)
}

// LangDir returns the lang directory of a namespace
func (l Layout) LangDir(namespace string) string {
	return l.Dir(namespace, LangDir)
}

// LangFile returns the lang file of a locale in a namespace
func (l Layout) LangFile(namespace, locale string) string {
	return l.File(namespace, LangDir, locale)
}
