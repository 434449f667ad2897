package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/arthur-debert/assetgen/pkg/errors"
	"github.com/arthur-debert/assetgen/pkg/logging"
	"github.com/arthur-debert/assetgen/pkg/paths"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "ASSETGEN_"

// LoadOptions controls which layers are read
type LoadOptions struct {
	// WorkDir is where .assetgen.toml and .env are looked up
	WorkDir string

	// UserConfigPath is read when it exists; empty skips the layer
	UserConfigPath string

	// ConfigFile replaces the project file lookup and must exist
	ConfigFile string

	// Overrides are dotted keys applied last, typically from flags
	Overrides map[string]interface{}

	// SkipEnv disables the .env and process environment layers
	SkipEnv bool
}

// DefaultLoadOptions returns options for a normal CLI run
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		WorkDir:        ".",
		UserConfigPath: paths.UserConfigPath(),
	}
}

// Default returns the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary
		panic(err)
	}
	return cfg
}

// Load resolves the configuration layers in order
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	if opts.UserConfigPath != "" && fileExists(opts.UserConfigPath) {
		logger.Debug().Str("path", opts.UserConfigPath).Msg("Loading user config")
		if err := k.Load(file.Provider(opts.UserConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load user config from %s", opts.UserConfigPath)
		}
	}

	// 3. Project config
	projectPath := opts.ConfigFile
	if projectPath == "" {
		projectPath = filepath.Join(workDir(opts), paths.ProjectConfigFile)
		if !fileExists(projectPath) {
			projectPath = ""
		}
	}
	if projectPath != "" {
		logger.Debug().Str("path", projectPath).Msg("Loading project config")
		if err := k.Load(file.Provider(projectPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", projectPath)
		}
	}

	if !opts.SkipEnv {
		// 4. .env file
		dotenvPath := filepath.Join(workDir(opts), paths.EnvFile)
		if fileExists(dotenvPath) {
			values, err := godotenv.Read(dotenvPath)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", dotenvPath)
			}
			if err := k.Load(confmap.Provider(dotenvValues(values), "."), nil); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load .env values")
			}
		}

		// 5. Process environment
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 6. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps ASSETGEN_LANG_LOCALE to lang.locale
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// dotenvValues keeps the ASSETGEN_ entries of a .env file, keyed like env vars
func dotenvValues(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for key, value := range values {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		out[envKey(key)] = value
	}
	return out
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Lang.Locale) == "" {
		return errors.New(errors.ErrConfigValid, "lang.locale cannot be empty")
	}
	if _, err := language.Parse(cfg.Lang.Collation); err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "lang.collation %q is not a valid language tag", cfg.Lang.Collation)
	}
	if cfg.Lang.Indent < 0 || cfg.Lang.Indent > 8 {
		return errors.Newf(errors.ErrConfigValid, "lang.indent must be between 0 and 8, got %d", cfg.Lang.Indent)
	}
	if cfg.Files.File == 0 || cfg.Files.Directory == 0 {
		return errors.New(errors.ErrConfigValid, "files.file and files.directory must be non-zero modes")
	}
	return nil
}

func workDir(opts LoadOptions) string {
	if opts.WorkDir == "" {
		return "."
	}
	return opts.WorkDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
