// Package config handles configuration management for assetgen.
// Configuration is layered with koanf: embedded defaults, the user config
// file, the project .assetgen.toml, ASSETGEN_* variables from a .env file
// and the process environment, and finally command-line flags.
package config
