// Package types defines the core types and interfaces shared across
// assetgen: the FS abstraction, definitions and resource ids.
package types
