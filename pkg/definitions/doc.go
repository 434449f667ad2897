// Package definitions reads the definition list: the asset ids to generate
// and the kinds each one requires.
//
// JSON is the primary format (a top-level array). YAML uses the same shape
// and TOML uses [[definition]] tables. Every format is checked against the
// embedded JSON Schema before it is decoded.
package definitions
