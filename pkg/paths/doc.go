// Package paths provides centralized path handling for assetgen.
//
// It owns the per-namespace asset tree layout (blockstates, lang, models,
// textures) and the XDG locations of user-level files.
package paths
