// Package core wires the pipeline of a run: load definitions and
// templates, generate the asset tree, then update lang files.
//
// The cobra commands call into this package and only deal with
// flags and rendering. Everything here works against types.FS so the
// whole pipeline can run on an in-memory filesystem in tests.
package core
