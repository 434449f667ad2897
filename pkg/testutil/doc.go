// Package testutil provides helpers for tests that build asset trees on a
// types.FS, in memory or on disk.
package testutil
