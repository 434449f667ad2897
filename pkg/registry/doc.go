// Package registry provides a generic, name-keyed registry that keeps
// registration order. The kind table in pkg/kinds is built on it.
package registry
