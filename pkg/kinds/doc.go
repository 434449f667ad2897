// Package kinds defines the template kinds a definition can require and the
// files each one generates.
//
// Each kind is a Rule in a registry: its outputs, its translation key and
// the item model written when the definition also requires "blockitem".
// "blockitem" itself is a modifier and has no rule.
package kinds
