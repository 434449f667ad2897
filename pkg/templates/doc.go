// Package templates loads the named asset templates and interpolates them.
//
// A template is plain text keyed by its filename without extension. The
// built-in set under builtin/ is compiled into the binary and used when no
// template directory is configured.
//
// Interpolation recognises exactly two placeholders, {name} and {namespace},
// matched case-insensitively. Substituted values are written literally and
// never rescanned.
package templates
