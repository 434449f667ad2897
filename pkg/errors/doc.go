// Package errors provides coded, wrappable errors for assetgen.
//
// Every failure that can end a run carries a stable ErrorCode so callers and
// tests can branch on the category without matching message text.
package errors
