// Package diag defines the diagnostic model shared by every phase of the
// typelint pipeline: severities, stable numeric codes, the Diagnostic
// value itself, the Bag accumulator, and the Reporter contract that
// phases emit through.
//
// Code ranges:
//   - 1000-1999 lexical
//   - 2000-2999 syntax
//   - 3000-3999 semantic (type resolution)
//   - 4000-4999 lint rules
//
// Diagnostics are immediately handed to a Reporter and never retained by
// the producing phase; the Bag is the only place they accumulate.
package diag
