// Package errors provides structured, actionable error messages for Loom.
//
// Every failure surfaced by the virtual-tree layer is a *LoomError with a
// stable code, so callers (and tests) can match on the code rather than on
// message text.
//
// # Error Categories
//
// Errors are organized into categories:
//   - usage: API misuse (null tags, unsupported child types, illegal arguments)
//   - structure: tree shape violations (index out of bounds, raw content vs. children)
//   - identity: reference violations (duplicate ref ids, double registration)
//   - config: configuration file errors
//   - protocol: snapshot wire-format errors
//   - cli: command-line tool errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E241") that maps to a short message,
// a detailed explanation, and a documentation URL.
//
// # Usage
//
//	err := errors.New("E241").
//	    WithDetail("reference id %q is already registered", id).
//	    WithSuggestion("Pick a reference id unique to this render pass")
package errors
