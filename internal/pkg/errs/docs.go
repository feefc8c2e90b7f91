// Package errs provides the standardized error types used across the ordering
// service for validation and lookup failures.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Expected business failures in the domain layer are regular sentinel errors
// defined next to their aggregates; this package covers the cross-cutting
// validation vocabulary shared by all layers.
package errs
