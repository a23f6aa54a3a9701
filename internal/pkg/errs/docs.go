// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific error kinds (invalid transitions, unavailable resources,
// signature requirements and so on) are declared as sentinels in the domain
// packages that own them; this package covers the generic cases shared by
// every layer.
package errs
