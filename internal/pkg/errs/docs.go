// Package errs provides the typed errors shared by the point-of-sale service.
//
// Each error type follows the same pattern:
//   - a sentinel (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter, usable with errors.As
//   - constructors with and without a cause
//
// The HTTP adapter classifies failures by these sentinels, so domain and
// application code should return them rather than ad-hoc errors when the
// failure is caused by caller input.
package errs
