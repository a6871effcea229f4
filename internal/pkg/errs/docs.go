// Package errs provides the error types shared by the depot service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - NewXError / NewXErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps sentinels to status codes:
//   - ErrValueIsRequired: 400
//   - ErrObjectNotFound: 404
//   - ErrValueIsInvalid, ErrConflict: 409
//   - ErrCollaboratorUnavailable, ErrRecognitionFailed: 502
package errs
