// internal/application/usecase/errors.go
package usecase

import "errors"

// Shared sentinel errors. Handlers map these with errors.Is:
//   - ErrUnauthorized    -> 401
//   - ErrInvalidArgument -> 400
//   - domain ErrNotFound -> 404
//
// Anything else is an upstream failure and renders a generic 500.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidArgument = errors.New("invalid argument")
)
