package models

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("operation not allowed")
	ErrDataNotLoaded     = errors.New("data is not loaded yet")
	ErrBusy              = errors.New("resource is busy, try again later")
	ErrUnavailable       = errors.New("service is not configured")
)
