package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrMethodNotAllowed     = errors.New("method not allowed")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")

	// ErrInvalidAddress is returned by NewHTTPAccountAdapter when the
	// configured base address cannot be used.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
