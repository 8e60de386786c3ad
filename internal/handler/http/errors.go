// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request before it reaches the
// service layer. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded
	// into the expected JSON object.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnsupportedMediaType is returned when a request carrying a body does
	// not declare an application/json content type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
