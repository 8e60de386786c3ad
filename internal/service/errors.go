package service

import (
	"errors"

	"github.com/MKhiriev/go-account-service/internal/validators"
)

var (
	// ErrAccountNotFound is returned when an account id has no stored record.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrInvalidAccount marks client input that fails validation. It is the
	// validators sentinel so either package's value matches with errors.Is.
	ErrInvalidAccount = validators.ErrInvalidAccount

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNameIsNotSpecified    = errors.New("app name is not specified")
)
