// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-account-service/models"
	"github.com/go-playground/validator/v10"
)

// AccountValidator implements [Validator] for account payloads using the
// `validate` struct tags declared on [models.AccountPayload].
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator whose error messages
// refer to fields by their JSON names.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &AccountValidator{validate: v}
}

// Validate checks an account payload. Accepted types:
//   - models.AccountPayload / *models.AccountPayload
//   - models.Account / *models.Account (its editable fields are checked)
//
// Returns ErrUnsupportedType for anything else, and an error wrapping
// ErrInvalidAccount that lists every violation otherwise.
func (v *AccountValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.AccountPayload:
		return v.validatePayload(ctx, value)
	case *models.AccountPayload:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePayload(ctx, *value)
	case models.Account:
		return v.validatePayload(ctx, value.Payload())
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePayload(ctx, value.Payload())
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validatePayload(ctx context.Context, payload models.AccountPayload) error {
	err := v.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldErrorMessage(fieldErr))
	}

	return fmt.Errorf("%w: %s", ErrInvalidAccount, strings.Join(messages, "; "))
}

func fieldErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
