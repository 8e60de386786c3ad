// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account payloads before they reach the store.
//
// [Validator] is the interface the service layer depends on;
// [NewAccountValidator] returns the go-playground/validator implementation
// driven by the `validate` tags on [models.AccountPayload].
package validators

import "context"

// Validator validates a value, reporting every violation in one error.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
