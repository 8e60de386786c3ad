// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the account service REST API.
//
// The primary abstraction is [AccountAdapter], which decouples callers such
// as cmd/client from the wire protocol. [NewHTTPAccountAdapter] ships the
// HTTP/REST implementation built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AccountAdapter defines transport-agnostic access to the account service.
type AccountAdapter interface {
	// CreateAccount creates a new account and returns it together with the
	// Location the server assigned to it.
	CreateAccount(ctx context.Context, payload models.AccountPayload) (models.Account, string, error)

	// GetAccount fetches one account. Returns [ErrNotFound] (wrapped) when the
	// id does not exist.
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts fetches every account.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateAccount replaces the editable fields of account id.
	UpdateAccount(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error)

	// DeleteAccount deletes account id. Deleting an absent id succeeds.
	DeleteAccount(ctx context.Context, id int64) error

	// Health queries the liveness endpoint.
	Health(ctx context.Context) (models.HealthResponse, error)
}
