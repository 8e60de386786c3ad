// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the persistence gateway for [models.Account] records.
// Implementations own their connection or in-memory state; callers never
// touch the backing store directly.
type AccountRepository interface {
	// Create persists account and returns it with the store-assigned ID.
	// DateJoined must already be set by the caller.
	Create(ctx context.Context, account models.Account) (models.Account, error)

	// FindByID returns the account with the given ID, or (nil, nil) when no
	// such account exists.
	FindByID(ctx context.Context, id int64) (*models.Account, error)

	// List returns every stored account ordered by ID. An empty store yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]models.Account, error)

	// Update overwrites the editable fields of the account matched by
	// account.ID. Returns ErrAccountNotFound when no row matches.
	Update(ctx context.Context, account models.Account) error

	// Delete removes the account with the given ID. Deleting an absent ID is
	// not an error.
	Delete(ctx context.Context, id int64) error
}
