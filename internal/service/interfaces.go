// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService implements the account resource lifecycle on top of a
// store.AccountRepository.
type AccountService interface {
	// CreateAccount validates payload, fills in date_joined when absent and
	// persists a new account.
	CreateAccount(ctx context.Context, payload models.AccountPayload) (models.Account, error)

	// GetAccount returns ErrAccountNotFound when id does not name a stored account.
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts returns every account ordered by id.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// UpdateAccount replaces the editable fields of account id with payload.
	// id and date_joined are never changed.
	UpdateAccount(ctx context.Context, id int64, payload models.AccountPayload) (models.Account, error)

	// DeleteAccount removes account id. Absent ids are not an error.
	DeleteAccount(ctx context.Context, id int64) error
}

// AppInfoService exposes static application metadata.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
