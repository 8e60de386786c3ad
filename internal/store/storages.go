// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the SQL connection that backs them, if any.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages initialises the storage layer selected by cfg.DB.DSN:
//  1. [MemoryDSN] builds the in-memory repository; nothing is opened.
//  2. Any SQL DSN is opened via [NewDB], migrated with [DB.Migrate] and
//     wrapped in the SQL account repository.
//
// Returns an error if the connection cannot be established or migration
// fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &Storages{
			AccountRepository: NewMemoryAccountRepository(log),
		}, nil
	}

	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the SQL connection pool. It is a no-op for the in-memory
// backend.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
