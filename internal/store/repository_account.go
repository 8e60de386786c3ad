// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It works against the "accounts" table on PostgreSQL or SQLite; the
// placeholder style comes from the embedded [*DB].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions are traced with the
// request's trace ID.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts account and reads back the generated id via RETURNING.
func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(ctx, r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Create").Msg("failed to create query")
		return models.Account{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		log.Err(err).
			Str("func", "accountRepository.Create").
			Msg("failed to insert account")
		return models.Account{}, classifyError(err, ErrExecutingStatement)
	}

	return account, nil
}

// FindByID returns (nil, nil) when the row does not exist.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByIDQuery(ctx, r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.FindByID").Int64("id", id).Msg("failed to create query")
		return nil, err
	}

	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.FindByID").
			Int64("id", id).
			Msg("failed to scan account row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllAccountsQuery(ctx, r.builder)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.List").
			Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "accountRepository.List").
				Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "accountRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(ctx, r.builder, account)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Update").Int64("id", account.ID).Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.Update").
			Int64("id", account.ID).
			Msg("failed to update account")
		return classifyError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(ctx, r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Delete").Int64("id", id).Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountRepository.Delete").
			Int64("id", id).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
	)
	return account, err
}
