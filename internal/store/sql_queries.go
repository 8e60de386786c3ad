// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/models"
)

// accountColumns is the canonical column order used by every SELECT and by
// scanAccount.
var accountColumns = []string{
	"id",
	"name",
	"email",
	"address",
	"phone_number",
	"date_joined",
}

func buildInsertAccountQuery(_ context.Context, builder sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := builder.
		Insert(models.Account{}.TableName()).
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAccountByIDQuery(_ context.Context, builder sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllAccountsQuery(_ context.Context, builder sq.StatementBuilderType) (string, []any, error) {
	query, args, err := builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateAccountQuery overwrites the client-editable columns only;
// id and date_joined are never part of the SET list.
func buildUpdateAccountQuery(_ context.Context, builder sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := builder.
		Update(models.Account{}.TableName()).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Where(sq.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAccountQuery(_ context.Context, builder sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := builder.
		Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
