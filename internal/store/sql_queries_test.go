// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builders() map[Dialect]sq.StatementBuilderType {
	return map[Dialect]sq.StatementBuilderType{
		DialectPostgres: newDB(nil, DialectPostgres, logger.Nop()).builder,
		DialectSQLite:   newDB(nil, DialectSQLite, logger.Nop()).builder,
	}
}

func placeholder(d Dialect) string {
	if d == DialectPostgres {
		return "$1"
	}
	return "?"
}

func Test_buildInsertAccountQuery(t *testing.T) {
	for dialect, builder := range builders() {
		t.Run(string(dialect), func(t *testing.T) {
			query, args, err := buildInsertAccountQuery(context.Background(), builder, testAccount())
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.Contains(t, q, "insert into accounts")
			require.Contains(t, q, "returning id")
			require.Contains(t, query, placeholder(dialect))
			require.NotContains(t, q, "(id,")

			require.Len(t, args, 5)
			assert.Equal(t, "Alice", args[0])
			assert.Equal(t, "555", args[3])
		})
	}
}

func Test_buildSelectAccountByIDQuery(t *testing.T) {
	for dialect, builder := range builders() {
		t.Run(string(dialect), func(t *testing.T) {
			query, args, err := buildSelectAccountByIDQuery(context.Background(), builder, 42)
			require.NoError(t, err)

			q := strings.ToLower(query)
			for _, col := range accountColumns {
				require.Contains(t, q, col)
			}
			require.Contains(t, q, "from accounts")
			require.Contains(t, q, "where id = "+placeholder(dialect))

			require.Len(t, args, 1)
			assert.Equal(t, int64(42), args[0])
		})
	}
}

func Test_buildSelectAllAccountsQuery(t *testing.T) {
	query, args, err := buildSelectAllAccountsQuery(context.Background(), builders()[DialectPostgres])
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from accounts")
	require.Contains(t, q, "order by id")
	require.NotContains(t, q, "where")
	assert.Empty(t, args)
}

func Test_buildUpdateAccountQuery(t *testing.T) {
	acc := testAccount()
	acc.ID = 9

	query, args, err := buildUpdateAccountQuery(context.Background(), builders()[DialectPostgres], acc)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update accounts set")
	require.NotContains(t, q, "date_joined")
	require.Contains(t, query, "$5")

	require.Len(t, args, 5)
	assert.Equal(t, int64(9), args[4])
}

func Test_buildDeleteAccountQuery(t *testing.T) {
	query, args, err := buildDeleteAccountQuery(context.Background(), builders()[DialectSQLite], 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM accounts WHERE id = ?", query)
	assert.Equal(t, []any{int64(3)}, args)
}
