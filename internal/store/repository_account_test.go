package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) AccountRepository {
	t.Helper()
	return NewAccountRepository(newDB(db, DialectPostgres, logger.Nop()), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	accountRowColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}
	joined            = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func testAccount() models.Account {
	return models.Account{
		Name:        "Alice",
		Email:       "a@x.com",
		Address:     "1 St",
		PhoneNumber: "555",
		DateJoined:  models.NewDate(joined),
	}
}

func TestAccountRepository_Create(t *testing.T) {
	insertSQL := regexp.QuoteMeta(`INSERT INTO accounts (name,email,address,phone_number,date_joined) VALUES ($1,$2,$3,$4,$5) RETURNING id`)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErrIs error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs("Alice", "a@x.com", "1 St", "555", joined).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "value too long",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WillReturnError(pgError(pgerrcode.StringDataRightTruncationDataException))
			},
			wantErrIs: ErrInvalidAccountData,
		},
		{
			name: "network error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WillReturnError(errors.New("connection reset"))
			},
			wantErrIs: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)
			tt.setup(mock)

			created, err := repo.Create(testContext(), testAccount())

			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, created.ID)
				assert.Equal(t, "Alice", created.Name)
				assert.Equal(t, models.NewDate(joined), created.DateJoined)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_FindByID(t *testing.T) {
	selectSQL := regexp.QuoteMeta(`SELECT id, name, email, address, phone_number, date_joined FROM accounts WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(accountRowColumns).
				AddRow(int64(7), "Alice", "a@x.com", "1 St", "555", joined))

		acc, err := repo.FindByID(testContext(), 7)

		require.NoError(t, err)
		require.NotNil(t, acc)
		want := testAccount()
		want.ID = 7
		assert.Equal(t, want, *acc)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("date as text", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(accountRowColumns).
				AddRow(int64(7), "Alice", "a@x.com", "1 St", "555", "2024-03-01"))

		acc, err := repo.FindByID(testContext(), 7)

		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, "2024-03-01", acc.DateJoined.String())
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(accountRowColumns))

		acc, err := repo.FindByID(testContext(), 404)

		require.NoError(t, err)
		assert.Nil(t, acc)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("boom"))

		acc, err := repo.FindByID(testContext(), 1)

		require.ErrorIs(t, err, ErrScanningRow)
		assert.Nil(t, acc)
	})
}

func TestAccountRepository_List(t *testing.T) {
	listSQL := regexp.QuoteMeta(`SELECT id, name, email, address, phone_number, date_joined FROM accounts ORDER BY id`)

	t.Run("empty table yields empty slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(accountRowColumns))

		accounts, err := repo.List(testContext())

		require.NoError(t, err)
		assert.NotNil(t, accounts)
		assert.Empty(t, accounts)
	})

	t.Run("several rows", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		rows := sqlmock.NewRows(accountRowColumns)
		for i := 1; i <= 3; i++ {
			rows.AddRow(int64(i), "Alice", "a@x.com", "1 St", "555", joined)
		}
		mock.ExpectQuery(listSQL).WillReturnRows(rows)

		accounts, err := repo.List(testContext())

		require.NoError(t, err)
		require.Len(t, accounts, 3)
		assert.Equal(t, int64(3), accounts[2].ID)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(listSQL).WillReturnError(errors.New("boom"))

		_, err := repo.List(testContext())
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("bad row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(1), "Alice", "a@x.com", "1 St", "555", "not-a-date"))

		_, err := repo.List(testContext())
		require.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(accountRowColumns).
			AddRow(int64(1), "Alice", "a@x.com", "1 St", "555", joined).
			RowError(0, errors.New("broken pipe")))

		_, err := repo.List(testContext())
		require.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE accounts SET name = $1, email = $2, address = $3, phone_number = $4 WHERE id = $5`)

	acc := testAccount()
	acc.ID = 7
	acc.Name = "Alicia"
	args := []driver.Value{"Alicia", "a@x.com", "1 St", "555", int64(7)}

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantErrIs error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no row matched",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErrIs: ErrAccountNotFound,
		},
		{
			name: "not null violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnError(pgError(pgerrcode.NotNullViolation))
			},
			wantErrIs: ErrInvalidAccountData,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnError(errors.New("boom"))
			},
			wantErrIs: ErrExecutingStatement,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))
			},
			wantErrIs: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestRepo(t, db)
			tt.setup(mock)

			err := repo.Update(testContext(), acc)

			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM accounts WHERE id = $1`)

	t.Run("absent id is not an error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(deleteSQL).WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, repo.Delete(testContext(), 404))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestRepo(t, db)

		mock.ExpectExec(deleteSQL).WillReturnError(errors.New("boom"))

		require.ErrorIs(t, repo.Delete(testContext(), 1), ErrExecutingStatement)
	})
}
