package store

import (
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// classifyError maps driver errors that describe bad row data onto
// [ErrInvalidAccountData]. Every other error is wrapped with fallback.
//
// PostgreSQL codes:
//   - Class 22: string_data_right_truncation, invalid_datetime_format,
//     datetime_field_overflow
//   - Class 23: not_null_violation, check_violation
//
// SQLite extended codes: SQLITE_CONSTRAINT_NOTNULL, SQLITE_CONSTRAINT_CHECK.
func classifyError(err error, fallback error) error {
	switch postgresError(err) {
	case pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}

	switch sqliteError(err) {
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
