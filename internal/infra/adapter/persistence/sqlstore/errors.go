package sqlstore

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateKey is returned when an insert violates a unique or primary key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTxUnsupported is returned by BatchUpdate when the querier cannot begin transactions.
	ErrTxUnsupported = errors.New("querier does not support transactions")

	// ErrInvalidIdentifier is returned for table or column names outside [A-Za-z0-9_.].
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

const mysqlDuplicateEntry uint16 = 1062

// isDuplicateKey reports whether err is a unique constraint violation in MySQL or SQLite.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return true
		}
	}
	return false
}

// translateError maps driver errors onto package sentinels, keeping the cause.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}
	return err
}
