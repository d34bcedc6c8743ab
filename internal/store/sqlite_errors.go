package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteErrorCode extracts the extended result code from a go-sqlite3 driver
// error. It returns 0 when err is nil or not a driver error, so the result
// can be compared directly against sqlite3.ErrConstraint* constants.
func sqliteErrorCode(err error) sqlite3.ErrNoExtended {
	if err == nil {
		return 0
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode
	}

	return 0
}

// isUniqueViolation reports whether err is a violation of a UNIQUE
// constraint (e.g. duplicate email, duplicate (user, photo) favorite pair).
func isUniqueViolation(err error) bool {
	return sqliteErrorCode(err) == sqlite3.ErrConstraintUnique
}

// isForeignKeyViolation reports whether err is a violation of a FOREIGN KEY
// constraint (e.g. a photo referencing a nonexistent user).
func isForeignKeyViolation(err error) bool {
	return sqliteErrorCode(err) == sqlite3.ErrConstraintForeignKey
}
