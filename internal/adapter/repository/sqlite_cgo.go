//go:build cgo

package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

func sqliteConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return errUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return errForeignKeyViolation
	default:
		return nil
	}
}
