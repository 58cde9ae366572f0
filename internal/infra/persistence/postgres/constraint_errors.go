package postgres

import (
	"strings"

	"foodmarket/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string) {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgUniqueViolation
}

// violatesConstraint reports a unique violation on a constraint whose name contains fragment.
func violatesConstraint(err error, fragment string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}
	if _, constraint := pgErrorCode(err); constraint != "" {
		return strings.Contains(constraint, fragment)
	}

	return strings.Contains(err.Error(), fragment)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if code, _ := pgErrorCode(err); code != "" {
		return code == pgNotNullViolation
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgCheckViolation
}
