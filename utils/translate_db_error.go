package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports whether err is a foreign-key violation, i.e.
// a grade or receipt row pointing at a missing account.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return true
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// TranslateDBError turns database errors into messages fit for the console.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return "Duplicate value, please use another"
		case "23503":
			return "This record is referenced by another table"
		case "23502":
			return "Some required fields are missing"
		case "22P02":
			return "Invalid data format"
		}
		return "A database error occurred"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}

	return err.Error()
}
