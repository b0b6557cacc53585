package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrReferenced = errors.New("record is still referenced")
	ErrDuplicate  = errors.New("record already exists")
)

// Postgres SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translate maps driver and gorm errors onto the repository sentinels.
// Unknown errors are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrReferenced
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrReferenced
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}

	// sqlite reports constraint failures only through the message
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key constraint"):
		return ErrReferenced
	case strings.Contains(msg, "unique constraint"):
		return ErrDuplicate
	}

	return err
}
