package service

import (
	"errors"

	"exam-admin/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// storageError wraps a repository failure as DATABASE_ERROR carrying the driver message.
func storageError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	dbErr := domain.NewError(domain.CodeDatabase, message, err)
	return dbErr.WithDetail("error", driverMessage(err))
}

// driverMessage is the message of the innermost error, or the server message of a PgError.
func driverMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
