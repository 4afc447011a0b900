package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// RetryOnLock repeats fn with backoff while it fails with a SQLite lock error.
// Any other error stops the retries and is returned as is.
func RetryOnLock(ctx context.Context, fn func() error) error {
	var critical error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		critical = nil
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			critical = err
		}
		return nil
	})
	if critical != nil {
		return critical
	}
	return err
}

// isUniqueError checks if an error is a SQLite unique constraint violation
func isUniqueError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// nullString converts an optional string to its SQL form
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// stringPtr converts a nullable column back to an optional string
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
