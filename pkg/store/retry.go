// retry.go wraps store writes with automatic retry for transient
// SQLite errors. The busy_timeout pragma handles SQLITE_BUSY at the
// connection level; SQLITE_LOCKED and WAL short-read errors still
// surface under concurrent access and need application-level retries.
package store

import (
	"math/rand"
	"strings"
	"time"
)

const (
	retryMaxAttempts = 3
	retryBaseDelay   = 50 * time.Millisecond
	retryMaxDelay    = 500 * time.Millisecond
)

// retryOnContention executes fn, retrying with exponential backoff and
// jitter while it returns a transient SQLite error. Non-transient
// errors return immediately.
func retryOnContention(fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= retryMaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransientSQLiteErr(lastErr) {
			return lastErr
		}
		if attempt < retryMaxAttempts {
			time.Sleep(backoffDelay(attempt))
		}
	}
	return lastErr
}

// isTransientSQLiteErr reports whether the error is a transient SQLite
// condition that a retry can resolve: SQLITE_BUSY (5), SQLITE_LOCKED
// (6), SQLITE_IOERR_SHORT_READ (522), or the textual "database is
// locked" fallthrough from modernc.org/sqlite.
func isTransientSQLiteErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, pattern := range []string{
		"SQLITE_BUSY",
		"SQLITE_LOCKED",
		"IOERR_SHORT_READ",
		"database is locked",
		"database table is locked",
		"(5)",
		"(6)",
		"(522)",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// backoffDelay is baseDelay * 2^attempt capped at maxDelay, plus
// random jitter in [0, baseDelay).
func backoffDelay(attempt int) time.Duration {
	delay := retryBaseDelay << uint(attempt)
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay + time.Duration(rand.Int63n(int64(retryBaseDelay)))
}
