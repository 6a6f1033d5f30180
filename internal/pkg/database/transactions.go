package database

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"

	// class 08 is connection exception, 57P0x is operator intervention (shutdown)
	sqlClassConnectionException = "08"
	sqlStateAdminShutdown       = "57P01"
	sqlStateCrashShutdown       = "57P02"
	sqlStateCannotConnectNow    = "57P03"
)

// DefaultTxOptions are used for every document transaction. Row locks taken by
// SELECT ... FOR UPDATE give per-document serialization, so read committed is enough.
var DefaultTxOptions = pgx.TxOptions{
	IsoLevel: pgx.ReadCommitted,
}

// IsConflict reports whether err means a concurrent transaction won and the
// whole unit of work may be retried.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return true
	default:
		return false
	}
}

// IsUnavailable reports whether err is a transport level failure rather than
// a problem with the statement itself.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == sqlClassConnectionException {
			return true
		}

		switch pgErr.Code {
		case sqlStateAdminShutdown, sqlStateCrashShutdown, sqlStateCannotConnectNow:
			return true
		}

		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
