// Package repository holds the storage abstractions: Postgres-backed stores
// for users, cart entries and products, and the Redis-backed OTP ledger.
// Uniqueness is enforced by the store (unique indexes), never by
// check-then-insert in application code.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetrecords/storefront/internal/domain"
)

// storeErr surfaces transient storage failures as a retryable error and
// passes everything else through untouched.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
