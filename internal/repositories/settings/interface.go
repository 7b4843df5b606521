// Package settings stores the ledger's key/value configuration rows, such as
// the administrative passphrase.
package settings

import (
	"context"
)

// KeyAdminPassword holds the shared administrative passphrase.
const KeyAdminPassword = "admin_password"

type Repository interface {
	// Get returns the value of key or common.ErrConfigMissing.
	Get(ctx context.Context, key string) (string, error)
}
