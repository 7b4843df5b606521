package services

import (
	"context"
	"crypto/subtle"

	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/repositories/settings"
)

// AdminService guards the administrative mode.
type AdminService interface {
	// VerifyAdminPassword reports whether candidate equals the stored
	// passphrase exactly. A missing row yields common.ErrConfigMissing.
	VerifyAdminPassword(ctx context.Context, candidate string) (bool, error)
}

type adminService struct {
	conn   *dbx.Conn
	logger logging.Logger
}

func NewAdminService(conn *dbx.Conn, logger logging.Logger) AdminService {
	return &adminService{conn: conn, logger: logger}
}

func (s *adminService) VerifyAdminPassword(ctx context.Context, candidate string) (bool, error) {
	var stored string
	err := run(ctx, s.conn, s.logger, "verify admin password", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		stored, err = settings.NewSQLiteRepository(tx).Get(ctx, settings.KeyAdminPassword)
		return err
	})
	if err != nil {
		return false, err
	}

	ok := subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
	if !ok {
		s.logger.Warn(ctx, "admin password rejected")
	}
	return ok, nil
}
