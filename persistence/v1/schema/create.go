package schema

import (
	"context"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// Create makes sure both tables exist. Running it again is a no-op.
func Create(ctx context.Context, r *sys.Resources) error {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	for _, stmt := range statements(r.Configs.Database.Driver) {
		if _, err := db.ExecContext(dbCtx, stmt); err != nil {
			return errs.Store("create schema", err)
		}
	}

	return nil
}
