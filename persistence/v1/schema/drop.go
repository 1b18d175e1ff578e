package schema

import (
	"context"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

func Drop(ctx context.Context, r *sys.Resources) error {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	for _, stmt := range dropSchema {
		if _, err := db.ExecContext(dbCtx, stmt); err != nil {
			return errs.Store("drop schema", err)
		}
	}

	return nil
}
