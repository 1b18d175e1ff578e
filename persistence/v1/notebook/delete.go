package notebook

import (
	"context"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// Delete removes the notebook row only, its memos are left in place.
// Deleting an unknown id is not an error.
func Delete(ctx context.Context, r *sys.Resources, id int64) error {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	if _, err := db.ExecContext(dbCtx, "DELETE FROM notebook WHERE id = ?", id); err != nil {
		return errs.Store("delete notebook", err)
	}
	return nil
}
