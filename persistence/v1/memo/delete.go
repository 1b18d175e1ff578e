package memo

import (
	"context"
	"fmt"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// Delete removes the memo and its cached copy. Deleting an unknown id is not an error.
func Delete(ctx context.Context, r *sys.Resources, id int64) error {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	if _, err := db.ExecContext(dbCtx, "DELETE FROM memo WHERE id = ?", id); err != nil {
		return errs.Store("delete memo", err)
	}

	if r.Cache != nil {
		tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
		defer tcCancel()
		if err := r.Cache.Del(tcCtx, fmt.Sprintf(memoKey, id)).Err(); err != nil {
			r.Log.Error("failure to evict memo ", id, " from cache: ", err.Error())
		}
	}
	return nil
}
