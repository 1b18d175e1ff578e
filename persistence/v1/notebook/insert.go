package notebook

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// Insert stores a notebook and returns it with the id and timestamps the store assigned
func Insert(ctx context.Context, r *sys.Resources, newN NewNotebook) (Notebook, error) {
	db := r.Database

	n := time.Now().Truncate(time.Second)

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notebook (name, created_at, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return Notebook{}, errs.Store("prepare insert notebook", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, newN.Name, n, n)
	if err != nil {
		return Notebook{}, errs.Store("exec insert notebook", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Notebook{}, errs.Store("insert notebook", fmt.Errorf("read generated id: %w", err))
	}

	return Notebook{Id: id, Name: newN.Name, CreatedAt: n, UpdatedAt: n}, nil
}
