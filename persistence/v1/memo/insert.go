package memo

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// Insert stores a memo and returns it with the id and timestamps the store assigned
func Insert(ctx context.Context, r *sys.Resources, newM NewMemo) (Memo, error) {
	db := r.Database

	n := time.Now().Truncate(time.Second)

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO memo (content, notebook_id, created_at, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return Memo{}, errs.Store("prepare insert memo", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, newM.Content, newM.NotebookId, n, n)
	if err != nil {
		return Memo{}, errs.Store("exec insert memo", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Memo{}, errs.Store("insert memo", fmt.Errorf("read generated id: %w", err))
	}

	return Memo{Id: id, Content: newM.Content, NotebookId: newM.NotebookId, CreatedAt: n, UpdatedAt: n}, nil
}
