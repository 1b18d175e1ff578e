package notebook

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// FindAll returns every notebook in insertion order
func FindAll(ctx context.Context, r *sys.Resources) ([]Notebook, error) {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, "SELECT "+columns+" FROM notebook ORDER BY id")
	if err != nil {
		return nil, errs.Store("select all notebook", err)
	}
	defer rows.Close()

	notebooks := make([]Notebook, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, errs.Store("scan notebook", err)
		}
		notebooks = append(notebooks, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Store("select all notebook", err)
	}
	return notebooks, nil
}

// Find returns the notebook with the id, or a zero Notebook when there is none
func Find(ctx context.Context, r *sys.Resources, id int64) (Notebook, error) {
	return findOne(ctx, r, "select notebook", "SELECT "+columns+" FROM notebook WHERE id = ?", id)
}

// FindLast returns the notebook with the highest id, or a zero Notebook on an empty table
func FindLast(ctx context.Context, r *sys.Resources) (Notebook, error) {
	return findOne(ctx, r, "select last notebook", "SELECT "+columns+" FROM notebook ORDER BY id DESC LIMIT 1")
}

func findOne(ctx context.Context, r *sys.Resources, op, query string, args ...any) (Notebook, error) {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	n, err := scan(db.QueryRowContext(dbCtx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Notebook{}, nil
	case err != nil:
		return Notebook{}, errs.Store(op, err)
	default:
		return n, nil
	}
}
