package memo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/sys"
)

// FindAll returns every memo in insertion order
func FindAll(ctx context.Context, r *sys.Resources) ([]Memo, error) {
	return findMany(ctx, r, "select all memo", "SELECT "+columns+" FROM memo ORDER BY id")
}

// FindByNotebook returns the memos of one notebook in insertion order, empty when it has none
func FindByNotebook(ctx context.Context, r *sys.Resources, notebookId int64) ([]Memo, error) {
	return findMany(ctx, r, "select memo", "SELECT "+columns+" FROM memo WHERE notebook_id = ? ORDER BY id", notebookId)
}

// FindLast returns the memo with the highest id, or a zero Memo on an empty table
func FindLast(ctx context.Context, r *sys.Resources) (Memo, error) {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	m, err := scan(db.QueryRowContext(dbCtx, "SELECT "+columns+" FROM memo ORDER BY id DESC LIMIT 1"))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Memo{}, nil
	case err != nil:
		return Memo{}, errs.Store("select last memo", err)
	default:
		return m, nil
	}
}

// Find returns the memo with the id, or a zero Memo when there is none.
// Memos are never updated, so a cached copy stays valid until Delete drops it.
func Find(ctx context.Context, r *sys.Resources, id int64) (Memo, error) {
	logger := r.Log
	cache := r.Cache
	db := r.Database

	key := fmt.Sprintf(memoKey, id)

	if cache != nil {
		tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
		get, err := cache.Get(tcCtx, key).Result()
		tcCancel()
		if err != nil && err != redis.Nil {
			logger.Error("failure to get memo ", id, " from cache: ", err.Error())
		}
		if get != "" {
			var memo Memo
			if err := json.Unmarshal([]byte(get), &memo); err != nil {
				logger.Errorf("error parsing cached response for key %s: %s", key, err)
			} else {
				return memo, nil
			}
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	memo, err := scan(db.QueryRowContext(dbCtx, "SELECT "+columns+" FROM memo WHERE id = ?", id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Memo{}, nil
	case err != nil:
		return Memo{}, errs.Store("select memo by id", err)
	}

	if cache != nil {
		if data, err := json.Marshal(memo); err != nil {
			logger.Errorf("error parsing data to cache for key %s: %s", key, err)
		} else {
			tcCtx, tcCancel := context.WithTimeout(ctx, r.Configs.Cache.OperationTimeout)
			defer tcCancel()

			if err := cache.Set(tcCtx, key, string(data), r.Configs.Cache.CacheTTL).Err(); err != nil {
				logger.Error("failure to set memo ", id, " into cache: ", err.Error())
			}
		}
	}

	return memo, nil
}

func findMany(ctx context.Context, r *sys.Resources, op, query string, args ...any) ([]Memo, error) {
	db := r.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, r.Configs.Database.OperationTimeout)
	defer dbCancel()
	rows, err := db.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, errs.Store(op, err)
	}
	defer rows.Close()

	memos := make([]Memo, 0)
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, errs.Store("scan memo", err)
		}
		memos = append(memos, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Store(op, err)
	}
	return memos, nil
}
