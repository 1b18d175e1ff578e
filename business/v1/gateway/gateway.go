// Package gateway binds the bridge operations to the business layer. It runs in
// the process that owns the database and is the only caller of persistence.
package gateway

import (
	"context"

	"github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/business/v1/notebook"
	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/sys"
)

// Register installs every gateway operation on d
func Register(d *bridge.Dispatcher, r *sys.Resources) {
	createSchema := func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(0); err != nil {
			return nil, err
		}
		return nil, schema.Create(ctx, r)
	}
	d.Handle(bridge.CreateDb, createSchema)
	d.Handle(bridge.CreateSchema, createSchema)

	d.Handle(bridge.SelectAllMemo, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(0); err != nil {
			return nil, err
		}
		return memo.FindAll(ctx, r)
	})

	d.Handle(bridge.SelectMemo, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(1); err != nil {
			return nil, err
		}
		notebookId, err := args.Int64(0)
		if err != nil {
			return nil, err
		}
		return memo.FindByNotebook(ctx, r, notebookId)
	})

	d.Handle(bridge.SelectMemoById, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(1); err != nil {
			return nil, err
		}
		id, err := args.Int64(0)
		if err != nil {
			return nil, err
		}
		m, err := memo.Find(ctx, r, id)
		if err != nil || m.Id == 0 {
			return nil, err
		}
		return m, nil
	})

	d.Handle(bridge.SelectAllNotebook, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(0); err != nil {
			return nil, err
		}
		return notebook.FindAll(ctx, r)
	})

	d.Handle(bridge.SelectLastMemo, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(0); err != nil {
			return nil, err
		}
		last, err := memo.FindLast(ctx, r)
		if err != nil || last.Id == 0 {
			return nil, err
		}
		return last, nil
	})

	d.Handle(bridge.SelectLastNotebook, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(0); err != nil {
			return nil, err
		}
		last, err := notebook.FindLast(ctx, r)
		if err != nil || last.Id == 0 {
			return nil, err
		}
		return last, nil
	})

	d.Handle(bridge.InsertMemo, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(2); err != nil {
			return nil, err
		}
		content, err := args.String(0)
		if err != nil {
			return nil, err
		}
		notebookId, err := args.Int64(1)
		if err != nil {
			return nil, err
		}
		return memo.Create(ctx, r, memo.NewMemo{Content: content, NotebookId: notebookId})
	})

	d.Handle(bridge.InsertNotebook, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(1); err != nil {
			return nil, err
		}
		name, err := args.String(0)
		if err != nil {
			return nil, err
		}
		return notebook.Create(ctx, r, notebook.NewNotebook{Name: name})
	})

	d.Handle(bridge.DeleteMemo, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(1); err != nil {
			return nil, err
		}
		id, err := args.Int64(0)
		if err != nil {
			return nil, err
		}
		return nil, memo.Delete(ctx, r, id)
	})

	d.Handle(bridge.DeleteNotebook, func(ctx context.Context, args bridge.Args) (any, error) {
		if err := args.Expect(1); err != nil {
			return nil, err
		}
		id, err := args.Int64(0)
		if err != nil {
			return nil, err
		}
		return nil, notebook.Delete(ctx, r, id)
	})
}
