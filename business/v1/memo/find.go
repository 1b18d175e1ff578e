package memo

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/memo"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

func FindAll(ctx context.Context, r *sys.Resources) ([]Memo, error) {
	rows, err := memo.FindAll(ctx, r)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func FindByNotebook(ctx context.Context, r *sys.Resources, notebookId int64) ([]Memo, error) {
	rows, err := memo.FindByNotebook(ctx, r, notebookId)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func Find(ctx context.Context, r *sys.Resources, id int64) (Memo, error) {
	if err := validate.Id("id", id); err != nil {
		return Memo{}, err
	}
	find, err := memo.Find(ctx, r, id)
	if err != nil {
		return Memo{}, err
	}
	if find.Id == 0 {
		return Memo{}, nil
	}
	return Memo(find), nil
}

// FindLast returns the most recently inserted memo, zero valued when there is none
func FindLast(ctx context.Context, r *sys.Resources) (Memo, error) {
	last, err := memo.FindLast(ctx, r)
	if err != nil {
		return Memo{}, err
	}
	return Memo(last), nil
}
