package notebook

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

func FindAll(ctx context.Context, r *sys.Resources) ([]Notebook, error) {
	rows, err := notebook.FindAll(ctx, r)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func Find(ctx context.Context, r *sys.Resources, id int64) (Notebook, error) {
	if err := validate.Id("id", id); err != nil {
		return Notebook{}, err
	}
	find, err := notebook.Find(ctx, r, id)
	if err != nil {
		return Notebook{}, err
	}
	return Notebook(find), nil
}

// FindLast returns the most recently inserted notebook, zero valued when there is none
func FindLast(ctx context.Context, r *sys.Resources) (Notebook, error) {
	last, err := notebook.FindLast(ctx, r)
	if err != nil {
		return Notebook{}, err
	}
	return Notebook(last), nil
}
