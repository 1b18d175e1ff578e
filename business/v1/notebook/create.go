package notebook

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

func Create(ctx context.Context, r *sys.Resources, newN NewNotebook) (Notebook, error) {
	if err := validate.Struct(newN); err != nil {
		return Notebook{}, err
	}
	created, err := notebook.Insert(ctx, r, notebook.NewNotebook(newN))
	if err != nil {
		return Notebook{}, err
	}
	return Notebook(created), nil
}
