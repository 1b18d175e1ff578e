package memo

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/memo"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

func Delete(ctx context.Context, r *sys.Resources, id int64) error {
	if err := validate.Id("id", id); err != nil {
		return err
	}
	return memo.Delete(ctx, r, id)
}
