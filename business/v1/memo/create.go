package memo

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/memo"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

func Create(ctx context.Context, r *sys.Resources, newM NewMemo) (Memo, error) {
	if err := validate.Struct(newM); err != nil {
		return Memo{}, err
	}
	created, err := memo.Insert(ctx, r, memo.NewMemo(newM))
	if err != nil {
		return Memo{}, err
	}
	return Memo(created), nil
}
