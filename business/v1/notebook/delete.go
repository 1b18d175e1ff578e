package notebook

import (
	"context"

	"github.com/ribgsilva/memo-api/persistence/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/validate"
	"github.com/ribgsilva/memo-api/sys"
)

// Delete removes a notebook. Its memos are not deleted.
func Delete(ctx context.Context, r *sys.Resources, id int64) error {
	if err := validate.Id("id", id); err != nil {
		return err
	}
	return notebook.Delete(ctx, r, id)
}
