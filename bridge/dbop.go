package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/business/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/errs"
)

// DbOp is the typed view of the gateway used by the UI process
type DbOp struct {
	c Client
}

func NewDbOp(c Client) *DbOp {
	return &DbOp{c: c}
}

func (o *DbOp) CreateDb(ctx context.Context) error {
	_, err := o.c.Call(ctx, CreateDb)
	return err
}

func (o *DbOp) SelectAllMemo(ctx context.Context) ([]memo.Memo, error) {
	memos := make([]memo.Memo, 0)
	if err := o.call(ctx, &memos, SelectAllMemo); err != nil {
		return nil, err
	}
	return memos, nil
}

func (o *DbOp) SelectMemo(ctx context.Context, notebookId int64) ([]memo.Memo, error) {
	memos := make([]memo.Memo, 0)
	if err := o.call(ctx, &memos, SelectMemo, notebookId); err != nil {
		return nil, err
	}
	return memos, nil
}

// SelectMemoById returns nil when there is no such memo
func (o *DbOp) SelectMemoById(ctx context.Context, id int64) (*memo.Memo, error) {
	var m *memo.Memo
	if err := o.call(ctx, &m, SelectMemoById, id); err != nil {
		return nil, err
	}
	return m, nil
}

func (o *DbOp) SelectAllNotebook(ctx context.Context) ([]notebook.Notebook, error) {
	notebooks := make([]notebook.Notebook, 0)
	if err := o.call(ctx, &notebooks, SelectAllNotebook); err != nil {
		return nil, err
	}
	return notebooks, nil
}

// SelectLastMemo returns nil on an empty table
func (o *DbOp) SelectLastMemo(ctx context.Context) (*memo.Memo, error) {
	var m *memo.Memo
	if err := o.call(ctx, &m, SelectLastMemo); err != nil {
		return nil, err
	}
	return m, nil
}

// SelectLastNotebook returns nil on an empty table
func (o *DbOp) SelectLastNotebook(ctx context.Context) (*notebook.Notebook, error) {
	var n *notebook.Notebook
	if err := o.call(ctx, &n, SelectLastNotebook); err != nil {
		return nil, err
	}
	return n, nil
}

func (o *DbOp) InsertMemo(ctx context.Context, content string, notebookId int64) (memo.Memo, error) {
	var m memo.Memo
	if err := o.call(ctx, &m, InsertMemo, content, notebookId); err != nil {
		return memo.Memo{}, err
	}
	return m, nil
}

func (o *DbOp) InsertNotebook(ctx context.Context, name string) (notebook.Notebook, error) {
	var n notebook.Notebook
	if err := o.call(ctx, &n, InsertNotebook, name); err != nil {
		return notebook.Notebook{}, err
	}
	return n, nil
}

func (o *DbOp) DeleteMemo(ctx context.Context, id int64) error {
	_, err := o.c.Call(ctx, DeleteMemo, id)
	return err
}

func (o *DbOp) DeleteNotebook(ctx context.Context, id int64) error {
	_, err := o.c.Call(ctx, DeleteNotebook, id)
	return err
}

func (o *DbOp) call(ctx context.Context, out any, op string, args ...any) error {
	raw, err := o.c.Call(ctx, op, args...)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &errs.BridgeError{Op: op, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}
