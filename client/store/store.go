// Package store holds the client side caches of notebooks and memos. Caches change only
// after the gateway confirmed the mutation; a failed call leaves them untouched, is logged
// and reported to the user through a Notifier.
package store

import (
	"context"

	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/business/v1/notebook"
)

// State of a store cache
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Failure messages shown to the user
const (
	FailedFetchNotebook  = "failed to fetch notebook"
	FailedAddNotebook    = "failed to add notebook"
	FailedDeleteNotebook = "failed to delete notebook"
	FailedFetchMemo      = "failed to fetch memo"
	FailedAddMemo        = "failed to add memo"
	FailedDeleteMemo     = "failed to delete memo"
)

// Notifier shows a failure to the user and returns once it was acknowledged
type Notifier interface {
	Notify(message string, err error)
}

// NotebookGateway is the part of the gateway the notebook store calls
type NotebookGateway interface {
	SelectAllNotebook(ctx context.Context) ([]notebook.Notebook, error)
	InsertNotebook(ctx context.Context, name string) (notebook.Notebook, error)
	DeleteNotebook(ctx context.Context, id int64) error
}

// MemoGateway is the part of the gateway the memo store calls
type MemoGateway interface {
	SelectMemo(ctx context.Context, notebookId int64) ([]memo.Memo, error)
	InsertMemo(ctx context.Context, content string, notebookId int64) (memo.Memo, error)
	DeleteMemo(ctx context.Context, id int64) error
}
