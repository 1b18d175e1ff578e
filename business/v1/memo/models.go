package memo

import (
	"time"

	"github.com/ribgsilva/memo-api/persistence/v1/memo"
)

type Memo struct {
	Id         int64     `json:"id" example:"1"`
	Content    string    `json:"content" example:"<p>hello</p>"`
	NotebookId int64     `json:"notebook_id" example:"1"`
	CreatedAt  time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

// NewMemo is what the editor submits. Content may be empty, an empty document is still a memo.
type NewMemo struct {
	Content    string `json:"content"`
	NotebookId int64  `json:"notebook_id" validate:"gt=0"`
}

func fromRows(rows []memo.Memo) []Memo {
	memos := make([]Memo, len(rows))
	for i, m := range rows {
		memos[i] = Memo(m)
	}
	return memos
}
