package memo

import "time"

const (
	memoKey = "memos.%d"
	columns = "id, content, notebook_id, created_at, updated_at"
)

type Memo struct {
	Id         int64     `json:"id"`
	Content    string    `json:"content"`
	NotebookId int64     `json:"notebook_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NewMemo struct {
	Content    string
	NotebookId int64
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Memo, error) {
	var m Memo
	err := s.Scan(&m.Id, &m.Content, &m.NotebookId, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}
