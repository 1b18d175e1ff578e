package notebook

import "time"

const columns = "id, name, created_at, updated_at"

type Notebook struct {
	Id        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewNotebook struct {
	Name string
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Notebook, error) {
	var n Notebook
	err := s.Scan(&n.Id, &n.Name, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}
