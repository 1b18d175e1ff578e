package notebook

import (
	"time"

	"github.com/ribgsilva/memo-api/persistence/v1/notebook"
)

type Notebook struct {
	Id        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Work"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

type NewNotebook struct {
	Name string `json:"name" validate:"required"`
}

func fromRows(rows []notebook.Notebook) []Notebook {
	notebooks := make([]Notebook, len(rows))
	for i, n := range rows {
		notebooks[i] = Notebook(n)
	}
	return notebooks
}
