package schema

import "github.com/ribgsilva/memo-api/platform/database"

// notebook is created before memo, memo.notebook_id points at it
var schema = map[string][]string{
	database.SQLite: {
		`CREATE TABLE IF NOT EXISTS notebook (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE IF NOT EXISTS memo (id INTEGER PRIMARY KEY AUTOINCREMENT, content TEXT, notebook_id INTEGER, created_at DATETIME, updated_at DATETIME)`,
		`CREATE INDEX IF NOT EXISTS idx_memo_notebook ON memo(notebook_id)`,
	},
	database.MySQL: {
		`CREATE TABLE IF NOT EXISTS notebook (id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY, name TEXT, created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE IF NOT EXISTS memo (id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY, content TEXT, notebook_id BIGINT, created_at DATETIME, updated_at DATETIME, INDEX idx_memo_notebook (notebook_id))`,
	},
}

var dropSchema = []string{
	`DROP TABLE IF EXISTS memo`,
	`DROP TABLE IF EXISTS notebook`,
}

func statements(driver string) []string {
	if s, ok := schema[driver]; ok {
		return s
	}
	return schema[database.SQLite]
}
