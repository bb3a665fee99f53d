package models

import (
	"database/sql"
	"time"
)

// Category is the database representation of a category row.
type Category struct {
	CategoryID string         `db:"category_id"`
	Name       string         `db:"name"`
	Type       string         `db:"type"`
	Icon       string         `db:"icon"`
	Color      string         `db:"color"`
	IsSystem   bool           `db:"is_system"`
	UserID     sql.NullString `db:"user_id"` // NULL for system categories
	CreatedAt  time.Time      `db:"created_at"`
}
