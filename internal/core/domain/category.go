package domain

import "time"

// Category labels a transaction. System categories are seeded by migration and
// shared by everyone; user categories belong to their creator.
type Category struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	IsSystem   bool            `json:"isSystem"`
	UserID     string          `json:"userID,omitempty"` // Empty for system categories
	CreatedAt  time.Time       `json:"createdAt"`
}
