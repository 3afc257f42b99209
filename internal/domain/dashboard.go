package domain

import (
	"encoding/json"
	"time"
)

// Dashboard is a user-built widget layout. Widgets is an opaque JSON
// document owned by the frontend builder; the backend stores and returns it
// without interpreting the contents.
type Dashboard struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Widgets   json.RawMessage `json:"widgets"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
