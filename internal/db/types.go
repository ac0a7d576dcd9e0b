package db

import "time"

// Change is one recorded write to a settings key.
type Change struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	OldValue  *string   `json:"old_value"`
	NewValue  string    `json:"new_value"`
	CreatedAt time.Time `json:"created_at"`
}
