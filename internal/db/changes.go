package db

import "fmt"

const (
	defaultChangeLimit = 100
	MaxChangeLimit     = 1000
)

// ListChanges returns the most recent changes for key, newest first.
// A limit below 1 means defaultChangeLimit; larger limits are capped at MaxChangeLimit.
func (s *Store) ListChanges(key string, limit int) ([]Change, error) {
	switch {
	case limit <= 0:
		limit = defaultChangeLimit
	case limit > MaxChangeLimit:
		limit = MaxChangeLimit
	}
	rows, err := s.db.Query(`SELECT id, key, old_value, new_value, created_at
		FROM preference_changes
		WHERE key = ?
		ORDER BY id DESC
		LIMIT ?`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()
	var changes []Change
	for rows.Next() {
		var c Change
		if err := rows.Scan(&c.ID, &c.Key, &c.OldValue, &c.NewValue, &c.CreatedAt); err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
