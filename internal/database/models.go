package database

import (
	"database/sql"
	"time"

	"github.com/dentalref/dentalref/internal/engine"
)

// CacheEntry is one TTL-gated dataset payload
type CacheEntry struct {
	Key      string    `json:"key"`
	Payload  []byte    `json:"-"`
	StoredAt time.Time `json:"stored_at"`
}

// Age returns how long ago the entry was stored
func (e *CacheEntry) Age() time.Duration {
	return time.Since(e.StoredAt)
}

// Stale returns true if the entry is older than maxAge
func (e *CacheEntry) Stale(maxAge time.Duration) bool {
	return e.Age() > maxAge
}

// SavedProfile is a named criteria profile persisted between sessions
type SavedProfile struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Profile   engine.CriteriaProfile `json:"profile"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// CacheStats summarizes the dataset cache contents
type CacheStats struct {
	Entries int        `json:"entries"`
	Oldest  *time.Time `json:"oldest,omitempty"`
	Newest  *time.Time `json:"newest,omitempty"`
}

// NullTime is a helper to convert *time.Time to sql.NullTime
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// TimePtr converts sql.NullTime to *time.Time
func TimePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}
