package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CacheGet retrieves a cached payload, reporting a miss for entries older
// than maxAge
func (db *DB) CacheGet(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error) {
	var payload []byte
	var storedAt time.Time

	err := db.QueryRowContext(ctx, `
		SELECT payload, stored_at FROM dataset_cache WHERE key = ?
	`, key).Scan(&payload, &storedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	entry := CacheEntry{Key: key, Payload: payload, StoredAt: storedAt}
	if entry.Stale(maxAge) {
		return nil, false, nil
	}
	return payload, true, nil
}

// CachePut stores a payload under the key, replacing any previous entry
func (db *DB) CachePut(ctx context.Context, key string, payload []byte, storedAt time.Time) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO dataset_cache (key, payload, stored_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, stored_at = excluded.stored_at
	`, key, payload, storedAt)
	return err
}

// CachePurge deletes entries older than maxAge and returns how many went
func (db *DB) CachePurge(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result, err := db.ExecContext(ctx, `DELETE FROM dataset_cache WHERE stored_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CacheClear removes every cached entry
func (db *DB) CacheClear(ctx context.Context) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM dataset_cache`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetCacheStats summarizes the cache contents
func (db *DB) GetCacheStats(ctx context.Context) (*CacheStats, error) {
	stats := &CacheStats{}
	var oldest, newest sql.NullTime

	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(stored_at), MAX(stored_at) FROM dataset_cache
	`).Scan(&stats.Entries, &oldest, &newest)
	if err != nil {
		return nil, err
	}

	stats.Oldest = TimePtr(oldest)
	stats.Newest = TimePtr(newest)
	return stats, nil
}

// SaveProfile inserts or replaces a named criteria profile
func (db *DB) SaveProfile(ctx context.Context, p *SavedProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.UpdatedAt = now

	payload, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		existing, err := profileRowByName(ctx, tx, p.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			_, err := tx.ExecContext(ctx, `
				UPDATE criteria_profiles SET profile = ?, updated_at = ? WHERE id = ?
			`, string(payload), p.UpdatedAt, p.ID)
			return err
		}

		p.CreatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO criteria_profiles (id, name, profile, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, p.ID, p.Name, string(payload), p.CreatedAt, p.UpdatedAt)
		return err
	})
}

// GetProfileByName retrieves a saved profile by name (case-insensitive)
func (db *DB) GetProfileByName(ctx context.Context, name string) (*SavedProfile, error) {
	var payload string
	p := &SavedProfile{}

	err := db.QueryRowContext(ctx, `
		SELECT id, name, profile, created_at, updated_at
		FROM criteria_profiles WHERE name = ?
	`, name).Scan(&p.ID, &p.Name, &payload, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &p.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", p.Name, err)
	}
	return p, nil
}

// ListProfiles retrieves all saved profiles ordered by name
func (db *DB) ListProfiles(ctx context.Context) ([]SavedProfile, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, profile, created_at, updated_at
		FROM criteria_profiles ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []SavedProfile
	for rows.Next() {
		var payload string
		var p SavedProfile
		if err := rows.Scan(&p.ID, &p.Name, &payload, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &p.Profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile %s: %w", p.Name, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a saved profile by name
func (db *DB) DeleteProfile(ctx context.Context, name string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM criteria_profiles WHERE name = ?`, name)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("profile not found: %s", name)
	}
	return nil
}

// profileRowByName fetches id/created_at inside a transaction
func profileRowByName(ctx context.Context, tx *sql.Tx, name string) (*SavedProfile, error) {
	p := &SavedProfile{}
	var payload string

	err := tx.QueryRowContext(ctx, `
		SELECT id, name, profile, created_at, updated_at
		FROM criteria_profiles WHERE name = ?
	`, name).Scan(&p.ID, &p.Name, &payload, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &p.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", p.Name, err)
	}
	return p, nil
}
