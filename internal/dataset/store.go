package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

//go:embed data/materials.json data/procedures.json data/drugs.json
var defaultData embed.FS

// Cache is the TTL-gated key/value contract the store loads through.
// Implementations report a miss for entries older than maxAge.
type Cache interface {
	CacheGet(ctx context.Context, key string, maxAge time.Duration) ([]byte, bool, error)
	CachePut(ctx context.Context, key string, payload []byte, storedAt time.Time) error
}

// Store holds the immutable dataset collections
type Store struct {
	materials  []Material
	procedures []Procedure
	drugs      []Drug
}

// Options configures dataset loading
type Options struct {
	Dir   string        // directory holding materials.json etc; embedded defaults fill gaps
	Cache Cache         // optional; nil disables caching
	TTL   time.Duration // cache freshness window
}

// Load reads the three datasets, preferring the cache, then files in Dir,
// then the embedded defaults
func Load(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{}

	raw, err := loadPayload(ctx, opts, "materials")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.materials); err != nil {
		return nil, fmt.Errorf("failed to parse materials dataset: %w", err)
	}

	raw, err = loadPayload(ctx, opts, "procedures")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.procedures); err != nil {
		return nil, fmt.Errorf("failed to parse procedures dataset: %w", err)
	}

	raw, err = loadPayload(ctx, opts, "drugs")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.drugs); err != nil {
		return nil, fmt.Errorf("failed to parse drugs dataset: %w", err)
	}

	return s, nil
}

// loadPayload resolves one dataset's raw JSON through cache, disk, embed
func loadPayload(ctx context.Context, opts Options, name string) ([]byte, error) {
	key := "dataset:" + name

	if opts.Cache != nil {
		payload, ok, err := opts.Cache.CacheGet(ctx, key, opts.TTL)
		if err != nil {
			return nil, fmt.Errorf("cache lookup for %s failed: %w", name, err)
		}
		if ok {
			return payload, nil
		}
	}

	payload, err := readDatasetFile(opts.Dir, name)
	if err != nil {
		return nil, err
	}

	if opts.Cache != nil {
		if err := opts.Cache.CachePut(ctx, key, payload, time.Now()); err != nil {
			return nil, fmt.Errorf("cache store for %s failed: %w", name, err)
		}
	}

	return payload, nil
}

// readDatasetFile reads name.json from dir, falling back to embedded data
func readDatasetFile(dir, name string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, name+".json")
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	data, err := defaultData.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("embedded dataset %s missing: %w", name, err)
	}
	return data, nil
}

// Materials returns the full material collection
func (s *Store) Materials() []Material {
	return s.materials
}

// Procedures returns the full procedure collection
func (s *Store) Procedures() []Procedure {
	return s.procedures
}

// Drugs returns the full drug collection
func (s *Store) Drugs() []Drug {
	return s.drugs
}
