package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeCache records cache traffic for store tests
type fakeCache struct {
	entries map[string][]byte
	gets    int
	puts    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) CacheGet(_ context.Context, key string, _ time.Duration) ([]byte, bool, error) {
	c.gets++
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *fakeCache) CachePut(_ context.Context, key string, payload []byte, _ time.Time) error {
	c.puts++
	c.entries[key] = payload
	return nil
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	store, err := Load(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(store.Materials()) == 0 {
		t.Error("expected embedded materials")
	}
	if len(store.Procedures()) == 0 {
		t.Error("expected embedded procedures")
	}
	if len(store.Drugs()) == 0 {
		t.Error("expected embedded drugs")
	}
}

func TestLoad_DirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	materials := `[{"id": "test-material", "name": "Test Material", "category": "Restorative"}]`
	if err := os.WriteFile(filepath.Join(dir, "materials.json"), []byte(materials), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(context.Background(), Options{Dir: dir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(store.Materials()) != 1 || store.Materials()[0].ID != "test-material" {
		t.Errorf("expected the on-disk materials file to win, got %d materials", len(store.Materials()))
	}
	// procedures.json absent on disk; embedded defaults fill the gap
	if len(store.Procedures()) == 0 {
		t.Error("expected embedded procedures fallback")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "materials.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(context.Background(), Options{Dir: dir}); err == nil {
		t.Fatal("expected parse error for malformed materials.json")
	}
}

func TestLoad_CachePopulatedOnMiss(t *testing.T) {
	cache := newFakeCache()
	ctx := context.Background()

	if _, err := Load(ctx, Options{Cache: cache, TTL: time.Hour}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cache.puts != 3 {
		t.Errorf("expected 3 cache puts, got %d", cache.puts)
	}
	if _, ok := cache.entries["dataset:materials"]; !ok {
		t.Error("materials payload not cached")
	}
}

func TestLoad_CacheHitSkipsDisk(t *testing.T) {
	cache := newFakeCache()
	cache.entries["dataset:materials"] = []byte(`[{"id": "cached", "name": "Cached", "category": "Restorative"}]`)
	cache.entries["dataset:procedures"] = []byte(`[]`)
	cache.entries["dataset:drugs"] = []byte(`[]`)

	store, err := Load(context.Background(), Options{Cache: cache, TTL: time.Hour})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cache.puts != 0 {
		t.Errorf("cache hits should not write back, got %d puts", cache.puts)
	}
	if len(store.Materials()) != 1 || store.Materials()[0].ID != "cached" {
		t.Errorf("expected the cached materials payload, got %v", store.Materials())
	}
}

func TestStore_Search(t *testing.T) {
	store, err := Load(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := store.SearchMaterials("composite"); len(got) == 0 {
		t.Error("expected a match for composite")
	}
	if got := store.SearchMaterials("zzzz-no-such-material"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
	if got := store.SearchProcedures("ROOT CANAL"); len(got) == 0 {
		t.Error("search should be case-insensitive")
	}
	if got := store.SearchDrugs("amoxicillin"); len(got) == 0 {
		t.Error("expected a drug match")
	}
}

func TestStore_Find(t *testing.T) {
	store, err := Load(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m := store.FindMaterial("composite-resin"); m == nil {
		t.Error("lookup by ID failed")
	}
	if m := store.FindMaterial("composite resin"); m == nil {
		t.Error("lookup by case-insensitive name failed")
	}
	if m := store.FindMaterial("no such thing"); m != nil {
		t.Errorf("expected nil for an unknown material, got %s", m.ID)
	}
	if p := store.FindProcedure("root-canal"); p == nil {
		t.Error("procedure lookup by ID failed")
	}
}

func TestStore_ByCategory(t *testing.T) {
	store, err := Load(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	restorative := store.MaterialsByCategory("restorative")
	if len(restorative) == 0 {
		t.Fatal("expected restorative materials")
	}
	for _, m := range restorative {
		if m.Category != CategoryRestorative {
			t.Errorf("%s has category %s", m.ID, m.Category)
		}
	}
}
