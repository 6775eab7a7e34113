package scheduler

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
)

// countingStore counts ListPalettes calls, one per regeneration run.
type countingStore struct {
	*datastore.MemoryStore
	runs atomic.Int32
}

func (c *countingStore) ListPalettes(brandID string) ([]models.ColorPalette, error) {
	c.runs.Add(1)
	return c.MemoryStore.ListPalettes(brandID)
}

// editingStore runs edit once, right before the first steps-only save, as if
// a user had written the palette while regeneration was running.
type editingStore struct {
	*datastore.MemoryStore
	once  sync.Once
	edit  func()
	saves atomic.Int32
}

func (e *editingStore) SavePaletteSteps(p models.ColorPalette, readAt time.Time) (models.ColorPalette, error) {
	e.saves.Add(1)
	e.once.Do(e.edit)
	return e.MemoryStore.SavePaletteSteps(p, readAt)
}

func seed(t *testing.T, store *datastore.MemoryStore) (models.Brand, models.ColorPalette) {
	t.Helper()
	brand, err := store.CreateBrand(models.NewBrand(models.CreateBrandRequest{Name: "Acme"}))
	if err != nil {
		t.Fatalf("CreateBrand: %v", err)
	}
	p, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Primary", BaseColor: "#3366ff", IsCore: true})
	if _, err := store.CreatePalette(p); err != nil {
		t.Fatalf("CreatePalette: %v", err)
	}
	return brand, p
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestRegenerateBrand(t *testing.T) {
	tests := []struct {
		name     string
		numSteps int
		locked   bool
	}{
		{"locked base keeps the stored color", 5, true},
		{"unlocked base follows the new base slot", 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := datastore.NewMemoryStore()
			brand, p := seed(t, store)

			cfg := palette.DefaultConfig()
			cfg.NumSteps = tt.numSteps
			cfg.LockBaseColor = tt.locked
			cfg.LightnessRange = [2]float64{0.3, 0.9}
			if _, err := store.UpdatePaletteConfig(brand.BrandID, cfg); err != nil {
				t.Fatalf("UpdatePaletteConfig: %v", err)
			}

			r := NewRegenerator(store, store, nil, time.Millisecond)
			n, err := r.RegenerateBrand(brand.BrandID)
			if err != nil {
				t.Fatalf("RegenerateBrand() error = %v", err)
			}
			if n != 1 {
				t.Errorf("RegenerateBrand() saved %d palettes, want 1", n)
			}

			got, _ := store.GetPalette(p.PaletteID)
			if len(got.Steps) != tt.numSteps {
				t.Fatalf("len(Steps) = %d, want %d", len(got.Steps), tt.numSteps)
			}
			base := got.Steps[palette.BaseIndex(tt.numSteps)]
			if base.Values.Hex != got.BaseColor.Hex {
				t.Errorf("base slot %s does not match stored base %s", base.Values.Hex, got.BaseColor.Hex)
			}
			if tt.locked && got.BaseColor.Hex != "#3366ff" {
				t.Errorf("locked base changed to %s", got.BaseColor.Hex)
			}
		})
	}
}

func TestRegenerateBrandKeepsConcurrentEdits(t *testing.T) {
	mem := datastore.NewMemoryStore()
	brand, p := seed(t, mem)

	cfg := palette.DefaultConfig()
	cfg.NumSteps = 7
	_, _ = mem.UpdatePaletteConfig(brand.BrandID, cfg)

	store := &editingStore{MemoryStore: mem}
	store.edit = func() {
		current, _ := mem.GetPalette(p.PaletteID)
		current.Name = "Renamed"
		current.IsCore = false
		current.UpdatedAt = current.UpdatedAt.Add(time.Second)
		if _, err := mem.SavePalette(current); err != nil {
			t.Errorf("SavePalette: %v", err)
		}
	}

	r := NewRegenerator(store, store, nil, time.Millisecond)
	n, err := r.RegenerateBrand(brand.BrandID)
	if err != nil || n != 1 {
		t.Fatalf("RegenerateBrand() = %d, %v; want 1, nil", n, err)
	}
	if got := store.saves.Load(); got != 2 {
		t.Errorf("saves = %d, want a retry after the edit", got)
	}

	got, _ := mem.GetPalette(p.PaletteID)
	if got.Name != "Renamed" || got.IsCore {
		t.Errorf("concurrent edit lost: name %q, core %v", got.Name, got.IsCore)
	}
	if len(got.Steps) != 7 {
		t.Errorf("len(Steps) = %d, want 7", len(got.Steps))
	}
}

func TestRegenerateBrandSkipsDeletedPalette(t *testing.T) {
	mem := datastore.NewMemoryStore()
	brand, p := seed(t, mem)

	store := &editingStore{MemoryStore: mem}
	store.edit = func() { _ = mem.DeletePalette(p.PaletteID) }

	r := NewRegenerator(store, store, nil, time.Millisecond)
	n, err := r.RegenerateBrand(brand.BrandID)
	if err != nil || n != 0 {
		t.Errorf("RegenerateBrand() = %d, %v; want 0, nil", n, err)
	}
}

func TestRegenerateBrandMissing(t *testing.T) {
	store := datastore.NewMemoryStore()
	r := NewRegenerator(store, store, nil, time.Millisecond)
	if _, err := r.RegenerateBrand("nope"); err == nil {
		t.Error("expected error for unknown brand")
	}
}

func TestRequestDebounces(t *testing.T) {
	mem := datastore.NewMemoryStore()
	store := &countingStore{MemoryStore: mem}
	brand, p := seed(t, mem)

	cfg := palette.DefaultConfig()
	cfg.NumSteps = 7
	_, _ = mem.UpdatePaletteConfig(brand.BrandID, cfg)

	r := NewRegenerator(store, store, nil, 30*time.Millisecond)
	defer r.Stop()

	for i := 0; i < 10; i++ {
		r.Request(brand.BrandID)
	}
	if r.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", r.Pending())
	}

	waitFor(t, func() bool {
		got, _ := mem.GetPalette(p.PaletteID)
		return len(got.Steps) == 7 && r.Pending() == 0
	})
	time.Sleep(60 * time.Millisecond)

	if runs := store.runs.Load(); runs != 1 {
		t.Errorf("regeneration ran %d times, want 1", runs)
	}
}

func TestStopCancelsPending(t *testing.T) {
	mem := datastore.NewMemoryStore()
	store := &countingStore{MemoryStore: mem}
	brand, _ := seed(t, mem)

	r := NewRegenerator(store, store, nil, time.Hour)
	r.Request(brand.BrandID)
	r.Stop()

	if r.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", r.Pending())
	}
	r.Request(brand.BrandID)
	if r.Pending() != 0 {
		t.Error("Request after Stop should be ignored")
	}
	if store.runs.Load() != 0 {
		t.Error("no regeneration should have run")
	}
}
