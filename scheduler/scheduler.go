package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/metrics"
	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	log "github.com/sirupsen/logrus"
)

// DefaultDebounce is how long a brand must stay quiet before its palettes
// are regenerated.
const DefaultDebounce = 300 * time.Millisecond

// maxSaveAttempts bounds how often a palette edited mid-run is re-read and
// regenerated again.
const maxSaveAttempts = 3

type pending struct {
	timer *time.Timer
	gen   uint64
}

// Regenerator rebuilds a brand's palettes after its palette config changes.
// Bursts of requests for one brand collapse into a single run.
type Regenerator struct {
	BrandRepo   datastore.BrandRepository
	PaletteRepo datastore.PaletteRepository
	Metrics     metrics.Recorder
	Debounce    time.Duration

	mu      sync.Mutex
	timers  map[string]*pending
	gen     uint64
	stopped bool
	running sync.WaitGroup
}

func NewRegenerator(brands datastore.BrandRepository, palettes datastore.PaletteRepository, rec metrics.Recorder, debounce time.Duration) *Regenerator {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if rec == nil {
		rec = metrics.NewNoOp()
	}
	return &Regenerator{
		BrandRepo:   brands,
		PaletteRepo: palettes,
		Metrics:     rec,
		Debounce:    debounce,
		timers:      make(map[string]*pending),
	}
}

// Request (re)arms the brand's timer. Calls after Stop are ignored.
func (r *Regenerator) Request(brandID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	if p, ok := r.timers[brandID]; ok {
		p.timer.Stop()
	}

	r.gen++
	gen := r.gen
	r.timers[brandID] = &pending{
		gen:   gen,
		timer: time.AfterFunc(r.Debounce, func() { r.fire(brandID, gen) }),
	}
}

func (r *Regenerator) fire(brandID string, gen uint64) {
	r.mu.Lock()
	p, ok := r.timers[brandID]
	if r.stopped || !ok || p.gen != gen {
		r.mu.Unlock()
		return
	}
	delete(r.timers, brandID)
	r.running.Add(1)
	r.mu.Unlock()

	defer r.running.Done()
	if _, err := r.RegenerateBrand(brandID); err != nil {
		log.WithField("brand_id", brandID).WithError(err).Error("Palette regeneration failed")
	}
}

// Pending reports how many brands are waiting on their timer.
func (r *Regenerator) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// RegenerateBrand regenerates every palette of the brand under its current
// config and saves them. It returns how many palettes were saved; a failure
// on one palette does not stop the others.
func (r *Regenerator) RegenerateBrand(brandID string) (int, error) {
	ctx := context.Background()
	entry := log.WithField("brand_id", brandID)

	brand, err := r.BrandRepo.GetBrand(brandID)
	if err != nil {
		r.Metrics.BrandRegenerated(ctx, 0, err)
		return 0, fmt.Errorf("loading brand: %w", err)
	}

	palettes, err := r.PaletteRepo.ListPalettes(brandID)
	if err != nil {
		r.Metrics.BrandRegenerated(ctx, 0, err)
		return 0, fmt.Errorf("loading palettes: %w", err)
	}

	cfg := brand.PaletteConfig.Normalize()
	var errs []error
	saved := 0
	for _, p := range palettes {
		err := r.regeneratePalette(ctx, p, cfg)
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			entry.WithField("palette_id", p.PaletteID).Debug("Palette deleted during regeneration")
			continue
		}
		if err != nil {
			entry.WithField("palette_id", p.PaletteID).WithError(err).Warn("Could not save regenerated palette")
			errs = append(errs, fmt.Errorf("saving palette %s: %w", p.PaletteID, err))
			continue
		}
		saved++
	}

	err = errors.Join(errs...)
	r.Metrics.BrandRegenerated(ctx, saved, err)
	entry.WithFields(log.Fields{"palettes": saved, "steps": cfg.NumSteps}).Info("Regenerated brand palettes")
	return saved, err
}

// regeneratePalette writes back only the steps and base color of p. When p
// was edited after it was listed, the fresh row is regenerated instead so
// the edit survives.
func (r *Regenerator) regeneratePalette(ctx context.Context, p models.ColorPalette, cfg palette.Config) error {
	for attempt := 1; ; attempt++ {
		readAt := p.UpdatedAt
		p.Regenerate(cfg)
		r.Metrics.PaletteGenerated(ctx, "regenerate", len(p.Steps), false)

		_, err := r.PaletteRepo.SavePaletteSteps(p, readAt)
		if !errors.Is(err, datastore.ErrPaletteChanged) || attempt == maxSaveAttempts {
			return err
		}
		if p, err = r.PaletteRepo.GetPalette(p.PaletteID); err != nil {
			return err
		}
	}
}

// Stop cancels pending timers and waits for runs already in progress.
func (r *Regenerator) Stop() {
	r.mu.Lock()
	r.stopped = true
	for id, p := range r.timers {
		p.timer.Stop()
		delete(r.timers, id)
	}
	r.mu.Unlock()

	r.running.Wait()
	log.Info("Regenerator stopped")
}
