package api

import (
	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/metrics"
)

type Config struct {
	HTTPPort       string
	AllowedOrigins []string
	DevMode        bool
}

// Regenerator is the part of the regeneration worker handlers need.
type Regenerator interface {
	Request(brandID string)
}

type Application struct {
	Config        Config
	BrandRepo     datastore.BrandRepository
	PaletteRepo   datastore.PaletteRepository
	TypeStyleRepo datastore.TypeStyleRepository
	Regenerator   Regenerator
	Metrics       metrics.Recorder
}
