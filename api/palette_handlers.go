package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	log "github.com/sirupsen/logrus"
)

// GET|POST /v1/brands/{brandID}/palettes
func (app *Application) brandPalettes(w http.ResponseWriter, r *http.Request) {
	brandID, ok := app.pathID(w, r, "brandID", "brand")
	if !ok {
		return
	}

	brand, err := app.BrandRepo.GetBrand(brandID)
	if err != nil {
		app.storeError(w, r, "brand", err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		palettes, err := app.PaletteRepo.ListPalettes(brandID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, palettes)

	case http.MethodPost:
		req := models.CreatePaletteRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			app.badRequest(w, r, errors.New("name is required"))
			return
		}

		p, genErr := models.NewPalette(brand, req)
		app.Metrics.PaletteGenerated(r.Context(), "api", len(p.Steps), genErr != nil)
		if genErr != nil {
			app.badRequest(w, r, genErr)
			return
		}

		created, err := app.PaletteRepo.CreatePalette(p)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		log.WithFields(log.Fields{"brand_id": brandID, "palette_id": created.PaletteID}).Info("Palette created")
		writeJSON(w, http.StatusCreated, created)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// GET|PUT|DELETE /v1/palettes/{paletteID}
func (app *Application) palette(w http.ResponseWriter, r *http.Request) {
	paletteID, ok := app.pathID(w, r, "paletteID", "palette")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := app.PaletteRepo.GetPalette(paletteID)
		if err != nil {
			app.storeError(w, r, "palette", err)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		req := models.UpdatePaletteRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		p, err := app.PaletteRepo.GetPalette(paletteID)
		if err != nil {
			app.storeError(w, r, "palette", err)
			return
		}

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				app.badRequest(w, r, errors.New("name cannot be empty"))
				return
			}
			p.Name = *req.Name
		}
		if req.IsCore != nil {
			p.IsCore = *req.IsCore
		}
		if req.BaseColor != nil {
			base, err := palette.ParseColor(*req.BaseColor)
			if err != nil {
				app.badRequest(w, r, err)
				return
			}
			if err := app.rebase(r.Context(), &p, base); err != nil {
				app.storeError(w, r, "brand", err)
				return
			}
		}
		p.UpdatedAt = time.Now().UTC()

		saved, err := app.PaletteRepo.SavePalette(p)
		if err != nil {
			app.storeError(w, r, "palette", err)
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		if err := app.PaletteRepo.DeletePalette(paletteID); err != nil {
			app.storeError(w, r, "palette", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// PUT /v1/palettes/{paletteID}/steps/{index}
//
// Overriding a regular step pins its color across regenerations. Overriding
// the base step moves the palette's base color and regenerates the rest.
func (app *Application) paletteStep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.methodNotAllowed(w, r, http.MethodPut)
		return
	}

	paletteID, ok := app.pathID(w, r, "paletteID", "palette")
	if !ok {
		return
	}
	p, err := app.PaletteRepo.GetPalette(paletteID)
	if err != nil {
		app.storeError(w, r, "palette", err)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(p.Steps) {
		app.notFound(w, r, fmt.Sprintf("step %q", r.PathValue("index")))
		return
	}

	req := models.OverrideStepRequest{}
	if err := decodeJSON(w, r, &req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}
	v, err := palette.ParseColor(req.Color)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if p.Steps[index].IsBaseColor {
		if err := app.rebase(r.Context(), &p, v); err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
	} else {
		p.Steps[index] = palette.OverrideStep(p.Steps[index], v)
	}
	p.UpdatedAt = time.Now().UTC()

	saved, err := app.PaletteRepo.SavePalette(p)
	if err != nil {
		app.storeError(w, r, "palette", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// rebase moves p to a new base color and regenerates it under its brand's
// current config.
func (app *Application) rebase(ctx context.Context, p *models.ColorPalette, base palette.ColorValues) error {
	brand, err := app.BrandRepo.GetBrand(p.BrandID)
	if err != nil {
		return err
	}
	p.BaseColor = base
	p.Regenerate(brand.PaletteConfig)
	app.Metrics.PaletteGenerated(ctx, "api", len(p.Steps), false)
	return nil
}
