package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	log "github.com/sirupsen/logrus"
)

// GET|POST /v1/brands
func (app *Application) brands(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		brands, err := app.BrandRepo.ListBrands()
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, brands)

	case http.MethodPost:
		req := models.CreateBrandRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			app.badRequest(w, r, errors.New("name is required"))
			return
		}
		if req.TypeScale != nil {
			if err := req.TypeScale.Validate(); err != nil {
				app.badRequest(w, r, err)
				return
			}
		}

		created, err := app.BrandRepo.CreateBrand(models.NewBrand(req))
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		log.WithField("brand_id", created.BrandID).Info("Brand created")
		writeJSON(w, http.StatusCreated, created)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// GET|PUT|DELETE /v1/brands/{brandID}
func (app *Application) brand(w http.ResponseWriter, r *http.Request) {
	brandID, ok := app.pathID(w, r, "brandID", "brand")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		brand, err := app.BrandRepo.GetBrand(brandID)
		if err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		writeJSON(w, http.StatusOK, brand)

	case http.MethodPut:
		req := models.UpdateBrandRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			app.badRequest(w, r, errors.New("name cannot be empty"))
			return
		}
		brand, err := app.BrandRepo.UpdateBrand(brandID, req)
		if err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		writeJSON(w, http.StatusOK, brand)

	case http.MethodDelete:
		if err := app.BrandRepo.DeleteBrand(brandID); err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		log.WithField("brand_id", brandID).Info("Brand deleted")
		w.WriteHeader(http.StatusNoContent)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// GET|PUT /v1/brands/{brandID}/palette-config
//
// A PUT stores the config and schedules regeneration of every palette of the
// brand; the palettes catch up after the debounce window.
func (app *Application) paletteConfig(w http.ResponseWriter, r *http.Request) {
	brandID, ok := app.pathID(w, r, "brandID", "brand")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		brand, err := app.BrandRepo.GetBrand(brandID)
		if err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		writeJSON(w, http.StatusOK, brand.PaletteConfig)

	case http.MethodPut:
		cfg := palette.DefaultConfig()
		if err := decodeJSON(w, r, &cfg); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		brand, err := app.BrandRepo.UpdatePaletteConfig(brandID, cfg.Normalize())
		if err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		app.Regenerator.Request(brandID)
		writeJSON(w, http.StatusAccepted, brand.PaletteConfig)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}
