package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/models"
	"github.com/brandkit/api/typescale"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

func scaleResponse(cfg typescale.Config) models.TypeScaleResponse {
	return models.TypeScaleResponse{
		Config:   cfg,
		BaseSize: cfg.BaseSizePx(),
		Values:   cfg.Values(),
	}
}

// GET|PUT /v1/brands/{brandID}/type-scale
func (app *Application) typeScale(w http.ResponseWriter, r *http.Request) {
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
		app.Metrics.ScaleComputed(r.Context(), string(brand.TypeScale.Method))
		writeJSON(w, http.StatusOK, scaleResponse(brand.TypeScale))

	case http.MethodPut:
		cfg := typescale.DefaultConfig()
		if err := decodeJSON(w, r, &cfg); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if err := cfg.Validate(); err != nil {
			app.badRequest(w, r, err)
			return
		}
		brand, err := app.BrandRepo.UpdateTypeScale(brandID, cfg)
		if err != nil {
			app.storeError(w, r, "brand", err)
			return
		}
		app.Metrics.ScaleComputed(r.Context(), string(cfg.Method))
		writeJSON(w, http.StatusOK, scaleResponse(brand.TypeScale))

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func validScaleStep(label string) error {
	if _, ok := typescale.ParseLabel(label); !ok {
		return fmt.Errorf("scaleStep %q is not a scale label like f0 or f-1", label)
	}
	return nil
}

// GET|POST /v1/brands/{brandID}/type-styles
//
// GET returns styles with their sizes resolved against the brand's current
// scale.
func (app *Application) typeStyles(w http.ResponseWriter, r *http.Request) {
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
		styles, err := app.TypeStyleRepo.ListTypeStyles(brandID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ResolveTypeStyles(styles, brand.TypeScale.Values()))

	case http.MethodPost:
		req := models.CreateTypeStyleRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			app.badRequest(w, r, errors.New("name is required"))
			return
		}
		if err := validScaleStep(req.ScaleStep); err != nil {
			app.badRequest(w, r, err)
			return
		}

		existing, err := app.TypeStyleRepo.ListTypeStyles(brandID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		created, err := app.TypeStyleRepo.CreateTypeStyle(models.NewTypeStyle(brandID, len(existing), req))
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)

	default:
		app.methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// PUT /v1/brands/{brandID}/type-styles/order
func (app *Application) reorderTypeStyles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.methodNotAllowed(w, r, http.MethodPut)
		return
	}
	brandID, ok := app.pathID(w, r, "brandID", "brand")
	if !ok {
		return
	}

	if _, err := app.BrandRepo.GetBrand(brandID); err != nil {
		app.storeError(w, r, "brand", err)
		return
	}

	req := models.ReorderTypeStylesRequest{}
	if err := decodeJSON(w, r, &req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	validIDs := lo.EveryBy(req.StyleIDs, func(id string) bool { return uuid.Validate(id) == nil })
	if !validIDs {
		app.badRequest(w, r, datastore.ErrStyleSetMismatch)
		return
	}

	err := app.TypeStyleRepo.ReorderTypeStyles(brandID, req.StyleIDs)
	if errors.Is(err, datastore.ErrStyleSetMismatch) {
		app.badRequest(w, r, err)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	styles, err := app.TypeStyleRepo.ListTypeStyles(brandID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, styles)
}

// PUT|DELETE /v1/type-styles/{styleID}
func (app *Application) typeStyle(w http.ResponseWriter, r *http.Request) {
	styleID, ok := app.pathID(w, r, "styleID", "type style")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		req := models.UpdateTypeStyleRequest{}
		if err := decodeJSON(w, r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}
		style, err := app.TypeStyleRepo.GetTypeStyle(styleID)
		if err != nil {
			app.storeError(w, r, "type style", err)
			return
		}

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				app.badRequest(w, r, errors.New("name cannot be empty"))
				return
			}
			style.Name = *req.Name
		}
		if req.ScaleStep != nil {
			if err := validScaleStep(*req.ScaleStep); err != nil {
				app.badRequest(w, r, err)
				return
			}
			style.ScaleStep = *req.ScaleStep
		}
		if req.FontWeight != nil {
			style.FontWeight = *req.FontWeight
		}
		if req.LineHeight != nil {
			style.LineHeight = *req.LineHeight
		}
		if req.LetterSpacing != nil {
			style.LetterSpacing = *req.LetterSpacing
		}
		if req.OpticalSize != nil {
			style.OpticalSize = *req.OpticalSize
		}
		style.UpdatedAt = time.Now().UTC()

		saved, err := app.TypeStyleRepo.SaveTypeStyle(style)
		if err != nil {
			app.storeError(w, r, "type style", err)
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case http.MethodDelete:
		if err := app.TypeStyleRepo.DeleteTypeStyle(styleID); err != nil {
			app.storeError(w, r, "type style", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		app.methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
	}
}

// POST /v1/type-styles/{styleID}/duplicate
func (app *Application) duplicateTypeStyle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	styleID, ok := app.pathID(w, r, "styleID", "type style")
	if !ok {
		return
	}
	style, err := app.TypeStyleRepo.GetTypeStyle(styleID)
	if err != nil {
		app.storeError(w, r, "type style", err)
		return
	}
	siblings, err := app.TypeStyleRepo.ListTypeStyles(style.BrandID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	created, err := app.TypeStyleRepo.CreateTypeStyle(style.Duplicate(len(siblings)))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
