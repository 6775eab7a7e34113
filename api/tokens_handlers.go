package api

import (
	"net/http"

	"github.com/brandkit/api/tokens"
)

// GET /v1/brands/{brandID}/tokens.css
func (app *Application) tokensCSS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	brandID, ok := app.pathID(w, r, "brandID", "brand")
	if !ok {
		return
	}

	brand, err := app.BrandRepo.GetBrand(brandID)
	if err != nil {
		app.storeError(w, r, "brand", err)
		return
	}
	palettes, err := app.PaletteRepo.ListPalettes(brandID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	styles, err := app.TypeStyleRepo.ListTypeStyles(brandID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(tokens.CSS(brand, palettes, brand.TypeScale.Values(), styles)))
}
