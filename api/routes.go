package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	cleanedRequest := cleanOrigin(origin)

	if localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(allowed) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || app.Config.DevMode || isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	mux.HandleFunc("/", app.home)
	mux.HandleFunc("/v1/health", app.health)

	// Brands
	mux.HandleFunc("/v1/brands", app.brands)
	mux.HandleFunc("/v1/brands/{brandID}", app.brand)
	mux.HandleFunc("/v1/brands/{brandID}/palette-config", app.paletteConfig)
	mux.HandleFunc("/v1/brands/{brandID}/tokens.css", app.tokensCSS)

	// Palettes
	mux.HandleFunc("/v1/brands/{brandID}/palettes", app.brandPalettes)
	mux.HandleFunc("/v1/palettes/{paletteID}", app.palette)
	mux.HandleFunc("/v1/palettes/{paletteID}/steps/{index}", app.paletteStep)

	// Typography
	mux.HandleFunc("/v1/brands/{brandID}/type-scale", app.typeScale)
	mux.HandleFunc("/v1/brands/{brandID}/type-styles", app.typeStyles)
	mux.HandleFunc("/v1/brands/{brandID}/type-styles/order", app.reorderTypeStyles)
	mux.HandleFunc("/v1/type-styles/{styleID}", app.typeStyle)
	mux.HandleFunc("/v1/type-styles/{styleID}/duplicate", app.duplicateTypeStyle)

	// Stateless tools
	mux.HandleFunc("/v1/tools/palette", app.toolPalette)
	mux.HandleFunc("/v1/tools/contrast", app.toolContrast)
	mux.HandleFunc("/v1/tools/convert", app.toolConvert)
	mux.HandleFunc("/v1/tools/gamut", app.toolGamut)
	mux.HandleFunc("/v1/tools/scale", app.toolScale)
	mux.HandleFunc("/v1/tools/distance", app.toolDistance)
	mux.HandleFunc("/v1/tools/ratios", app.toolRatios)

	return logRequests(wrapMuxWithCorsAndOrigins(mux, app))
}
