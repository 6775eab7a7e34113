package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	"github.com/brandkit/api/typescale"
)

var errColorRequired = errors.New("color query parameter is required")

func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

// POST /v1/tools/palette
//
// Generation never fails here: an unusable base color yields the neutral
// fallback palette with the reason in "fault".
func (app *Application) toolPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	req := models.GeneratePaletteRequest{}
	if err := decodeJSON(w, r, &req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	cfg := palette.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	numSteps := req.NumSteps
	if numSteps == 0 {
		numSteps = cfg.NumSteps
	}
	useLightness := cfg.UseLightness
	if req.UseLightness != nil {
		useLightness = *req.UseLightness
	}

	steps, genErr := palette.Generate(req.BaseColor, numSteps, useLightness, cfg)
	app.Metrics.PaletteGenerated(r.Context(), "tool", len(steps), genErr != nil)

	resp := models.GeneratePaletteResponse{Steps: steps}
	if genErr != nil {
		resp.Fault = genErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/tools/contrast?color=...&against=...
func (app *Application) toolContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	q := r.URL.Query()
	if q.Get("color") == "" {
		app.badRequest(w, r, errColorRequired)
		return
	}

	v, err := palette.ParseColor(q.Get("color"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	acc, err := palette.CheckAccessibility(v.Hex)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	resp := models.ContrastResponse{Color: v, Accessibility: acc}

	if against := q.Get("against"); against != "" {
		other, err := palette.ParseColor(against)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		ratio, err := palette.ContrastRatio(v.Hex, other.Hex)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		resp.Against = other.Hex
		resp.Ratio = ratio
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/tools/convert?color=...&from=...&to=...
func (app *Application) toolConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	q := r.URL.Query()
	if q.Get("color") == "" {
		app.badRequest(w, r, errColorRequired)
		return
	}

	from, to := palette.Format(q.Get("from")), palette.Format(q.Get("to"))
	if to == palette.FormatAuto {
		to = palette.FormatHex
	}
	result, err := palette.ConvertColor(q.Get("color"), from, to)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ConvertResponse{Input: q.Get("color"), From: from, To: to, Result: result})
}

// GET /v1/tools/gamut?l=...&c=...&h=... or ?color=...
//
// Raw l/c/h are checked as given. A color string is parsed first, which
// already maps it into sRGB, so only the l/c/h form can report a color as
// outside sRGB.
func (app *Application) toolGamut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	var c palette.OKLCH
	if color := r.URL.Query().Get("color"); color != "" {
		v, err := palette.ParseColor(color)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		c = v.OKLCH
	} else {
		var errs []error
		var err error
		c.L, err = floatParam(r, "l", 0.5)
		errs = append(errs, err)
		c.C, err = floatParam(r, "c", 0)
		errs = append(errs, err)
		c.H, err = floatParam(r, "h", 0)
		errs = append(errs, err)
		if err := errors.Join(errs...); err != nil {
			app.badRequest(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, models.GamutResponse{
		Color:  palette.ValuesFromOKLCH(c),
		Report: palette.CheckGamut(c),
	})
}

// GET /v1/tools/scale?base=16&ratio=1.25&up=5&down=2
//
// ratio also accepts an interval name such as perfect-fourth.
func (app *Application) toolScale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}

	cfg := typescale.DefaultConfig()
	var err error
	if cfg.BaseSize, err = floatParam(r, "base", cfg.BaseSize); err != nil {
		app.badRequest(w, r, err)
		return
	}
	if raw := r.URL.Query().Get("ratio"); raw != "" {
		if named, ok := typescale.RatioByName(raw); ok {
			cfg.Ratio = named
		} else if cfg.Ratio, err = strconv.ParseFloat(raw, 64); err != nil {
			app.badRequest(w, r, fmt.Errorf("ratio %q is neither a number nor a known interval", raw))
			return
		}
	}
	if cfg.StepsUp, err = intParam(r, "up", cfg.StepsUp); err != nil {
		app.badRequest(w, r, err)
		return
	}
	if cfg.StepsDown, err = intParam(r, "down", cfg.StepsDown); err != nil {
		app.badRequest(w, r, err)
		return
	}

	app.Metrics.ScaleComputed(r.Context(), string(typescale.Modular))
	writeJSON(w, http.StatusOK, scaleResponse(cfg))
}

// POST /v1/tools/distance
//
// Omitted fields take the defaults of a laptop read at arm's length.
func (app *Application) toolDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, http.MethodPost)
		return
	}

	params := typescale.DefaultDistanceParams()
	if err := decodeJSON(w, r, &params); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	app.Metrics.ScaleComputed(r.Context(), string(typescale.Distance))
	writeJSON(w, http.StatusOK, models.DistanceSizeResponse{Params: params, BaseSize: params.BaseSize()})
}

// GET /v1/tools/ratios
func (app *Application) toolRatios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, typescale.Ratios)
}
