package restserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/firewxlabs/firewx/internal/database"
	"github.com/firewxlabs/firewx/internal/simulation"
	"github.com/firewxlabs/firewx/pkg/firebehavior"
	"github.com/firewxlabs/firewx/pkg/responseformat"
)

// Fallback values substituted for absent or non-finite weather numbers.
const (
	fallbackTempF   = 70.0
	fallbackRH      = 50.0
	fallbackWindMph = 5.0
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// stepRequest is one weather entry in a multi-day simulation request.
// Pointer fields distinguish absent values, which take documented fallbacks,
// from explicit zeros.
type stepRequest struct {
	Label        string   `json:"label"`
	TempF        *float64 `json:"temp_f"`
	RelHumidity  *float64 `json:"rel_humidity_pct"`
	WindMph      *float64 `json:"wind_mph"`
	ElapsedHours float64  `json:"elapsed_hours"`
}

type multiDayRequest struct {
	InitialOneHour *float64      `json:"initial_m1"`
	InitialTenHour *float64      `json:"initial_m10"`
	Steps          []stepRequest `json:"steps"`
}

type multiDayResponse struct {
	RunID string `json:"run_id,omitempty"`
	simulation.MultiDayResult
}

type diurnalRequest struct {
	DayTempF   *float64 `json:"day_temp_f"`
	DayMinRH   *float64 `json:"day_min_rh_pct"`
	NightTempF *float64 `json:"night_temp_f"`
	NightMaxRH *float64 `json:"night_max_rh_pct"`
	RainInches float64  `json:"rain_inches"`
	WindMph    *float64 `json:"wind_mph"`
	SlopePct   float64  `json:"slope_pct"`
	FuelKey    string   `json:"fuel_key"`
}

type diurnalResponse struct {
	RunID string `json:"run_id,omitempty"`
	simulation.DiurnalResult
}

// numberOr returns *v when present and finite, otherwise the fallback.
func numberOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fallback
	}
	return *v
}

// fuelInfo is one catalog entry in the fuels listing.
type fuelInfo struct {
	Key string `json:"key"`
	firebehavior.FuelModel
}

// GetFuels returns the fuel model catalog
func (h *Handlers) GetFuels(w http.ResponseWriter, req *http.Request) {
	fuels := make([]fuelInfo, 0)
	for _, key := range firebehavior.Keys() {
		fm, err := firebehavior.Lookup(key)
		if err != nil {
			continue
		}
		fuels = append(fuels, fuelInfo{Key: key, FuelModel: fm})
	}
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]any{
		"fuels":   fuels,
		"default": h.controller.cfg.DefaultFuel,
	})
}

// PostSimulate runs a multi-day fuel moisture simulation from a JSON body
func (h *Handlers) PostSimulate(w http.ResponseWriter, req *http.Request) {
	var body multiDayRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	steps := make([]simulation.Step, 0, len(body.Steps))
	for i, s := range body.Steps {
		label := s.Label
		if label == "" {
			label = "step " + strconv.Itoa(i+1)
		}
		elapsed := s.ElapsedHours
		if elapsed <= 0 || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
			elapsed = 24
		}
		steps = append(steps, simulation.Step{
			Label:        label,
			TempF:        numberOr(s.TempF, fallbackTempF),
			RelHumidity:  numberOr(s.RelHumidity, fallbackRH),
			WindMph:      numberOr(s.WindMph, fallbackWindMph),
			ElapsedHours: elapsed,
		})
	}

	result := simulation.RunMultiDay(
		numberOr(body.InitialOneHour, 10),
		numberOr(body.InitialTenHour, 12),
		steps)

	resp := multiDayResponse{MultiDayResult: result}
	if h.controller.DBEnabled {
		id, err := h.controller.Store.SaveRun(req.Context(), database.RunKindMultiDay, "",
			result.Summary.FinalOneHour, 0, result)
		if err != nil {
			h.controller.logger.Errorf("failed to save multi-day run: %v", err)
		} else {
			resp.RunID = id
		}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, resp)
}

// PostSimulateDiurnal runs a synthetic 24-hour day/night cycle simulation
func (h *Handlers) PostSimulateDiurnal(w http.ResponseWriter, req *http.Request) {
	var body diurnalRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	fuelKey := body.FuelKey
	if fuelKey == "" {
		fuelKey = h.controller.cfg.DefaultFuel
	}

	rain := body.RainInches
	if rain < 0 || math.IsNaN(rain) || math.IsInf(rain, 0) {
		rain = 0
	}

	params := simulation.DiurnalParams{
		DayTempF:   numberOr(body.DayTempF, fallbackTempF+15),
		DayMinRH:   numberOr(body.DayMinRH, 25),
		NightTempF: numberOr(body.NightTempF, fallbackTempF-10),
		NightMaxRH: numberOr(body.NightMaxRH, 80),
		RainInches: rain,
		WindMph:    numberOr(body.WindMph, fallbackWindMph),
		SlopePct:   body.SlopePct,
		FuelKey:    fuelKey,
	}

	result, err := simulation.RunDiurnal(params)
	if err != nil {
		if errors.Is(err, firebehavior.ErrUnknownFuelModel) {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid fuel type: "+fuelKey)
			return
		}
		h.formatter.WriteError(w, req, http.StatusInternalServerError, err.Error())
		return
	}

	resp := diurnalResponse{DiurnalResult: result}
	if h.controller.DBEnabled {
		id, err := h.controller.Store.SaveRun(req.Context(), database.RunKindDiurnal, fuelKey,
			result.Summary.EndOfCycleOneHour, result.Summary.PeakRateOfSpread, result)
		if err != nil {
			h.controller.logger.Errorf("failed to save diurnal run: %v", err)
		} else {
			resp.RunID = id
		}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, resp)
}

// GetRuns lists recent simulation runs, newest first
func (h *Handlers) GetRuns(w http.ResponseWriter, req *http.Request) {
	if !h.controller.DBEnabled {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "run history is not enabled")
		return
	}

	limit := 50
	if v := req.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	runs, err := h.controller.Store.ListRuns(req.Context(), limit)
	if err != nil {
		h.controller.logger.Errorf("failed to list runs: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error listing runs")
		return
	}
	if runs == nil {
		runs = []database.Run{}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]any{"runs": runs})
}

// GetRun fetches one stored run with its full decoded series
func (h *Handlers) GetRun(w http.ResponseWriter, req *http.Request) {
	if !h.controller.DBEnabled {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "run history is not enabled")
		return
	}

	id := mux.Vars(req)["id"]
	run, err := h.controller.Store.GetRun(req.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRunNotFound) {
			h.formatter.WriteError(w, req, http.StatusNotFound, "run not found")
			return
		}
		h.controller.logger.Errorf("failed to fetch run %s: %v", id, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error fetching run")
		return
	}

	var series json.RawMessage
	switch run.Kind {
	case database.RunKindMultiDay:
		var result simulation.MultiDayResult
		if err := database.DecodeSeries(run, &result); err == nil {
			series, _ = json.Marshal(result)
		}
	case database.RunKindDiurnal:
		var result simulation.DiurnalResult
		if err := database.DecodeSeries(run, &result); err == nil {
			series, _ = json.Marshal(result)
		}
	}

	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]any{
		"run":    run,
		"result": series,
	})
}

// GetHealth reports service liveness
func (h *Handlers) GetHealth(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, http.StatusOK, map[string]any{
		"status":          "ok",
		"history_enabled": h.controller.DBEnabled,
	})
}
