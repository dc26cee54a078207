// Package simulation drives the fuel-moisture and fire-behavior models
// across ordered weather sequences. Each step depends on the moisture state
// produced by the previous one, so a run is a strict left fold; independent
// runs are safe to execute concurrently because the package holds no state.
package simulation

import (
	"github.com/firewxlabs/firewx/pkg/fuelmoisture"
)

// CriticalMoisturePct is the one-hour fuel moisture at or below which fine
// fuels are considered primed for rapid fire growth.
const CriticalMoisturePct = 6.0

// Step is one weather observation or forecast entry in a simulation
// sequence. ElapsedHours is the time covered by this step.
type Step struct {
	Label        string  `json:"label"`
	TempF        float64 `json:"temp_f"`
	RelHumidity  float64 `json:"rel_humidity_pct"`
	WindMph      float64 `json:"wind_mph"`
	ElapsedHours float64 `json:"elapsed_hours"`
}

// DayResult is the moisture state after applying one step.
type DayResult struct {
	Label       string  `json:"label"`
	TempF       float64 `json:"temp_f"`
	RelHumidity float64 `json:"rel_humidity_pct"`
	EMC         float64 `json:"emc_pct"`
	OneHour     float64 `json:"one_hour_pct"`
	TenHour     float64 `json:"ten_hour_pct"`
}

// MultiDaySummary reports where a multi-day run ended up. FirstCriticalDay
// is the label of the first step whose one-hour moisture dropped to the
// critical threshold, empty if none did.
type MultiDaySummary struct {
	FirstCriticalDay string  `json:"first_critical_day,omitempty"`
	FinalOneHour     float64 `json:"final_one_hour_pct"`
	FinalTenHour     float64 `json:"final_ten_hour_pct"`
}

// MultiDayResult bundles the per-step series with its summary.
type MultiDayResult struct {
	Days    []DayResult     `json:"days"`
	Summary MultiDaySummary `json:"summary"`
}

// RunMultiDay folds the moisture model over an ordered step sequence,
// seeding the one-hour and ten-hour fuel classes with the given initial
// values. Steps are processed strictly in order; later steps see the
// moisture produced by earlier ones. An empty sequence yields no day
// results and a summary holding the initial values.
func RunMultiDay(initialOneHour, initialTenHour float64, steps []Step) MultiDayResult {
	m1 := initialOneHour
	m10 := initialTenHour

	result := MultiDayResult{
		Days: make([]DayResult, 0, len(steps)),
	}

	for _, step := range steps {
		emc := fuelmoisture.EMC(step.TempF, step.RelHumidity)
		m1 = fuelmoisture.Update(m1, emc, step.ElapsedHours, fuelmoisture.TimelagOneHour)
		m10 = fuelmoisture.Update(m10, emc, step.ElapsedHours, fuelmoisture.TimelagTenHour)

		result.Days = append(result.Days, DayResult{
			Label:       step.Label,
			TempF:       step.TempF,
			RelHumidity: step.RelHumidity,
			EMC:         emc,
			OneHour:     m1,
			TenHour:     m10,
		})

		if result.Summary.FirstCriticalDay == "" && m1 <= CriticalMoisturePct {
			result.Summary.FirstCriticalDay = step.Label
		}
	}

	result.Summary.FinalOneHour = m1
	result.Summary.FinalTenHour = m10
	return result
}
