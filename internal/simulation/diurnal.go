package simulation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/firewxlabs/firewx/pkg/firebehavior"
	"github.com/firewxlabs/firewx/pkg/fuelmoisture"
)

// Shape of the synthetic 24-hour cycle: daytime conditions hold for the
// first 10 hours, nighttime for the remaining 14, one hour per step.
const (
	dayHours   = 10
	nightHours = 14
	cycleHours = dayHours + nightHours
)

// DiurnalParams describes a synthetic day/night cycle. Daytime runs at
// DayTempF and DayMinRH, nighttime at NightTempF and NightMaxRH. Initial
// moisture is seeded from recent rainfall.
type DiurnalParams struct {
	DayTempF   float64 `json:"day_temp_f"`
	DayMinRH   float64 `json:"day_min_rh_pct"`
	NightTempF float64 `json:"night_temp_f"`
	NightMaxRH float64 `json:"night_max_rh_pct"`
	RainInches float64 `json:"rain_inches"`
	WindMph    float64 `json:"wind_mph"`
	SlopePct   float64 `json:"slope_pct"`
	FuelKey    string  `json:"fuel_key"`
}

// HourResult is the state at the end of one hour of the cycle.
type HourResult struct {
	Hour         int     `json:"hour"`
	TempF        float64 `json:"temp_f"`
	RelHumidity  float64 `json:"rel_humidity_pct"`
	EMC          float64 `json:"emc_pct"`
	OneHour      float64 `json:"one_hour_pct"`
	TenHour      float64 `json:"ten_hour_pct"`
	HundredHour  float64 `json:"hundred_hour_pct"`
	RateOfSpread float64 `json:"ros_chains_per_hour"`
}

// DiurnalSummary reports the danger peak of the cycle and the moisture
// state at the day/night transition and at the end of the cycle.
type DiurnalSummary struct {
	MinMoistureHour   int     `json:"min_moisture_hour"`
	MinMoisturePct    float64 `json:"min_moisture_pct"`
	PeakRateOfSpread  float64 `json:"peak_ros_chains_per_hour"`
	MeanRateOfSpread  float64 `json:"mean_ros_chains_per_hour"`
	EndOfDayOneHour   float64 `json:"end_of_day_one_hour_pct"`
	EndOfCycleOneHour float64 `json:"end_of_cycle_one_hour_pct"`
}

// DiurnalResult bundles the hourly series with its summary.
type DiurnalResult struct {
	Hourly  []HourResult   `json:"hourly"`
	Summary DiurnalSummary `json:"summary"`
}

// RunDiurnal simulates a full 24-hour day/night cycle for one fuel model,
// tracking all three dead-fuel classes and the hourly rate of spread. The
// fuel key is validated up front; an unregistered key returns
// firebehavior.ErrUnknownFuelModel before any work is done.
func RunDiurnal(p DiurnalParams) (DiurnalResult, error) {
	if _, err := firebehavior.Lookup(p.FuelKey); err != nil {
		return DiurnalResult{}, err
	}

	initial := fuelmoisture.InitialFromRainfall(p.RainInches)
	m1 := initial.OneHour
	m10 := initial.TenHour
	m100 := initial.HundredHour

	result := DiurnalResult{
		Hourly: make([]HourResult, 0, cycleHours),
	}
	moistureSeries := make([]float64, 0, cycleHours)
	rosSeries := make([]float64, 0, cycleHours)

	for hour := 0; hour < cycleHours; hour++ {
		tempF, rh := p.DayTempF, p.DayMinRH
		if hour >= dayHours {
			tempF, rh = p.NightTempF, p.NightMaxRH
		}

		emc := fuelmoisture.EMC(tempF, rh)
		m1 = fuelmoisture.Update(m1, emc, 1, fuelmoisture.TimelagOneHour)
		m10 = fuelmoisture.Update(m10, emc, 1, fuelmoisture.TimelagTenHour)
		m100 = fuelmoisture.Update(m100, emc, 1, fuelmoisture.TimelagHundredHour)

		ros, err := firebehavior.RateOfSpread(p.FuelKey, m1, p.WindMph, p.SlopePct)
		if err != nil {
			return DiurnalResult{}, err
		}

		result.Hourly = append(result.Hourly, HourResult{
			Hour:         hour,
			TempF:        tempF,
			RelHumidity:  rh,
			EMC:          emc,
			OneHour:      m1,
			TenHour:      m10,
			HundredHour:  m100,
			RateOfSpread: ros,
		})
		moistureSeries = append(moistureSeries, m1)
		rosSeries = append(rosSeries, ros)
	}

	minIdx := floats.MinIdx(moistureSeries)
	result.Summary = DiurnalSummary{
		MinMoistureHour:   minIdx,
		MinMoisturePct:    moistureSeries[minIdx],
		PeakRateOfSpread:  floats.Max(rosSeries),
		MeanRateOfSpread:  stat.Mean(rosSeries, nil),
		EndOfDayOneHour:   result.Hourly[dayHours-1].OneHour,
		EndOfCycleOneHour: result.Hourly[cycleHours-1].OneHour,
	}
	return result, nil
}
