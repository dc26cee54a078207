// Package firebehavior provides a simplified surface rate-of-spread
// estimator for a small set of fuel model presets. A baseline spread rate,
// calibrated at 9% one-hour fuel moisture, 5 mph wind, and flat ground, is
// scaled by clamped moisture, wind, and slope multipliers.
//
// This is an operational approximation for dashboards and briefings, not a
// Rothermel or BehavePlus replacement.
package firebehavior

import (
	"errors"
	"math"
	"sort"
)

// ErrUnknownFuelModel is returned when a fuel key has no registered preset.
// Callers must treat this distinctly from a numeric result: substituting a
// default spread rate would misrepresent fire danger.
var ErrUnknownFuelModel = errors.New("unknown fuel model")

// Reference conditions the baseline spread rates are calibrated at.
const (
	ReferenceMoisturePct = 9.0
	ReferenceWindMph     = 5.0
)

// Multiplier clamp bounds. Inputs outside the calibration envelope are held
// at these limits rather than extrapolated.
const (
	moistureMultMin = 0.05
	moistureMultMax = 2.5
	windMultMin     = 0.5
	windMultMax     = 4.0
	slopeMultMin    = 1.0
	slopeMultMax    = 2.5
)

// minRateOfSpread is the floor on any estimate, in chains per hour.
const minRateOfSpread = 0.1

// FuelModel describes a fuel preset. BaseRateOfSpread is in chains per hour
// at the reference conditions above.
type FuelModel struct {
	DisplayName         string  `json:"display_name"`
	BaseRateOfSpread    float64 `json:"base_ros_chains_per_hour"`
	WindSensitivity     float64 `json:"wind_sensitivity"`
	MoistureSensitivity float64 `json:"moisture_sensitivity"`
}

// fuelModels is the built-in preset table, keyed by fuel key.
var fuelModels = map[string]FuelModel{
	"pasture_grass": {
		DisplayName:         "Pasture Grass",
		BaseRateOfSpread:    40.0,
		WindSensitivity:     1.8,
		MoistureSensitivity: 1.6,
	},
	"hardwood_deadfall": {
		DisplayName:         "Hardwood Deadfall",
		BaseRateOfSpread:    8.0,
		WindSensitivity:     0.9,
		MoistureSensitivity: 0.9,
	},
	"pine_litter": {
		DisplayName:         "Leaf / Pine Litter",
		BaseRateOfSpread:    15.0,
		WindSensitivity:     1.2,
		MoistureSensitivity: 1.1,
	},
}

// Lookup returns the preset for a fuel key, or ErrUnknownFuelModel.
func Lookup(fuelKey string) (FuelModel, error) {
	fm, ok := fuelModels[fuelKey]
	if !ok {
		return FuelModel{}, ErrUnknownFuelModel
	}
	return fm, nil
}

// Keys returns the registered fuel keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fuelModels))
	for k := range fuelModels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RateOfSpread estimates the surface rate of spread in chains per hour for
// the given fuel key at the current one-hour fuel moisture (percent), wind
// speed (mph), and slope (percent rise). The result is never below
// minRateOfSpread. An unregistered fuel key returns ErrUnknownFuelModel.
func RateOfSpread(fuelKey string, oneHourMoisture, windMph, slopePct float64) (float64, error) {
	fm, err := Lookup(fuelKey)
	if err != nil {
		return 0, err
	}

	// Moisture above the 9% reference suppresses spread exponentially;
	// below it, spread accelerates, bounded on both ends
	moistureMult := clamp(
		math.Exp(-fm.MoistureSensitivity*(oneHourMoisture-ReferenceMoisturePct)/10.0),
		moistureMultMin, moistureMultMax)

	// Wind below 5 mph contributes nothing extra; above it, a superlinear
	// contribution scaled by the fuel's wind sensitivity
	excessWind := math.Max(0, windMph-ReferenceWindMph)
	windMult := clamp(
		1.0+fm.WindSensitivity*math.Pow(excessWind/25.0, 1.15),
		windMultMin, windMultMax)

	// Slope effect is linear and fuel-independent, never below 1
	slopeMult := clamp(1.0+0.02*slopePct, slopeMultMin, slopeMultMax)

	ros := fm.BaseRateOfSpread * moistureMult * windMult * slopeMult
	return math.Max(minRateOfSpread, ros), nil
}

// ChainsPerHourToFeetPerMinute converts a spread rate. One chain is 66 feet.
func ChainsPerHourToFeetPerMinute(chainsPerHour float64) float64 {
	return chainsPerHour * 66.0 / 60.0
}

// DangerClass returns a briefing label for a spread rate in chains per hour.
func DangerClass(rosChainsPerHour float64) string {
	switch {
	case rosChainsPerHour < 2:
		return "Low"
	case rosChainsPerHour < 10:
		return "Moderate"
	case rosChainsPerHour < 40:
		return "High"
	case rosChainsPerHour < 100:
		return "Very High"
	default:
		return "Extreme"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
