// Package fuelmoisture estimates dead-fuel moisture content from ambient
// weather. Equilibrium moisture content uses the three-term empirical fit
// (Simard-style) with relative humidity in percent and temperature converted
// to Celsius internally. Fuel classes relax toward equilibrium with an
// exponential time-lag model: 1-hour, 10-hour, and 100-hour fuels differ
// only in their time constant.
//
// These are operational approximations for situational awareness, not a
// substitute for validated fire-behavior systems.
package fuelmoisture

import "math"

// Timelag constants for the three dead-fuel classes, in hours.
const (
	TimelagOneHour     = 1.0
	TimelagTenHour     = 10.0
	TimelagHundredHour = 100.0
)

// EMC output bounds, in percent moisture content.
const (
	EMCFloor   = 0.1
	EMCCeiling = 100.0
)

// EMC calculates equilibrium moisture content (percent) from air temperature
// in degrees Fahrenheit and relative humidity in percent. Humidity is clamped
// to [0,100] before evaluation and the result is clamped to
// [EMCFloor, EMCCeiling]. A non-finite result is replaced by EMCFloor.
func EMC(tempF, rhPct float64) float64 {
	rh := clamp(rhPct, 0, 100)
	tc := (tempF - 32.0) * 5.0 / 9.0

	emc := 0.942*math.Pow(rh, 0.679) +
		11.0*math.Exp((rh-100.0)/10.0) +
		0.18*(21.1-tc)*(1.0-math.Exp(-0.115*rh))

	if math.IsNaN(emc) || math.IsInf(emc, 0) {
		return EMCFloor
	}
	return clamp(emc, EMCFloor, EMCCeiling)
}

// Update relaxes a fuel moisture value toward equilibrium over an elapsed
// time window:
//
//	new = emc + (prev - emc) * exp(-elapsedHours / tauHours)
//
// The same formula covers drying (moisture above EMC trends down) and
// wetting (moisture below EMC trends up). A time constant tauHours <= 0 is
// treated as instantaneous equilibrium and returns emc directly. Negative
// elapsed time is clamped to zero.
func Update(prevMoisture, emc, elapsedHours, tauHours float64) float64 {
	if tauHours <= 0 {
		return emc
	}
	if elapsedHours < 0 {
		elapsedHours = 0
	}
	return emc + (prevMoisture-emc)*math.Exp(-elapsedHours/tauHours)
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
