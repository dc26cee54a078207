package fuelmoisture

// Initial holds starting moisture values (percent) for the three dead-fuel
// timelag classes.
type Initial struct {
	OneHour     float64
	TenHour     float64
	HundredHour float64
}

// InitialFromRainfall estimates starting fuel moisture from recent rainfall
// in inches. Calibration buckets keyed on rainfall amount; a boundary value
// falls into the wetter bucket. Negative rainfall is treated as zero.
func InitialFromRainfall(rainInches float64) Initial {
	if rainInches < 0 {
		rainInches = 0
	}

	switch {
	case rainInches < 0.10:
		return Initial{OneHour: 18.0, TenHour: 15.0, HundredHour: 14.0}
	case rainInches < 0.30:
		return Initial{OneHour: 22.0, TenHour: 17.0, HundredHour: 14.5}
	case rainInches < 0.75:
		return Initial{OneHour: 27.0, TenHour: 21.0, HundredHour: 16.0}
	default:
		return Initial{OneHour: 33.0, TenHour: 26.0, HundredHour: 19.0}
	}
}
