package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/firewxlabs/firewx/pkg/firebehavior"
	"github.com/firewxlabs/firewx/pkg/fuelmoisture"
)

func TestRunMultiDaySingleStep(t *testing.T) {
	// One hot, dry 12-hour step: both fuel classes must trend down from
	// their initial values toward a low EMC, the fast class further
	result := RunMultiDay(8, 10, []Step{
		{Label: "Mon", TempF: 90, RelHumidity: 15, WindMph: 10, ElapsedHours: 12},
	})

	if len(result.Days) != 1 {
		t.Fatalf("got %d day results, expected 1", len(result.Days))
	}

	day := result.Days[0]
	emc := fuelmoisture.EMC(90, 15)
	if day.EMC != emc {
		t.Errorf("day EMC = %.3f, expected %.3f", day.EMC, emc)
	}
	if day.OneHour >= 8 {
		t.Errorf("one-hour moisture %.3f did not dry below initial 8%%", day.OneHour)
	}
	if day.TenHour >= 10 {
		t.Errorf("ten-hour moisture %.3f did not dry below initial 10%%", day.TenHour)
	}
	if day.OneHour > day.TenHour {
		t.Errorf("fast fuels (%.3f) should be drier than slow fuels (%.3f) after drying", day.OneHour, day.TenHour)
	}
	if result.Summary.FinalOneHour != day.OneHour || result.Summary.FinalTenHour != day.TenHour {
		t.Error("summary finals do not match last day result")
	}
}

func TestRunMultiDayEmptySteps(t *testing.T) {
	result := RunMultiDay(12, 14, nil)
	if len(result.Days) != 0 {
		t.Fatalf("got %d day results for empty input", len(result.Days))
	}
	if result.Summary.FinalOneHour != 12 || result.Summary.FinalTenHour != 14 {
		t.Errorf("summary = %+v, expected initial values carried through", result.Summary)
	}
	if result.Summary.FirstCriticalDay != "" {
		t.Errorf("FirstCriticalDay = %q, expected empty", result.Summary.FirstCriticalDay)
	}
}

func TestRunMultiDayFirstCriticalDay(t *testing.T) {
	// A drying stretch: moisture crosses the critical threshold partway
	// through and the first crossing day is recorded
	steps := []Step{
		{Label: "Day 1", TempF: 75, RelHumidity: 45, ElapsedHours: 24},
		{Label: "Day 2", TempF: 88, RelHumidity: 20, ElapsedHours: 24},
		{Label: "Day 3", TempF: 95, RelHumidity: 10, ElapsedHours: 24},
	}
	result := RunMultiDay(15, 16, steps)

	if result.Summary.FirstCriticalDay == "" {
		t.Fatal("expected a critical day in a hot dry stretch")
	}

	// The recorded label must be the first day at or under the threshold
	for _, day := range result.Days {
		if day.OneHour <= CriticalMoisturePct {
			if result.Summary.FirstCriticalDay != day.Label {
				t.Errorf("FirstCriticalDay = %q, expected %q", result.Summary.FirstCriticalDay, day.Label)
			}
			break
		}
	}
}

func TestRunMultiDayOrderMatters(t *testing.T) {
	// The fold is order-dependent: a dry day followed by a humid day must
	// end wetter than the reverse ordering ends dry
	dryThenHumid := RunMultiDay(10, 12, []Step{
		{Label: "dry", TempF: 95, RelHumidity: 10, ElapsedHours: 8},
		{Label: "humid", TempF: 65, RelHumidity: 90, ElapsedHours: 8},
	})
	humidThenDry := RunMultiDay(10, 12, []Step{
		{Label: "humid", TempF: 65, RelHumidity: 90, ElapsedHours: 8},
		{Label: "dry", TempF: 95, RelHumidity: 10, ElapsedHours: 8},
	})

	if dryThenHumid.Summary.FinalOneHour <= humidThenDry.Summary.FinalOneHour {
		t.Errorf("dry-then-humid final %.3f should exceed humid-then-dry final %.3f",
			dryThenHumid.Summary.FinalOneHour, humidThenDry.Summary.FinalOneHour)
	}
}

func TestRunDiurnalShape(t *testing.T) {
	result, err := RunDiurnal(DiurnalParams{
		DayTempF:   92,
		DayMinRH:   18,
		NightTempF: 64,
		NightMaxRH: 75,
		RainInches: 0.05,
		WindMph:    12,
		FuelKey:    "pasture_grass",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Hourly) != 24 {
		t.Fatalf("got %d hourly results, expected 24", len(result.Hourly))
	}

	// Day conditions for the first 10 hours, night for the rest
	for _, h := range result.Hourly {
		wantTemp, wantRH := 92.0, 18.0
		if h.Hour >= 10 {
			wantTemp, wantRH = 64.0, 75.0
		}
		if h.TempF != wantTemp || h.RelHumidity != wantRH {
			t.Errorf("hour %d: conditions %.0f/%.0f, expected %.0f/%.0f",
				h.Hour, h.TempF, h.RelHumidity, wantTemp, wantRH)
		}
	}

	// Seeded from the trace-rain bucket and drying through the day
	first := result.Hourly[0]
	if first.OneHour >= 18.0 {
		t.Errorf("hour 0 one-hour moisture %.3f should be below the 18%% rainfall seed", first.OneHour)
	}

	s := result.Summary
	if s.EndOfDayOneHour != result.Hourly[9].OneHour {
		t.Errorf("EndOfDayOneHour = %.3f, expected hour-9 value %.3f", s.EndOfDayOneHour, result.Hourly[9].OneHour)
	}
	if s.EndOfCycleOneHour != result.Hourly[23].OneHour {
		t.Errorf("EndOfCycleOneHour = %.3f, expected hour-23 value %.3f", s.EndOfCycleOneHour, result.Hourly[23].OneHour)
	}

	// With humid nights the driest hour lands at the end of the daytime
	// block, and the ROS peak coincides with minimum moisture under
	// constant wind and slope
	if s.MinMoistureHour != 9 {
		t.Errorf("MinMoistureHour = %d, expected 9", s.MinMoistureHour)
	}
	if s.MinMoisturePct != result.Hourly[s.MinMoistureHour].OneHour {
		t.Error("MinMoisturePct does not match its hour's series value")
	}
	if s.PeakRateOfSpread != result.Hourly[s.MinMoistureHour].RateOfSpread {
		t.Errorf("PeakRateOfSpread %.3f should occur at the driest hour", s.PeakRateOfSpread)
	}
	if s.MeanRateOfSpread > s.PeakRateOfSpread {
		t.Errorf("mean ROS %.3f exceeds peak %.3f", s.MeanRateOfSpread, s.PeakRateOfSpread)
	}

	// Nighttime recovery: the cycle must end wetter than its driest point
	if s.EndOfCycleOneHour <= s.MinMoisturePct {
		t.Errorf("end-of-cycle moisture %.3f did not recover above minimum %.3f",
			s.EndOfCycleOneHour, s.MinMoisturePct)
	}
}

func TestRunDiurnalUnknownFuel(t *testing.T) {
	_, err := RunDiurnal(DiurnalParams{
		DayTempF: 90, DayMinRH: 20, NightTempF: 60, NightMaxRH: 80,
		FuelKey: "bogus",
	})
	if !errors.Is(err, firebehavior.ErrUnknownFuelModel) {
		t.Errorf("error = %v, expected ErrUnknownFuelModel", err)
	}
}

func TestRunDiurnalDeterministic(t *testing.T) {
	p := DiurnalParams{
		DayTempF: 85, DayMinRH: 25, NightTempF: 60, NightMaxRH: 70,
		RainInches: 0.2, WindMph: 8, SlopePct: 15, FuelKey: "pine_litter",
	}
	a, err := RunDiurnal(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RunDiurnal(p)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Hourly {
		if a.Hourly[i] != b.Hourly[i] {
			t.Fatalf("hour %d differs between identical runs", i)
		}
	}
	if a.Summary != b.Summary {
		t.Error("summaries differ between identical runs")
	}
}

func TestRunDiurnalHundredHourLagsBehind(t *testing.T) {
	result, err := RunDiurnal(DiurnalParams{
		DayTempF: 95, DayMinRH: 12, NightTempF: 68, NightMaxRH: 60,
		RainInches: 0.5, WindMph: 10, FuelKey: "hardwood_deadfall",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Starting wet and drying all day, the heavy fuel class moves least
	initial := fuelmoisture.InitialFromRainfall(0.5)
	end := result.Hourly[9]
	drop1 := initial.OneHour - end.OneHour
	drop100 := initial.HundredHour - end.HundredHour
	if drop100 >= drop1 {
		t.Errorf("100-hr drop %.3f should be smaller than 1-hr drop %.3f", drop100, drop1)
	}
	if math.Abs(initial.HundredHour-end.HundredHour) > 2.0 {
		t.Errorf("100-hr fuels moved %.3f%% in 10 hours, expected sluggish response", initial.HundredHour-end.HundredHour)
	}
}

func BenchmarkRunDiurnal(b *testing.B) {
	p := DiurnalParams{
		DayTempF: 90, DayMinRH: 20, NightTempF: 62, NightMaxRH: 78,
		RainInches: 0.05, WindMph: 14, FuelKey: "pasture_grass",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RunDiurnal(p); err != nil {
			b.Fatal(err)
		}
	}
}
