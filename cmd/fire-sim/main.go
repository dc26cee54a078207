package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/firewxlabs/firewx/internal/simulation"
	"github.com/firewxlabs/firewx/pkg/firebehavior"
)

func main() {
	var params simulation.DiurnalParams
	flag.Float64Var(&params.DayTempF, "day-temp", 90, "Daytime temperature in °F")
	flag.Float64Var(&params.DayMinRH, "day-rh", 20, "Daytime minimum relative humidity in percent")
	flag.Float64Var(&params.NightTempF, "night-temp", 62, "Nighttime temperature in °F")
	flag.Float64Var(&params.NightMaxRH, "night-rh", 78, "Nighttime maximum relative humidity in percent")
	flag.Float64Var(&params.RainInches, "rain", 0, "Recent rainfall in inches")
	flag.Float64Var(&params.WindMph, "wind", 5, "Wind speed in mph")
	flag.Float64Var(&params.SlopePct, "slope", 0, "Slope in percent rise")
	flag.StringVar(&params.FuelKey, "fuel", "pasture_grass", "Fuel model key: "+strings.Join(firebehavior.Keys(), ", "))
	flag.Parse()

	result, err := simulation.RunDiurnal(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fm, _ := firebehavior.Lookup(params.FuelKey)
	fmt.Printf("24-hour fire weather cycle — %s\n", fm.DisplayName)
	fmt.Printf("Hour  Temp    RH     EMC    1-hr   10-hr  100-hr   ROS (ch/h)\n")
	for _, h := range result.Hourly {
		fmt.Printf("%4d  %5.1f  %5.1f  %5.2f  %5.2f  %5.2f  %6.2f   %8.2f\n",
			h.Hour, h.TempF, h.RelHumidity, h.EMC, h.OneHour, h.TenHour, h.HundredHour, h.RateOfSpread)
	}

	s := result.Summary
	fmt.Printf("\nDriest hour:      %d (%.2f%% 1-hr moisture)\n", s.MinMoistureHour, s.MinMoisturePct)
	fmt.Printf("Peak ROS:         %.2f chains/h (%.1f ft/min) — %s\n",
		s.PeakRateOfSpread,
		firebehavior.ChainsPerHourToFeetPerMinute(s.PeakRateOfSpread),
		firebehavior.DangerClass(s.PeakRateOfSpread))
	fmt.Printf("Mean ROS:         %.2f chains/h\n", s.MeanRateOfSpread)
	fmt.Printf("End of day:       %.2f%% 1-hr moisture\n", s.EndOfDayOneHour)
	fmt.Printf("End of cycle:     %.2f%% 1-hr moisture\n", s.EndOfCycleOneHour)
}
