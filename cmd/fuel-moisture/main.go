package main

import (
	"flag"
	"fmt"

	"github.com/firewxlabs/firewx/pkg/fuelmoisture"
)

func main() {
	var tempF, rh, prev, hours float64
	flag.Float64Var(&tempF, "temp", 70, "Air temperature in °F")
	flag.Float64Var(&rh, "rh", 50, "Relative humidity in percent")
	flag.Float64Var(&prev, "moisture", 15, "Current fuel moisture in percent")
	flag.Float64Var(&hours, "hours", 1, "Elapsed hours")
	flag.Parse()

	emc := fuelmoisture.EMC(tempF, rh)

	fmt.Printf("Conditions: %.1f°F, %.1f%% RH over %.1f h\n", tempF, rh, hours)
	fmt.Printf("  Equilibrium moisture content: %.2f%%\n", emc)
	fmt.Printf("  1-hr fuels:   %.2f%% -> %.2f%%\n", prev,
		fuelmoisture.Update(prev, emc, hours, fuelmoisture.TimelagOneHour))
	fmt.Printf("  10-hr fuels:  %.2f%% -> %.2f%%\n", prev,
		fuelmoisture.Update(prev, emc, hours, fuelmoisture.TimelagTenHour))
	fmt.Printf("  100-hr fuels: %.2f%% -> %.2f%%\n", prev,
		fuelmoisture.Update(prev, emc, hours, fuelmoisture.TimelagHundredHour))
}
