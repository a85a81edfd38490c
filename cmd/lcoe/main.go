// Command lcoe computes the levelized cost of electricity for a
// scenario and prints a plain-text report. With the sweep flags it
// recomputes the scenario across a range of discount rates and prints
// one line per rate.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/atomcost/lcoe/internal/lcoe"
)

func main() {
	paramsPath := flag.String("params", "", "path to a scenario JSON file (default: built-in reference scenario)")
	sweepFrom := flag.Float64("sweep-from", 0, "discount-rate sweep start (e.g. 0.02)")
	sweepTo := flag.Float64("sweep-to", 0, "discount-rate sweep end (e.g. 0.10)")
	sweepSteps := flag.Int("sweep-steps", 20, "number of points in the discount-rate sweep")
	flag.Parse()

	scenario, err := loadScenario(*paramsPath)
	if err != nil {
		log.Fatalf("failed to load scenario: %v", err)
	}

	if *sweepTo > *sweepFrom {
		if err := runSweep(os.Stdout, scenario, *sweepFrom, *sweepTo, *sweepSteps); err != nil {
			log.Fatalf("sweep failed: %v", err)
		}
		return
	}

	result, err := lcoe.Compute(scenario.Project, scenario.Costs)
	if err != nil {
		var invalid *lcoe.InvalidParameterError
		if errors.As(err, &invalid) {
			log.Fatalf("invalid scenario: %v", invalid)
		}
		log.Fatalf("compute failed: %v", err)
	}

	printReport(os.Stdout, scenario, result)
}

func loadScenario(path string) (lcoe.Scenario, error) {
	if path == "" {
		return lcoe.DefaultScenario(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return lcoe.Scenario{}, err
	}

	// Start from the defaults so a params file only needs to name the
	// fields it overrides.
	scenario := lcoe.DefaultScenario()
	if err := json.Unmarshal(raw, &scenario); err != nil {
		return lcoe.Scenario{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return scenario, nil
}

func runSweep(w io.Writer, scenario lcoe.Scenario, from, to float64, steps int) error {
	if steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}

	bar := progressbar.Default(int64(steps))
	type point struct {
		rate float64
		lcoe float64
	}
	points := make([]point, 0, steps)

	step := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		rate := from + float64(i)*step
		sc := scenario
		sc.Costs.DiscountRate = rate

		result, err := lcoe.Compute(sc.Project, sc.Costs)
		if err != nil {
			return fmt.Errorf("rate %.4f: %w", rate, err)
		}
		points = append(points, point{rate: rate, lcoe: result.LCOEUSDPerMWh})
		bar.Add(1)
	}

	fmt.Fprintf(w, "%-14s %s\n", "discount rate", "LCOE (USD/MWh)")
	for _, p := range points {
		fmt.Fprintf(w, "%-14.4f %.2f\n", p.rate, p.lcoe)
	}
	return nil
}

func printReport(w io.Writer, scenario lcoe.Scenario, result lcoe.Result) {
	fmt.Fprintf(w, "LCOE: %.2f USD/MWh\n\n", result.LCOEUSDPerMWh)

	fmt.Fprintf(w, "Scenario\n")
	for _, f := range lcoe.Fields() {
		unit := ""
		if f.Unit != "" {
			unit = " " + f.Unit
		}
		fmt.Fprintf(w, "  %-34s %g%s\n", f.Label, f.Get(scenario), unit)
	}

	fmt.Fprintf(w, "\nDiscounted totals\n")
	fmt.Fprintf(w, "  %-34s %.0f USD\n", "Construction", result.Breakdown.ConstructionUSD)
	fmt.Fprintf(w, "  %-34s %.0f USD\n", "Operation and maintenance", result.Breakdown.OMUSD)
	fmt.Fprintf(w, "  %-34s %.0f USD\n", "Fuel cycle", result.Breakdown.FuelCycleUSD)
	fmt.Fprintf(w, "  %-34s %.0f USD\n", "Decommissioning", result.Breakdown.DecommissioningUSD)
	fmt.Fprintf(w, "  %-34s %.0f USD\n", "Total cost", result.DiscountedCostUSD)
	fmt.Fprintf(w, "  %-34s %.0f MWh\n", "Total generation", result.DiscountedEnergyMWh)

	if result.FuelCycle != nil {
		b := result.FuelCycle
		fmt.Fprintf(w, "\nFuel cycle by step (discounted, plant lifetime)\n")
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Natural uranium", b.UNat)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Transport, natural U", b.TransportUNat)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Conversion", b.Conversion)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Transport, converted U", b.TransportUConv)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Enrichment", b.Enrichment)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Transport, enriched U", b.TransportUEnriched)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Fabrication", b.Fabrication)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Transport, fresh fuel", b.TransportFreshFuel)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Back end (disposal)", b.BackEnd)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Transport, spent fuel", b.TransportSpentFuel)
		fmt.Fprintf(w, "  %-34s %.0f USD\n", "Total", b.Total())
	}

	if result.FrontEnd != nil {
		fmt.Fprintf(w, "\nFront-end optimum\n")
		fmt.Fprintf(w, "  %-34s %.5f\n", "Tails assay", result.FrontEnd.TailsAssay)
		fmt.Fprintf(w, "  %-34s %.0f kg/yr\n", "Natural U feed", result.FrontEnd.FeedMassKg)
		fmt.Fprintf(w, "  %-34s %.0f SWU/yr\n", "Separative work", result.FrontEnd.SWURequired)
	}
}
