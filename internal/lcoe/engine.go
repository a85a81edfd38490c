package lcoe

import "math"

// reactorWindow is one reactor's place in the build-out, in 1-indexed
// project years. The reactor is under construction from
// constructionStart through constructionEnd and operates through
// operationEnd.
type reactorWindow struct {
	constructionStart int
	constructionEnd   int
	operationEnd      int
}

// constructionSchedule staggers the reactors: reactor i breaks ground
// round(i*delay) years after the first and builds for the same length
// as the first reactor.
func constructionSchedule(project ProjectParameters) []reactorWindow {
	buildYears := int(math.Round(project.FirstConstructionYears))
	windows := make([]reactorWindow, 0, project.NReactors)
	for i := 0; i < project.NReactors; i++ {
		start := int(math.Round(float64(i)*project.DelayBetweenReactorsYears)) + 1
		end := start + buildYears - 1
		windows = append(windows, reactorWindow{
			constructionStart: start,
			constructionEnd:   end,
			operationEnd:      end + project.LifetimeYears,
		})
	}
	return windows
}

// Breakdown holds discounted cost sums per category, in dollars.
type Breakdown struct {
	ConstructionUSD    float64 `json:"construction_usd"`
	OMUSD              float64 `json:"om_usd"`
	FuelCycleUSD       float64 `json:"fuel_cycle_usd"`
	DecommissioningUSD float64 `json:"decommissioning_usd"`
}

// Result is the full output of one LCOE computation. Values are
// present values with t=0 at the first construction year.
type Result struct {
	DiscountedCostUSD   float64   `json:"discounted_cost_usd"`
	DiscountedEnergyMWh float64   `json:"discounted_energy_mwh"`
	LCOEUSDPerMWh       float64   `json:"lcoe_usd_per_mwh"`
	Breakdown           Breakdown `json:"breakdown"`

	// AnnualEnergyMWh is the undegraded plant-wide generation per
	// full operating year; AnnualFuelCycleUSD the plant-wide annual
	// fuel cost actually used.
	AnnualEnergyMWh    float64 `json:"annual_energy_mwh"`
	AnnualFuelCycleUSD float64 `json:"annual_fuel_cycle_usd"`

	// FuelCycle and FrontEnd are set only when the detailed fuel
	// chain was used (no flat override). FuelCycle holds discounted
	// per-step sums.
	FuelCycle *FuelCycleBreakdown `json:"fuel_cycle,omitempty"`
	FrontEnd  *FrontEndOptimum    `json:"front_end,omitempty"`
}

// Compute runs the discounted cash-flow model and returns the LCOE
// with its cost breakdown. It validates every input first and returns
// an *InvalidParameterError without computing anything when an
// invariant is violated; valid inputs never produce Inf or NaN.
func Compute(project ProjectParameters, costs CostParameters) (Result, error) {
	if err := Validate(project, costs); err != nil {
		return Result{}, err
	}

	windows := constructionSchedule(project)
	lastYear := 0
	for _, w := range windows {
		if w.operationEnd > lastYear {
			lastYear = w.operationEnd
		}
	}

	n := float64(project.NReactors)
	annualEnergy := AnnualEnergyMWh(project)
	energyPerReactor := annualEnergy / n

	var annualFuel float64
	var fuelSteps FuelCycleBreakdown
	var frontEnd FrontEndOptimum
	detailedFuel := costs.FuelCostPerReactorYearUSD <= 0
	if detailedFuel {
		var ok bool
		fuelSteps, frontEnd, ok = AnnualFuelCycle(project, costs)
		if !ok {
			// The assay invariants guarantee a feasible enrichment
			// point, so this is unreachable for validated inputs.
			return Result{}, &InvalidParameterError{
				Field:      "x_u_product",
				Constraint: "no feasible enrichment solution",
				Value:      project.XUProduct,
			}
		}
		annualFuel = fuelSteps.Total()
	} else {
		annualFuel = costs.FuelCostPerReactorYearUSD * n
	}
	fuelPerReactor := annualFuel / n
	capexPerYear := costs.OvernightCostPerReactorUSD / project.FirstConstructionYears

	r := costs.DiscountRate
	var out Result
	var fuelDiscountScale float64

	for year := 1; year <= lastYear; year++ {
		// t=0 at the first construction year, so year 1 is
		// undiscounted.
		df := math.Pow(1+r, -float64(year-1))

		for _, w := range windows {
			if w.constructionStart <= year && year <= w.constructionEnd {
				out.Breakdown.ConstructionUSD += capexPerYear * df
			}
			if w.constructionEnd < year && year <= w.operationEnd {
				age := year - w.constructionEnd
				gen := energyPerReactor * math.Pow(1-project.DegradationPerYear, float64(age-1))

				om := costs.FixedOMPerReactorYearUSD + costs.VariableOMPerMWhUSD*gen
				out.Breakdown.OMUSD += om * df
				out.Breakdown.FuelCycleUSD += fuelPerReactor * df
				out.DiscountedEnergyMWh += gen * df
				fuelDiscountScale += df / n
			}
			if year == w.operationEnd {
				out.Breakdown.DecommissioningUSD += costs.DismantlingCostPerReactorUSD * df
			}
		}
	}

	out.DiscountedCostUSD = out.Breakdown.ConstructionUSD +
		out.Breakdown.OMUSD +
		out.Breakdown.FuelCycleUSD +
		out.Breakdown.DecommissioningUSD
	out.LCOEUSDPerMWh = out.DiscountedCostUSD / out.DiscountedEnergyMWh
	out.AnnualEnergyMWh = annualEnergy
	out.AnnualFuelCycleUSD = annualFuel

	if detailedFuel {
		discounted := fuelSteps.scale(fuelDiscountScale)
		out.FuelCycle = &discounted
		out.FrontEnd = &frontEnd
	}

	return out, nil
}
