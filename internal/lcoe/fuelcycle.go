package lcoe

import "math"

// Molar masses in kg/mol, used to convert oxide masses to uranium
// metal masses.
const (
	uMolarMassKg = 0.238
	oMolarMassKg = 0.016
)

// UO2ToU converts a UO2 mass to the contained uranium metal mass.
func UO2ToU(uo2MassKg float64) float64 {
	uo2Molar := uMolarMassKg + 2*oMolarMassKg
	return uo2MassKg * uMolarMassKg / uo2Molar
}

// U3O8ToU converts a U3O8 mass to the contained uranium metal mass.
func U3O8ToU(u3o8MassKg float64) float64 {
	u3o8Molar := 3*uMolarMassKg + 8*oMolarMassKg
	return u3o8MassKg * 3 * uMolarMassKg / u3o8Molar
}

// AnnualEnergyMWh is the plant-wide net annual generation before
// degradation: capacity x capacity factor x hours per year.
func AnnualEnergyMWh(project ProjectParameters) float64 {
	totalPowerMW := float64(project.NReactors) * project.PowerPerReactorMWe
	return totalPowerMW * HoursPerYear * project.CapacityFactor
}

// CoreFuelMassKg is the UO2 mass loaded in one core.
func CoreFuelMassKg(project ProjectParameters) float64 {
	return float64(project.AssembliesPerCore) * project.FuelMassPerAssemblyKg
}

// AnnualFreshFuelMassKg is the plant-wide fresh fuel (UO2) mass loaded
// per year: one batch per cycle per reactor.
func AnnualFreshFuelMassKg(project ProjectParameters) float64 {
	perCycle := CoreFuelMassKg(project) * project.BatchFraction
	return perCycle * float64(project.NReactors) / project.CycleLengthYears
}

// AnnualEnrichedUMassKg is the uranium metal mass in the annual fresh
// fuel load.
func AnnualEnrichedUMassKg(project ProjectParameters) float64 {
	return UO2ToU(AnnualFreshFuelMassKg(project))
}

// swuValue is the separation value function V(x) = (1-2x) ln((1-x)/x).
func swuValue(x float64) float64 {
	return (1 - 2*x) * math.Log((1-x)/x)
}

// FrontEndOptimum is the cheapest front-end solution found by
// OptimizeFrontEnd for a given product mass.
type FrontEndOptimum struct {
	FeedMassKg       float64
	TailsAssay       float64
	SWURequired      float64
	CostUNatUSD      float64
	CostTransportNat float64
	CostConversion   float64
	CostTransportConv float64
	CostEnrichment   float64
}

// TotalUSD is the combined front-end cost of the optimum.
func (o FrontEndOptimum) TotalUSD() float64 {
	return o.CostUNatUSD + o.CostTransportNat + o.CostConversion + o.CostTransportConv + o.CostEnrichment
}

const (
	tailsAssayMin  = 0.0005
	tailsScanSteps = 500
)

// OptimizeFrontEnd scans the tails assay between tailsAssayMin and the
// natural assay and returns the feed mass, tails assay, and cost split
// that minimize natural uranium + transport + conversion + enrichment
// for the requested enriched product mass. The ok result is false when
// no feasible point exists, which for validated inputs does not occur.
func OptimizeFrontEnd(productMassKg float64, project ProjectParameters, costs CostParameters) (FrontEndOptimum, bool) {
	if productMassKg <= 0 {
		return FrontEndOptimum{}, false
	}

	best := FrontEndOptimum{}
	bestCost := math.Inf(1)
	found := false

	step := (project.XUNat - tailsAssayMin) / tailsScanSteps
	for i := 0; i < tailsScanSteps; i++ {
		xTails := tailsAssayMin + float64(i)*step
		if math.Abs(project.XUNat-xTails) < 1e-8 {
			continue
		}

		// Mass balance: feed from product and tails assays.
		feedKg := productMassKg * (project.XUProduct - xTails) / (project.XUNat - xTails)
		if feedKg <= 0 {
			continue
		}
		tailsKg := feedKg - productMassKg

		swu := productMassKg*swuValue(project.XUProduct) +
			tailsKg*swuValue(xTails) -
			feedKg*swuValue(project.XUNat)
		if swu <= 0 {
			continue
		}

		candidate := FrontEndOptimum{
			FeedMassKg:        feedKg,
			TailsAssay:        xTails,
			SWURequired:       swu,
			CostUNatUSD:       feedKg * costs.PriceUNatPerKgUSD,
			CostTransportNat:  feedKg * costs.TransportUNatPerKgKmUSD * project.DistanceUNatKm,
			CostConversion:    feedKg * costs.ConversionPerKgUUSD,
			CostTransportConv: feedKg * costs.TransportUConvPerKgKmUSD * project.DistanceUConvKm,
			CostEnrichment:    swu * costs.PriceSWUPerSWUUSD,
		}
		if total := candidate.TotalUSD(); total < bestCost {
			bestCost = total
			best = candidate
			found = true
		}
	}

	return best, found
}

// FuelCycleBreakdown lists the annual plant-wide fuel-cycle cost of
// each step, in dollars per year.
type FuelCycleBreakdown struct {
	UNat               float64 `json:"u_nat"`
	TransportUNat      float64 `json:"transport_u_nat"`
	Conversion         float64 `json:"conversion"`
	TransportUConv     float64 `json:"transport_u_converted"`
	Enrichment         float64 `json:"enrichment"`
	TransportUEnriched float64 `json:"transport_u_enriched"`
	Fabrication        float64 `json:"fabrication"`
	TransportFreshFuel float64 `json:"transport_fresh_fuel"`
	BackEnd            float64 `json:"back_end"`
	TransportSpentFuel float64 `json:"transport_spent_fuel"`
}

// Total sums all steps.
func (b FuelCycleBreakdown) Total() float64 {
	return b.UNat + b.TransportUNat + b.Conversion + b.TransportUConv +
		b.Enrichment + b.TransportUEnriched + b.Fabrication +
		b.TransportFreshFuel + b.BackEnd + b.TransportSpentFuel
}

// scale returns the breakdown with every step multiplied by f.
func (b FuelCycleBreakdown) scale(f float64) FuelCycleBreakdown {
	return FuelCycleBreakdown{
		UNat:               b.UNat * f,
		TransportUNat:      b.TransportUNat * f,
		Conversion:         b.Conversion * f,
		TransportUConv:     b.TransportUConv * f,
		Enrichment:         b.Enrichment * f,
		TransportUEnriched: b.TransportUEnriched * f,
		Fabrication:        b.Fabrication * f,
		TransportFreshFuel: b.TransportFreshFuel * f,
		BackEnd:            b.BackEnd * f,
		TransportSpentFuel: b.TransportSpentFuel * f,
	}
}

// AnnualFuelCycle computes the detailed annual fuel-cycle cost for the
// whole plant. The spent fuel mass discharged is assumed equal to the
// fresh fuel mass loaded.
func AnnualFuelCycle(project ProjectParameters, costs CostParameters) (FuelCycleBreakdown, FrontEndOptimum, bool) {
	productKg := AnnualEnrichedUMassKg(project)
	front, ok := OptimizeFrontEnd(productKg, project, costs)
	if !ok {
		return FuelCycleBreakdown{}, FrontEndOptimum{}, false
	}

	freshKg := AnnualFreshFuelMassKg(project)
	spentKg := freshKg

	b := FuelCycleBreakdown{
		UNat:               front.CostUNatUSD,
		TransportUNat:      front.CostTransportNat,
		Conversion:         front.CostConversion,
		TransportUConv:     front.CostTransportConv,
		Enrichment:         front.CostEnrichment,
		TransportUEnriched: productKg * costs.TransportEnrichedPerKgKmUSD * project.DistanceUEnrichedKm,
		Fabrication:        freshKg * costs.FabricationPerKgUSD,
		TransportFreshFuel: freshKg * costs.TransportFreshPerKgKmUSD * project.DistanceFreshFuelKm,
		BackEnd:            spentKg * costs.DisposalPerKgSpentUSD,
		TransportSpentFuel: spentKg * costs.TransportSpentPerKgKmUSD * project.DistanceSpentFuelKm,
	}
	return b, front, true
}
