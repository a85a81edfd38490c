package lcoe

import "math"

// Constraint is the validity rule attached to a numeric field.
type Constraint int

const (
	// NonNegative requires v >= 0.
	NonNegative Constraint = iota
	// Positive requires v > 0.
	Positive
	// Rate requires 0 <= v < 1.
	Rate
	// Fraction requires 0 < v <= 1.
	Fraction
	// Assay requires 0 < v < 1.
	Assay
)

func (c Constraint) describe() string {
	switch c {
	case Positive:
		return "must be greater than 0"
	case Rate:
		return "must be in [0, 1)"
	case Fraction:
		return "must be in (0, 1]"
	case Assay:
		return "must be in (0, 1)"
	default:
		return "must be at least 0"
	}
}

func (c Constraint) holds(v float64) bool {
	switch c {
	case Positive:
		return v > 0
	case Rate:
		return v >= 0 && v < 1
	case Fraction:
		return v > 0 && v <= 1
	case Assay:
		return v > 0 && v < 1
	default:
		return v >= 0
	}
}

// Field groups.
const (
	GroupReactor   = "reactor"
	GroupFuel      = "fuel"
	GroupFinancing = "financing"
)

// Field describes one scenario parameter: its form name, display
// label, unit, validity constraint, and accessors. The same table
// drives validation, the calculator form, and the CLI report.
type Field struct {
	Name  string
	Label string
	Unit  string
	Group string
	Check Constraint
	Get   func(Scenario) float64
	Set   func(*Scenario, float64)

	// FuelChainOnly fields feed the detailed fuel-cycle chain and are
	// not validated when a flat fuel cost override is in effect.
	FuelChainOnly bool
}

// Fields returns the full parameter table in display order.
func Fields() []Field {
	return []Field{
		{
			Name: "n_reactors", Label: "Number of reactors", Unit: "", Group: GroupReactor, Check: Positive,
			Get: func(s Scenario) float64 { return float64(s.Project.NReactors) },
			Set: func(s *Scenario, v float64) { s.Project.NReactors = int(math.Round(v)) },
		},
		{
			Name: "power_per_reactor_mwe", Label: "Power per reactor", Unit: "MWe", Group: GroupReactor, Check: Positive,
			Get: func(s Scenario) float64 { return s.Project.PowerPerReactorMWe },
			Set: func(s *Scenario, v float64) { s.Project.PowerPerReactorMWe = v },
		},
		{
			Name: "capacity_factor", Label: "Net capacity factor", Unit: "fraction", Group: GroupReactor, Check: Fraction,
			Get: func(s Scenario) float64 { return s.Project.CapacityFactor },
			Set: func(s *Scenario, v float64) { s.Project.CapacityFactor = v },
		},
		{
			Name: "first_construction_years", Label: "Construction time, first reactor", Unit: "years", Group: GroupReactor, Check: Positive,
			Get: func(s Scenario) float64 { return s.Project.FirstConstructionYears },
			Set: func(s *Scenario, v float64) { s.Project.FirstConstructionYears = v },
		},
		{
			Name: "delay_between_reactors_years", Label: "Delay between reactor starts", Unit: "years", Group: GroupReactor, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DelayBetweenReactorsYears },
			Set: func(s *Scenario, v float64) { s.Project.DelayBetweenReactorsYears = v },
		},
		{
			Name: "lifetime_years", Label: "Reactor lifetime", Unit: "years", Group: GroupReactor, Check: Positive,
			Get: func(s Scenario) float64 { return float64(s.Project.LifetimeYears) },
			Set: func(s *Scenario, v float64) { s.Project.LifetimeYears = int(math.Round(v)) },
		},
		{
			Name: "degradation_per_year", Label: "Output degradation per year", Unit: "fraction", Group: GroupReactor, Check: Rate,
			Get: func(s Scenario) float64 { return s.Project.DegradationPerYear },
			Set: func(s *Scenario, v float64) { s.Project.DegradationPerYear = v },
		},

		{
			Name: "assemblies_per_core", Label: "Assemblies per core", Unit: "", Group: GroupFuel, Check: Positive, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return float64(s.Project.AssembliesPerCore) },
			Set: func(s *Scenario, v float64) { s.Project.AssembliesPerCore = int(math.Round(v)) },
		},
		{
			Name: "fuel_mass_per_assembly_kg", Label: "Fuel mass per assembly", Unit: "kgUO2", Group: GroupFuel, Check: Positive, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return s.Project.FuelMassPerAssemblyKg },
			Set: func(s *Scenario, v float64) { s.Project.FuelMassPerAssemblyKg = v },
		},
		{
			Name: "batch_fraction", Label: "Core fraction reloaded per cycle", Unit: "fraction", Group: GroupFuel, Check: Fraction, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return s.Project.BatchFraction },
			Set: func(s *Scenario, v float64) { s.Project.BatchFraction = v },
		},
		{
			Name: "cycle_length_years", Label: "Cycle length", Unit: "years", Group: GroupFuel, Check: Positive, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return s.Project.CycleLengthYears },
			Set: func(s *Scenario, v float64) { s.Project.CycleLengthYears = v },
		},
		{
			Name: "x_u_nat", Label: "U-235 fraction, natural uranium", Unit: "fraction", Group: GroupFuel, Check: Assay, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return s.Project.XUNat },
			Set: func(s *Scenario, v float64) { s.Project.XUNat = v },
		},
		{
			Name: "x_u_product", Label: "U-235 fraction, enriched product", Unit: "fraction", Group: GroupFuel, Check: Assay, FuelChainOnly: true,
			Get: func(s Scenario) float64 { return s.Project.XUProduct },
			Set: func(s *Scenario, v float64) { s.Project.XUProduct = v },
		},
		{
			Name: "distance_u_nat_km", Label: "Transport distance, natural U", Unit: "km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DistanceUNatKm },
			Set: func(s *Scenario, v float64) { s.Project.DistanceUNatKm = v },
		},
		{
			Name: "distance_u_converted_km", Label: "Transport distance, converted U", Unit: "km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DistanceUConvKm },
			Set: func(s *Scenario, v float64) { s.Project.DistanceUConvKm = v },
		},
		{
			Name: "distance_u_enriched_km", Label: "Transport distance, enriched U", Unit: "km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DistanceUEnrichedKm },
			Set: func(s *Scenario, v float64) { s.Project.DistanceUEnrichedKm = v },
		},
		{
			Name: "distance_fresh_fuel_km", Label: "Transport distance, fresh fuel", Unit: "km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DistanceFreshFuelKm },
			Set: func(s *Scenario, v float64) { s.Project.DistanceFreshFuelKm = v },
		},
		{
			Name: "distance_spent_fuel_km", Label: "Transport distance, spent fuel", Unit: "km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Project.DistanceSpentFuelKm },
			Set: func(s *Scenario, v float64) { s.Project.DistanceSpentFuelKm = v },
		},
		{
			Name: "price_u_nat_per_kg_usd", Label: "Natural uranium price", Unit: "$/kgU", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.PriceUNatPerKgUSD },
			Set: func(s *Scenario, v float64) { s.Costs.PriceUNatPerKgUSD = v },
		},
		{
			Name: "transport_u_nat_per_kg_km_usd", Label: "Natural U transport rate", Unit: "$/kgU/km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.TransportUNatPerKgKmUSD },
			Set: func(s *Scenario, v float64) { s.Costs.TransportUNatPerKgKmUSD = v },
		},
		{
			Name: "conversion_per_kgu_usd", Label: "Conversion cost", Unit: "$/kgU", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.ConversionPerKgUUSD },
			Set: func(s *Scenario, v float64) { s.Costs.ConversionPerKgUUSD = v },
		},
		{
			Name: "transport_u_converted_per_kg_km_usd", Label: "Converted U transport rate", Unit: "$/kgU/km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.TransportUConvPerKgKmUSD },
			Set: func(s *Scenario, v float64) { s.Costs.TransportUConvPerKgKmUSD = v },
		},
		{
			Name: "price_swu_per_swu_usd", Label: "Enrichment price", Unit: "$/SWU", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.PriceSWUPerSWUUSD },
			Set: func(s *Scenario, v float64) { s.Costs.PriceSWUPerSWUUSD = v },
		},
		{
			Name: "transport_u_enriched_per_kg_km_usd", Label: "Enriched U transport rate", Unit: "$/kgU/km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.TransportEnrichedPerKgKmUSD },
			Set: func(s *Scenario, v float64) { s.Costs.TransportEnrichedPerKgKmUSD = v },
		},
		{
			Name: "fabrication_per_kg_usd", Label: "Fabrication cost", Unit: "$/kg fresh fuel", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.FabricationPerKgUSD },
			Set: func(s *Scenario, v float64) { s.Costs.FabricationPerKgUSD = v },
		},
		{
			Name: "transport_fresh_fuel_per_kg_km_usd", Label: "Fresh fuel transport rate", Unit: "$/kg/km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.TransportFreshPerKgKmUSD },
			Set: func(s *Scenario, v float64) { s.Costs.TransportFreshPerKgKmUSD = v },
		},
		{
			Name: "disposal_per_kg_spent_usd", Label: "Direct disposal cost", Unit: "$/kg spent fuel", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.DisposalPerKgSpentUSD },
			Set: func(s *Scenario, v float64) { s.Costs.DisposalPerKgSpentUSD = v },
		},
		{
			Name: "transport_spent_fuel_per_kg_km_usd", Label: "Spent fuel transport rate", Unit: "$/kg/km", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.TransportSpentPerKgKmUSD },
			Set: func(s *Scenario, v float64) { s.Costs.TransportSpentPerKgKmUSD = v },
		},
		{
			Name: "fuel_cost_per_reactor_year_usd", Label: "Flat fuel cost override", Unit: "$/reactor/year", Group: GroupFuel, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.FuelCostPerReactorYearUSD },
			Set: func(s *Scenario, v float64) { s.Costs.FuelCostPerReactorYearUSD = v },
		},

		{
			Name: "discount_rate", Label: "Real discount rate", Unit: "fraction", Group: GroupFinancing, Check: Rate,
			Get: func(s Scenario) float64 { return s.Costs.DiscountRate },
			Set: func(s *Scenario, v float64) { s.Costs.DiscountRate = v },
		},
		{
			Name: "overnight_cost_per_reactor_usd", Label: "Overnight cost per reactor", Unit: "$", Group: GroupFinancing, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.OvernightCostPerReactorUSD },
			Set: func(s *Scenario, v float64) { s.Costs.OvernightCostPerReactorUSD = v },
		},
		{
			Name: "dismantling_cost_per_reactor_usd", Label: "Dismantling cost per reactor", Unit: "$", Group: GroupFinancing, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.DismantlingCostPerReactorUSD },
			Set: func(s *Scenario, v float64) { s.Costs.DismantlingCostPerReactorUSD = v },
		},
		{
			Name: "fixed_om_per_reactor_year_usd", Label: "Fixed O&M per reactor", Unit: "$/year", Group: GroupFinancing, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.FixedOMPerReactorYearUSD },
			Set: func(s *Scenario, v float64) { s.Costs.FixedOMPerReactorYearUSD = v },
		},
		{
			Name: "variable_om_per_mwh_usd", Label: "Variable O&M", Unit: "$/MWh", Group: GroupFinancing, Check: NonNegative,
			Get: func(s Scenario) float64 { return s.Costs.VariableOMPerMWhUSD },
			Set: func(s *Scenario, v float64) { s.Costs.VariableOMPerMWhUSD = v },
		},
	}
}
