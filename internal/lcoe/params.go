// Package lcoe computes the levelized cost of electricity for a
// nuclear power plant from project and cost parameters using a
// discounted cash-flow model. Compute is a pure function: it holds no
// state, performs no I/O, and is safe to call concurrently.
package lcoe

// HoursPerYear is the number of hours used to convert installed
// capacity into annual energy.
const HoursPerYear = 8760.0

// ProjectParameters describes the plant and its fuel. All fields are
// value types; a ProjectParameters is built once per computation and
// never mutated.
type ProjectParameters struct {
	NReactors                 int     `json:"n_reactors"`
	PowerPerReactorMWe        float64 `json:"power_per_reactor_mwe"`
	CapacityFactor            float64 `json:"capacity_factor"`
	FirstConstructionYears    float64 `json:"first_construction_years"`
	DelayBetweenReactorsYears float64 `json:"delay_between_reactors_years"`
	LifetimeYears             int     `json:"lifetime_years"`

	// DegradationPerYear reduces a reactor's output by this fraction
	// for each year of operating age. Zero means constant output.
	DegradationPerYear float64 `json:"degradation_per_year"`

	// Core and fuel parameters. Fuel masses are oxide (UO2) masses.
	AssembliesPerCore     int     `json:"assemblies_per_core"`
	FuelMassPerAssemblyKg float64 `json:"fuel_mass_per_assembly_kg"`
	BatchFraction         float64 `json:"batch_fraction"`
	CycleLengthYears      float64 `json:"cycle_length_years"`

	// U-235 fractions in natural uranium feed and enriched product.
	XUNat     float64 `json:"x_u_nat"`
	XUProduct float64 `json:"x_u_product"`

	// Transport distances for each leg of the fuel cycle.
	DistanceUNatKm      float64 `json:"distance_u_nat_km"`
	DistanceUConvKm     float64 `json:"distance_u_converted_km"`
	DistanceUEnrichedKm float64 `json:"distance_u_enriched_km"`
	DistanceFreshFuelKm float64 `json:"distance_fresh_fuel_km"`
	DistanceSpentFuelKm float64 `json:"distance_spent_fuel_km"`
}

// CostParameters holds all monetary inputs in US dollars. Rates are
// fractions, not percentages.
type CostParameters struct {
	DiscountRate float64 `json:"discount_rate"`

	OvernightCostPerReactorUSD   float64 `json:"overnight_cost_per_reactor_usd"`
	DismantlingCostPerReactorUSD float64 `json:"dismantling_cost_per_reactor_usd"`

	FixedOMPerReactorYearUSD float64 `json:"fixed_om_per_reactor_year_usd"`
	VariableOMPerMWhUSD      float64 `json:"variable_om_per_mwh_usd"`

	// FuelCostPerReactorYearUSD, when positive, is used as a flat
	// annual fuel-cycle cost per reactor and the detailed front/back
	// end chain below is skipped.
	FuelCostPerReactorYearUSD float64 `json:"fuel_cost_per_reactor_year_usd"`

	// Front-end fuel cycle unit costs.
	PriceUNatPerKgUSD           float64 `json:"price_u_nat_per_kg_usd"`
	TransportUNatPerKgKmUSD     float64 `json:"transport_u_nat_per_kg_km_usd"`
	ConversionPerKgUUSD         float64 `json:"conversion_per_kgu_usd"`
	TransportUConvPerKgKmUSD    float64 `json:"transport_u_converted_per_kg_km_usd"`
	PriceSWUPerSWUUSD           float64 `json:"price_swu_per_swu_usd"`
	TransportEnrichedPerKgKmUSD float64 `json:"transport_u_enriched_per_kg_km_usd"`
	FabricationPerKgUSD         float64 `json:"fabrication_per_kg_usd"`
	TransportFreshPerKgKmUSD    float64 `json:"transport_fresh_fuel_per_kg_km_usd"`
	DisposalPerKgSpentUSD       float64 `json:"disposal_per_kg_spent_usd"`
	TransportSpentPerKgKmUSD    float64 `json:"transport_spent_fuel_per_kg_km_usd"`
}

// Scenario groups the two parameter sets. It is the unit the presets
// store, the cache keys on, and the CLI loads from JSON.
type Scenario struct {
	Project ProjectParameters `json:"project"`
	Costs   CostParameters    `json:"costs"`
}

// DefaultProject returns the reference project: four VVER-1200 class
// reactors, staggered construction, sixty-year lifetime.
func DefaultProject() ProjectParameters {
	return ProjectParameters{
		NReactors:                 4,
		PowerPerReactorMWe:        1200,
		CapacityFactor:            0.80,
		FirstConstructionYears:    7,
		DelayBetweenReactorsYears: 1,
		LifetimeYears:             60,
		AssembliesPerCore:         163,
		FuelMassPerAssemblyKg:     534,
		BatchFraction:             1.0 / 3.0,
		CycleLengthYears:          1.5,
		XUNat:                     0.00711,
		XUProduct:                 0.048,
		DistanceUNatKm:            5000,
		DistanceUConvKm:           1200,
		DistanceUEnrichedKm:       100,
		DistanceFreshFuelKm:       1000,
		DistanceSpentFuelKm:       500,
	}
}

// DefaultCosts returns the reference cost assumptions for the default
// project, at a 5% real discount rate.
func DefaultCosts() CostParameters {
	return CostParameters{
		DiscountRate:                0.05,
		OvernightCostPerReactorUSD:  6e9,
		FixedOMPerReactorYearUSD:    200e6,
		PriceUNatPerKgUSD:           190,
		TransportUNatPerKgKmUSD:     0.04e-3,
		ConversionPerKgUUSD:         15,
		TransportUConvPerKgKmUSD:    0.05e-3,
		PriceSWUPerSWUUSD:           140,
		TransportEnrichedPerKgKmUSD: 1.0e-3,
		FabricationPerKgUSD:         250,
		TransportFreshPerKgKmUSD:    5.0e-3,
		DisposalPerKgSpentUSD:       1300,
		TransportSpentPerKgKmUSD:    6.0e-3,
	}
}

// DefaultScenario returns the reference scenario.
func DefaultScenario() Scenario {
	return Scenario{Project: DefaultProject(), Costs: DefaultCosts()}
}
