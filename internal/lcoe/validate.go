package lcoe

import "fmt"

// InvalidParameterError reports a single input that violates its
// constraint. Validation runs before any computation, so a returned
// error always means no result was produced.
type InvalidParameterError struct {
	Field      string
	Constraint string
	Value      float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s (got %g)", e.Field, e.Constraint, e.Value)
}

// Validate checks every invariant of the parameter set. It returns the
// first violation as an *InvalidParameterError and nil when the inputs
// are acceptable for Compute.
func Validate(project ProjectParameters, costs CostParameters) error {
	sc := Scenario{Project: project, Costs: costs}
	flatFuel := costs.FuelCostPerReactorYearUSD > 0
	for _, f := range Fields() {
		if f.FuelChainOnly && flatFuel {
			continue
		}
		v := f.Get(sc)
		if !f.Check.holds(v) {
			return &InvalidParameterError{Field: f.Name, Constraint: f.Check.describe(), Value: v}
		}
	}

	if !flatFuel && project.XUProduct <= project.XUNat {
		return &InvalidParameterError{
			Field:      "x_u_product",
			Constraint: "must exceed x_u_nat",
			Value:      project.XUProduct,
		}
	}

	return nil
}
