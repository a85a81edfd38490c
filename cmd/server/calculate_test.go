package main

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/atomcost/lcoe/internal/cache"
	"github.com/atomcost/lcoe/internal/lcoe"
)

func TestParseScenarioForm_OverridesAndDefaults(t *testing.T) {
	form := url.Values{}
	form.Set("discount_rate", "0.07")
	form.Set("n_reactors", "2")
	form.Set("capacity_factor", "0.92")

	req := httptest.NewRequest("POST", "/calculate", nil)
	req.Form = form

	sc, err := parseScenarioForm(req, lcoe.DefaultScenario())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sc.Costs.DiscountRate != 0.07 {
		t.Fatalf("discount rate not applied: %v", sc.Costs.DiscountRate)
	}
	if sc.Project.NReactors != 2 || sc.Project.CapacityFactor != 0.92 {
		t.Fatalf("project overrides not applied: %+v", sc.Project)
	}
	// Untouched fields keep the base values.
	if sc.Project.PowerPerReactorMWe != 1200 || sc.Costs.PriceUNatPerKgUSD != 190 {
		t.Fatalf("defaults lost: %+v", sc)
	}
}

func TestParseScenarioForm_InvalidNumber(t *testing.T) {
	form := url.Values{}
	form.Set("discount_rate", "abc")

	req := httptest.NewRequest("POST", "/calculate", nil)
	req.Form = form

	if _, err := parseScenarioForm(req, lcoe.DefaultScenario()); err == nil {
		t.Fatal("expected numeric validation error")
	}
}

func TestParsePresetForm_Success(t *testing.T) {
	form := url.Values{}
	form.Set("name", "My preset")
	form.Set("notes", "half rate")
	form.Set("active", "1")
	form.Set("params_json", mustScenarioJSON(t))

	req := httptest.NewRequest("POST", "/admin/presets", nil)
	req.Form = form

	preset, err := parsePresetForm(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if preset.Name != "My preset" || !preset.Active {
		t.Fatalf("unexpected preset: %+v", preset)
	}
	if preset.Scenario.Project.NReactors != 4 {
		t.Fatalf("scenario not decoded: %+v", preset.Scenario)
	}
}

func TestParsePresetForm_RejectsInvalidScenario(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Broken")
	form.Set("params_json", `{"project":{"n_reactors":0},"costs":{}}`)

	req := httptest.NewRequest("POST", "/admin/presets", nil)
	req.Form = form

	if _, err := parsePresetForm(req); err == nil {
		t.Fatal("expected validation error for zero reactors")
	}
}

func TestParsePresetForm_RejectsBadJSON(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Broken")
	form.Set("params_json", "{not json")

	req := httptest.NewRequest("POST", "/admin/presets", nil)
	req.Form = form

	if _, err := parsePresetForm(req); err == nil {
		t.Fatal("expected JSON error")
	}
}

// countingCache wraps the in-memory cache and counts hits and misses.
type countingCache struct {
	inner  *cache.Memory
	hits   int
	misses int
}

func (c *countingCache) Get(key string) (string, bool) {
	v, ok := c.inner.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *countingCache) Set(key, value string) error {
	return c.inner.Set(key, value)
}

func TestComputeWithCache_Memoizes(t *testing.T) {
	counting := &countingCache{inner: cache.NewMemory()}
	srv := &server{cache: counting}
	sc := lcoe.DefaultScenario()

	first, err := srv.computeWithCache(sc)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := srv.computeWithCache(sc)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	if counting.misses != 1 || counting.hits != 1 {
		t.Fatalf("expected one miss then one hit, got %d misses %d hits", counting.misses, counting.hits)
	}
	if first.LCOEUSDPerMWh != second.LCOEUSDPerMWh {
		t.Fatalf("cached result differs: %v vs %v", first.LCOEUSDPerMWh, second.LCOEUSDPerMWh)
	}
}

func TestComputeWithCache_ValidationErrorNotCached(t *testing.T) {
	counting := &countingCache{inner: cache.NewMemory()}
	srv := &server{cache: counting}

	sc := lcoe.DefaultScenario()
	sc.Project.LifetimeYears = 0

	if _, err := srv.computeWithCache(sc); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := srv.computeWithCache(sc); err == nil {
		t.Fatal("expected validation error on retry")
	}
	if counting.hits != 0 {
		t.Fatalf("invalid scenario produced a cache hit")
	}
}

func TestScenarioDigest_DeterministicAndSensitive(t *testing.T) {
	a, err := scenarioDigest(lcoe.DefaultScenario())
	if err != nil {
		t.Fatal(err)
	}
	b, err := scenarioDigest(lcoe.DefaultScenario())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("digest not deterministic: %s vs %s", a, b)
	}

	changed := lcoe.DefaultScenario()
	changed.Costs.DiscountRate = 0.051
	c, err := scenarioDigest(changed)
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Fatal("digest insensitive to input change")
	}
}

func TestFieldGroups_CoverEveryField(t *testing.T) {
	groups := fieldGroups(lcoe.DefaultScenario())

	total := 0
	for _, g := range groups {
		if g.Title == "" {
			t.Fatalf("group without title: %+v", g)
		}
		total += len(g.Fields)
	}
	if total != len(lcoe.Fields()) {
		t.Fatalf("groups cover %d fields, table has %d", total, len(lcoe.Fields()))
	}
}

func mustScenarioJSON(t *testing.T) string {
	t.Helper()
	return `{
		"project": {
			"n_reactors": 4, "power_per_reactor_mwe": 1200, "capacity_factor": 0.8,
			"first_construction_years": 7, "delay_between_reactors_years": 1, "lifetime_years": 60,
			"assemblies_per_core": 163, "fuel_mass_per_assembly_kg": 534,
			"batch_fraction": 0.3333333333333333, "cycle_length_years": 1.5,
			"x_u_nat": 0.00711, "x_u_product": 0.048,
			"distance_u_nat_km": 5000, "distance_u_converted_km": 1200,
			"distance_u_enriched_km": 100, "distance_fresh_fuel_km": 1000, "distance_spent_fuel_km": 500
		},
		"costs": {
			"discount_rate": 0.05, "overnight_cost_per_reactor_usd": 6e9,
			"fixed_om_per_reactor_year_usd": 2e8,
			"price_u_nat_per_kg_usd": 190, "transport_u_nat_per_kg_km_usd": 4e-5,
			"conversion_per_kgu_usd": 15, "transport_u_converted_per_kg_km_usd": 5e-5,
			"price_swu_per_swu_usd": 140, "transport_u_enriched_per_kg_km_usd": 0.001,
			"fabrication_per_kg_usd": 250, "transport_fresh_fuel_per_kg_km_usd": 0.005,
			"disposal_per_kg_spent_usd": 1300, "transport_spent_fuel_per_kg_km_usd": 0.006
		}
	}`
}
