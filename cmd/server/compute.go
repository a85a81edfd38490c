package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/atomcost/lcoe/internal/lcoe"
)

// parseScenarioForm reads every parameter of the field table from the
// posted form. Missing or blank fields keep the value from base, so a
// preset can pre-fill anything the user leaves untouched.
func parseScenarioForm(r *http.Request, base lcoe.Scenario) (lcoe.Scenario, error) {
	sc := base
	for _, f := range lcoe.Fields() {
		raw := strings.TrimSpace(r.FormValue(f.Name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sc, fmt.Errorf("%s must be numeric", f.Name)
		}
		f.Set(&sc, v)
	}
	return sc, nil
}

// scenarioDigest is the cache key: a SHA-256 over the canonical JSON
// encoding of the inputs.
func scenarioDigest(sc lcoe.Scenario) (string, error) {
	encoded, err := json.Marshal(sc)
	if err != nil {
		return "", fmt.Errorf("encode scenario: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return "lcoe:" + hex.EncodeToString(sum[:]), nil
}

// computeWithCache memoizes the pure engine call. Cache failures are
// never user-visible; the engine result is recomputed instead.
func (s *server) computeWithCache(sc lcoe.Scenario) (lcoe.Result, error) {
	key, err := scenarioDigest(sc)
	if err != nil {
		return lcoe.Result{}, err
	}

	if encoded, ok := s.cache.Get(key); ok {
		var cached lcoe.Result
		if err := json.Unmarshal([]byte(encoded), &cached); err == nil {
			return cached, nil
		}
		// Unreadable entry: fall through and recompute.
	}

	result, err := lcoe.Compute(sc.Project, sc.Costs)
	if err != nil {
		return lcoe.Result{}, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			log.Printf("warning: failed to cache result: %v", err)
		}
	}

	return result, nil
}
