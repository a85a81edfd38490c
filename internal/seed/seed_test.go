package seed

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/atomcost/lcoe/internal/lcoe"
	"github.com/atomcost/lcoe/internal/presets"
)

func newSeedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			notes TEXT,
			params_json TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		t.Fatalf("failed creating presets table: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func TestRun_InsertsReferencePresets(t *testing.T) {
	db := newSeedTestDB(t)

	stats, err := Run(db)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Inserts != 2 {
		t.Fatalf("expected 2 inserts, got %d", stats.Inserts)
	}

	store := presets.NewStore(db)
	all, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(all))
	}

	// Seeded scenarios must pass validation and compute.
	for _, p := range all {
		if _, err := lcoe.Compute(p.Scenario.Project, p.Scenario.Costs); err != nil {
			t.Fatalf("seeded preset %q does not compute: %v", p.Name, err)
		}
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	if _, err := Run(db); err != nil {
		t.Fatalf("first Run: %v", err)
	}

	stats, err := Run(db)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if stats.Inserts != 0 {
		t.Fatalf("second run inserted %d presets", stats.Inserts)
	}
}

func TestRun_PreservesEdits(t *testing.T) {
	db := newSeedTestDB(t)
	if _, err := Run(db); err != nil {
		t.Fatalf("Run: %v", err)
	}

	store := presets.NewStore(db)
	all, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	edited := all[0]
	edited.Scenario.Costs.DiscountRate = 0.09
	if err := store.Update(edited); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := Run(db); err != nil {
		t.Fatalf("re-Run: %v", err)
	}

	got, err := store.Get(edited.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Scenario.Costs.DiscountRate != 0.09 {
		t.Fatalf("seed overwrote an edited preset")
	}
}
