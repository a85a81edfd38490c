package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/atomcost/lcoe/internal/cache"
	"github.com/atomcost/lcoe/internal/config"
	"github.com/atomcost/lcoe/internal/db"
	"github.com/atomcost/lcoe/internal/lcoe"
	"github.com/atomcost/lcoe/internal/migrations"
	"github.com/atomcost/lcoe/internal/presets"
	"github.com/atomcost/lcoe/internal/seed"
)

type server struct {
	auth  *authService
	db    *sql.DB
	store *presets.Store
	cache cache.Repository
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

type loginViewData struct {
	baseViewData
}

type fieldView struct {
	Name  string
	Label string
	Unit  string
	Value string
}

type fieldGroupView struct {
	Title  string
	Fields []fieldView
}

type presetOption struct {
	ID   int64
	Name string
}

type calculatorViewData struct {
	baseViewData
	Groups         []fieldGroupView
	Presets        []presetOption
	SelectedPreset int64
	Result         *lcoe.Result
}

type presetsViewData struct {
	baseViewData
	Presets []presets.Preset
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	auth := newAuthService(database, cfg.SessionSecret)
	if err := auth.ensureAdminUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed presets: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d reference presets", stats.Inserts)
	}

	var resultCache cache.Repository
	if cfg.RedisAddr != "" {
		resultCache = cache.NewRedis(cfg.RedisAddr)
		log.Printf("result cache: redis at %s", cfg.RedisAddr)
	} else {
		resultCache = cache.NewMemory()
		log.Print("result cache: in-memory")
	}

	srv := &server{
		auth:  auth,
		db:    database,
		store: presets.NewStore(database),
		cache: resultCache,
	}

	r := chi.NewRouter()
	r.Use(srv.adminMiddleware)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.Get("/", srv.handleCalculatorForm)
	r.Post("/calculate", srv.handleCalculate)
	r.Get("/login", srv.handleLoginForm)
	r.Post("/login", srv.handleLoginSubmit)
	r.Post("/logout", srv.handleLogout)
	r.Get("/admin/presets", srv.handleAdminPresetsForm)
	r.Post("/admin/presets", srv.handleAdminPresetsCreate)
	r.Post("/admin/presets/{id}", srv.handleAdminPresetsUpdate)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) handleCalculatorForm(w http.ResponseWriter, r *http.Request) {
	scenario := lcoe.DefaultScenario()
	var selected int64

	if raw := r.URL.Query().Get("preset"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			preset, err := s.store.Get(id)
			if err == nil {
				scenario = preset.Scenario
				selected = preset.ID
			}
		}
	}

	view, err := s.calculatorView(scenario, selected, nil)
	if err != nil {
		http.Error(w, "failed to load calculator", http.StatusInternalServerError)
		return
	}
	s.renderTemplate(w, "calculator.html", view)
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	base := lcoe.DefaultScenario()
	var selected int64
	if raw := r.FormValue("preset_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil && id > 0 {
			preset, err := s.store.Get(id)
			if err == nil {
				base = preset.Scenario
				selected = preset.ID
			}
		}
	}

	scenario, parseErr := parseScenarioForm(r, base)
	if parseErr != nil {
		s.renderCalculatorError(w, scenario, selected, parseErr.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.computeWithCache(scenario)
	if err != nil {
		var invalid *lcoe.InvalidParameterError
		if errors.As(err, &invalid) {
			s.renderCalculatorError(w, scenario, selected, invalid.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to compute", http.StatusInternalServerError)
		return
	}

	view, err := s.calculatorView(scenario, selected, &result)
	if err != nil {
		http.Error(w, "failed to load calculator", http.StatusInternalServerError)
		return
	}
	s.renderTemplate(w, "calculator.html", view)
}

func (s *server) renderCalculatorError(w http.ResponseWriter, scenario lcoe.Scenario, selected int64, message string, status int) {
	view, err := s.calculatorView(scenario, selected, nil)
	if err != nil {
		http.Error(w, "failed to load calculator", http.StatusInternalServerError)
		return
	}
	view.ErrorMessage = message
	w.WriteHeader(status)
	s.renderTemplate(w, "calculator.html", view)
}

func (s *server) calculatorView(scenario lcoe.Scenario, selected int64, result *lcoe.Result) (calculatorViewData, error) {
	all, err := s.store.List()
	if err != nil {
		return calculatorViewData{}, err
	}

	options := make([]presetOption, 0, len(all))
	for _, p := range all {
		if p.Active {
			options = append(options, presetOption{ID: p.ID, Name: p.Name})
		}
	}

	return calculatorViewData{
		Groups:         fieldGroups(scenario),
		Presets:        options,
		SelectedPreset: selected,
		Result:         result,
	}, nil
}

var groupTitles = map[string]string{
	lcoe.GroupReactor:   "Reactor",
	lcoe.GroupFuel:      "Fuel cycle",
	lcoe.GroupFinancing: "Financing",
}

// fieldGroups renders the parameter table into form sections, keeping
// the table's order inside each group.
func fieldGroups(scenario lcoe.Scenario) []fieldGroupView {
	var groups []fieldGroupView
	index := map[string]int{}

	for _, f := range lcoe.Fields() {
		i, ok := index[f.Group]
		if !ok {
			i = len(groups)
			index[f.Group] = i
			groups = append(groups, fieldGroupView{Title: groupTitles[f.Group]})
		}
		groups[i].Fields = append(groups[i].Fields, fieldView{
			Name:  f.Name,
			Label: f.Label,
			Unit:  f.Unit,
			Value: strconv.FormatFloat(f.Get(scenario), 'g', -1, 64),
		})
	}
	return groups
}

func (s *server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if isAuthenticated(r, s.auth) {
		http.Redirect(w, r, "/admin/presets", http.StatusSeeOther)
		return
	}
	s.renderTemplate(w, "login.html", loginViewData{})
}

func (s *server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	valid, err := s.auth.validateCredentials(email, password)
	if err != nil {
		http.Error(w, "authentication error", http.StatusInternalServerError)
		return
	}
	if !valid {
		w.WriteHeader(http.StatusUnauthorized)
		s.renderTemplate(w, "login.html", loginViewData{baseViewData: baseViewData{ErrorMessage: "Invalid credentials. Try again."}})
		return
	}

	s.auth.setSessionCookie(w, email)
	http.Redirect(w, r, "/admin/presets", http.StatusSeeOther)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleAdminPresetsForm(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List()
	if err != nil {
		http.Error(w, "failed to load presets", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "admin_presets.html", presetsViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Presets: all,
	})
}

func (s *server) handleAdminPresetsCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	preset, err := parsePresetForm(r)
	if err != nil {
		http.Redirect(w, r, "/admin/presets?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if _, err := s.store.Create(preset); err != nil {
		http.Error(w, "failed to create preset", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/presets?success=Preset+created", http.StatusSeeOther)
}

func (s *server) handleAdminPresetsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid preset id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	preset, err := parsePresetForm(r)
	if err != nil {
		http.Redirect(w, r, "/admin/presets?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	preset.ID = id

	if err := s.store.Update(preset); err != nil {
		if errors.Is(err, presets.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to update preset", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/presets?success=Preset+updated", http.StatusSeeOther)
}

// parsePresetForm reads a preset's name, notes, active flag, and its
// scenario as JSON. The scenario must pass engine validation so a bad
// preset can never be stored.
func parsePresetForm(r *http.Request) (presets.Preset, error) {
	preset := presets.Preset{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Notes:  strings.TrimSpace(r.FormValue("notes")),
		Active: r.FormValue("active") == "1",
	}

	if preset.Name == "" {
		return preset, fmt.Errorf("name is required")
	}

	raw := strings.TrimSpace(r.FormValue("params_json"))
	if raw == "" {
		return preset, fmt.Errorf("params_json is required")
	}
	if err := json.Unmarshal([]byte(raw), &preset.Scenario); err != nil {
		return preset, fmt.Errorf("params_json is not valid JSON")
	}
	if err := lcoe.Validate(preset.Scenario.Project, preset.Scenario.Costs); err != nil {
		return preset, err
	}

	return preset, nil
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

// adminMiddleware guards only the preset admin; the calculator itself
// is public.
func (s *server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/admin") {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
