package validation

import (
	"fmt"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/config"
)

// LargeBudget is the restart count above which a stage draws a warning.
const LargeBudget = 100_000

// ValidateConfig checks a parsed board config before any generation runs.
func ValidateConfig(cfg *config.Config) *Report {
	r := NewReport()

	validateIterations(cfg, r)
	validateWorkers(cfg, r)
	r.Merge(ValidateCatalog(cfg.Catalog()))

	if r.Valid {
		r.AddInfo(Result{
			Level:   LevelConfig,
			Message: fmt.Sprintf("%d+%d restarts", cfg.Iterations.Numbers, cfg.Iterations.Resources),
		})
	}
	return r
}

// ValidateCatalog checks a resource catalog on its own. Boards read back
// from JSON carry their catalog without the rest of a config.
func ValidateCatalog(catalog board.Catalog) *Report {
	r := NewReport()
	validateResources(catalog, r)
	if r.Valid {
		r.AddInfo(Result{
			Level:   LevelConfig,
			Message: fmt.Sprintf("%d resources over %d tiles", len(catalog), catalog.Total()),
		})
	}
	return r
}

func validateIterations(cfg *config.Config, r *Report) {
	stages := []struct {
		path  string
		value int
	}{
		{"iterations.numbers", cfg.Iterations.Numbers},
		{"iterations.resources", cfg.Iterations.Resources},
	}
	for _, st := range stages {
		switch {
		case st.value <= 0:
			r.AddError(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s must be greater than 0", st.path),
				Path:        st.path,
				ActualValue: st.value,
				Expected:    "> 0",
			})
		case st.value > LargeBudget:
			r.AddWarning(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s of %d restarts may run for a long time", st.path, st.value),
				Path:        st.path,
				ActualValue: st.value,
				Suggestions: []string{fmt.Sprintf("Keep budgets at or below %d unless the run is unattended", LargeBudget)},
			})
		}
	}
}

func validateWorkers(cfg *config.Config, r *Report) {
	if cfg.Workers < 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "workers must be non-negative (0 uses every CPU)",
			Path:        "workers",
			ActualValue: cfg.Workers,
			Expected:    ">= 0",
		})
	}
}

func validateResources(catalog board.Catalog, r *Report) {
	if len(catalog) == 0 {
		r.AddError(Result{
			Level:    LevelConfig,
			Message:  "resources must contain at least one entry",
			Path:     "resources",
			Expected: "at least 1 resource",
		})
		return
	}

	names := make(map[board.Resource]int)
	codes := make(map[string]int)
	positive := false
	for i, def := range catalog {
		path := fmt.Sprintf("resources[%d]", i)

		if def.Resource == "" {
			r.AddError(Result{
				Level:   LevelConfig,
				Message: fmt.Sprintf("%s: name is required", path),
				Path:    path + ".name",
			})
		} else if j, dup := names[def.Resource]; dup {
			r.AddError(Result{
				Level:        LevelConfig,
				Message:      fmt.Sprintf("%s: duplicate resource %q", path, def.Resource),
				Path:         path + ".name",
				ActualValue:  def.Resource,
				ConflictWith: fmt.Sprintf("resources[%d]", j),
			})
		} else {
			names[def.Resource] = i
		}

		switch {
		case def.Code == "":
			r.AddError(Result{
				Level:   LevelConfig,
				Message: fmt.Sprintf("%s (%s): code is required", path, def.Resource),
				Path:    path + ".code",
			})
		case len(def.Code) > 2:
			r.AddError(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s (%s): code %q is longer than 2 characters", path, def.Resource, def.Code),
				Path:        path + ".code",
				ActualValue: def.Code,
				Expected:    "1-2 characters",
				Suggestions: []string{"Codes are drawn inside a two-column grid cell"},
			})
		default:
			if j, dup := codes[def.Code]; dup {
				r.AddError(Result{
					Level:        LevelConfig,
					Message:      fmt.Sprintf("%s (%s): duplicate code %q", path, def.Resource, def.Code),
					Path:         path + ".code",
					ActualValue:  def.Code,
					ConflictWith: fmt.Sprintf("resources[%d]", j),
				})
			} else {
				codes[def.Code] = i
			}
		}

		if def.Quota < 0 {
			r.AddError(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s (%s): quota must be non-negative", path, def.Resource),
				Path:        path + ".quota",
				ActualValue: def.Quota,
				Expected:    ">= 0",
			})
		}
		if def.Expected < 0 {
			r.AddError(Result{
				Level:       LevelConfig,
				Message:     fmt.Sprintf("%s (%s): expected weight must be non-negative", path, def.Resource),
				Path:        path + ".expected",
				ActualValue: def.Expected,
				Expected:    ">= 0",
			})
		}
		if def.Expected > 0 {
			positive = true
		}
	}

	if !positive {
		r.AddError(Result{
			Level:    LevelConfig,
			Message:  "at least one resource needs a positive expected weight",
			Path:     "resources",
			Expected: "some expected > 0",
		})
	}

	producing := len(board.StandardNumbers) - 1
	if total := catalog.Total(); total != producing {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("resource quotas must sum to %d (got %d)", producing, total),
			Path:        "resources",
			ActualValue: total,
			Expected:    fmt.Sprint(producing),
			Suggestions: []string{"Every tile except the desert carries exactly one resource"},
		})
	}
}
