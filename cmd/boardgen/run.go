package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ChicagoDave/boardgen/pkg/analytics"
	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/config"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
	"github.com/ChicagoDave/boardgen/pkg/optimize"
	"github.com/ChicagoDave/boardgen/pkg/scene2d"
	"github.com/ChicagoDave/boardgen/pkg/search"
	"github.com/ChicagoDave/boardgen/pkg/validation"
)

type generateOptions struct {
	seed               int64
	workers            int
	numberIterations   int
	resourceIterations int
	json               bool

	seedSet, workersSet, numbersSet, resourcesSet bool
}

// generatedBoard is the JSON form of a finished board. The score command
// reads the same shape back.
type generatedBoard struct {
	ID         string             `json:"id"`
	Seed       int64              `json:"seed"`
	Catalog    board.Catalog      `json:"catalog"`
	Numbers    board.Numbers      `json:"numbers"`
	Resources  board.Resources    `json:"resources"`
	Summary    *analytics.Summary `json:"summary,omitempty"`
	Validation *validation.Report `json:"validation,omitempty"`
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadConfig loads board.yaml from the project. An empty project path
// selects the standard board.
func loadConfig(projectPath string) (*config.Config, error) {
	if projectPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadAndValidate loads the config and runs config validation.
func loadAndValidate(projectPath string) (*config.Config, *validation.Report, error) {
	cfg, err := loadConfig(projectPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, validation.ValidateConfig(cfg), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func (o generateOptions) apply(cfg *config.Config) {
	if o.seedSet {
		cfg.Seed = o.seed
	}
	if o.workersSet {
		cfg.Workers = o.workers
	}
	if o.numbersSet {
		cfg.Iterations.Numbers = o.numberIterations
	}
	if o.resourcesSet {
		cfg.Iterations.Resources = o.resourceIterations
	}
}

func runGenerate(ctx context.Context, projectPath string, opts generateOptions) error {
	cfg, err := loadConfig(projectPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)

	report := validation.ValidateConfig(cfg)
	if !report.Valid {
		printValidationReport(report)
		return report.Err()
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	slog.Info("generating board",
		"seed", cfg.Seed,
		"workers", cfg.Workers,
		"number_iterations", cfg.Iterations.Numbers,
		"resource_iterations", cfg.Iterations.Resources)

	out, c, err := generate(ctx, cfg, report)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(out)
	}

	fmt.Printf("Board %s (seed %d)\n\n", out.ID, out.Seed)
	fmt.Print(scene2d.Assemble2D(c, out.Numbers, out.Resources).Text())
	fmt.Println()
	printSummary(out.Summary, cfg.Iterations)
	if len(out.Validation.Warnings) > 0 {
		fmt.Println()
		printValidationReport(out.Validation)
	}
	return nil
}

// generate runs both optimizer stages on a validated config. The board
// findings are merged into report, which becomes the board's validation.
func generate(ctx context.Context, cfg *config.Config, report *validation.Report) (*generatedBoard, *board.Context, error) {
	c, err := board.NewContext(hexgrid.New(), board.StandardNumbers, cfg.Catalog())
	if err != nil {
		return nil, nil, err
	}

	nums, err := optimize.PlaceNumbers(ctx, c, search.Params{
		Iterations: cfg.Iterations.Numbers,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return nil, nil, err
	}
	res, err := optimize.PlaceResources(ctx, c, nums.Numbers, search.Params{
		Iterations: cfg.Iterations.Resources,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return nil, nil, err
	}

	summary, boardReport, err := analytics.Summarize(c, nums.Numbers, res.Resources)
	if err != nil {
		return nil, nil, err
	}
	report.Merge(boardReport)

	return &generatedBoard{
		ID:         uuid.New().String(),
		Seed:       cfg.Seed,
		Catalog:    c.Catalog,
		Numbers:    nums.Numbers,
		Resources:  res.Resources,
		Summary:    summary,
		Validation: report,
	}, c, nil
}

func runScore(path string) error {
	in, err := readBoard(path)
	if err != nil {
		return err
	}

	report := validation.ValidateCatalog(in.Catalog)
	if !report.Valid {
		printValidationReport(report)
		return report.Err()
	}

	c, err := scoreBoard(in, report)
	if err != nil {
		return err
	}

	fmt.Print(scene2d.Assemble2D(c, in.Numbers, in.Resources).Text())
	fmt.Println()
	printSummary(in.Summary, config.Iterations{})
	fmt.Println()
	printValidationReport(in.Validation)
	return nil
}

// readBoard decodes a board written by generate --json. A board without a
// catalog is read with the default one.
func readBoard(path string) (*generatedBoard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	var in generatedBoard
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing board JSON: %w", err)
	}
	if len(in.Catalog) == 0 {
		in.Catalog = board.DefaultCatalog()
	}
	return &in, nil
}

// scoreBoard recomputes the summary of a decoded board, replacing whatever
// summary and validation the file carried. The numbers must be a
// permutation of the standard set.
func scoreBoard(in *generatedBoard, report *validation.Report) (*board.Context, error) {
	c, err := board.NewContext(hexgrid.New(), board.StandardNumbers, in.Catalog)
	if err != nil {
		return nil, err
	}
	if _, err := c.NumberValues(in.Numbers); err != nil {
		return nil, err
	}

	summary, boardReport, err := analytics.Summarize(c, in.Numbers, in.Resources)
	if err != nil {
		return nil, err
	}
	report.Merge(boardReport)

	in.Summary = summary
	in.Validation = report
	return c, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
