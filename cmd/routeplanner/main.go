// Command routeplanner finds the fastest route across a small road network,
// with or without simulated traffic, and draws it as SVG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/builder"
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/geo"
	"github.com/katalvlaran/routeplanner/internal/config"
	"github.com/katalvlaran/routeplanner/internal/logging"
	"github.com/katalvlaran/routeplanner/internal/metrics"
	"github.com/katalvlaran/routeplanner/render"
	"github.com/katalvlaran/routeplanner/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals; it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "routeplanner: %v\n", err)
		return 1
	}
	logger, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		return 1
	}

	base, err := builder.Build(builder.WithCatalog(cat))
	if err != nil {
		logger.Error("invalid catalog", zap.Error(err))
		return 1
	}
	if err := builder.CheckConnected(base); err != nil {
		logger.Warn("road network is not connected", zap.Error(err))
	}

	from, to, err := resolveEndpoints(base, cfg.From, cfg.To)
	if err != nil {
		logger.Error("failed to resolve endpoints", zap.Error(err))
		return 1
	}

	var renderers render.Multi
	if cfg.RenderDir != "" {
		renderers = append(renderers, render.NewSVGRenderer(cfg.RenderDir))
	}
	if cfg.Text {
		renderers = append(renderers, render.TextRenderer{W: stdout})
	}

	var collector *metrics.Collector
	if cfg.MetricsPath != "" {
		collector = metrics.NewCollector()
	}

	opts := []scenario.Option{
		scenario.WithInput(stdin),
		scenario.WithOutput(stdout),
		scenario.WithLogger(logger),
		scenario.WithCatalog(cat),
		scenario.WithMetrics(collector),
		scenario.WithEndpoints(from, to),
	}
	if len(renderers) > 0 {
		opts = append(opts, scenario.WithRenderer(renderers))
	}
	runner, err := scenario.New(opts...)
	if err != nil {
		logger.Error("failed to initialize runner", zap.Error(err))
		return 1
	}

	if cfg.Scenario != "" {
		_, err = runner.RunSelection(cfg.Scenario)
	} else {
		err = runner.Run()
	}
	code := exitCode(err, logger)

	if collector != nil {
		if err := collector.Write(cfg.MetricsPath); err != nil {
			logger.Warn("failed to write metrics", zap.String("path", cfg.MetricsPath), zap.Error(err))
		}
	}

	return code
}

// exitCode maps a scenario error to the process exit status. Selections and
// searches that find nothing were already reported on stdout.
func exitCode(err error, logger *zap.Logger) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, scenario.ErrInvalidSelection),
		errors.Is(err, astar.ErrNoPathFound),
		errors.Is(err, astar.ErrUnknownLocation):
		logger.Info("scenario finished without a route", zap.Error(err))
		return 0
	default:
		logger.Error("scenario failed", zap.Error(err))
		return 1
	}
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	return catalog.Load(path)
}

// resolveEndpoints turns "x,y" arguments into the nearest location ID.
// Plain IDs pass through untouched; the search reports unknown ones.
func resolveEndpoints(g *core.Graph, from, to string) (string, string, error) {
	if !geo.LooksLikePoint(from) && !geo.LooksLikePoint(to) {
		return from, to, nil
	}
	idx, err := geo.NewIndex(g)
	if err != nil {
		return "", "", err
	}
	resolve := func(s string) (string, error) {
		if !geo.LooksLikePoint(s) {
			return s, nil
		}
		p, err := geo.ParsePoint(s)
		if err != nil {
			return "", err
		}
		id, _, err := idx.Nearest(p)
		return id, pkgerrors.Wrapf(err, "nearest location to %s", s)
	}

	if from, err = resolve(from); err != nil {
		return "", "", err
	}
	if to, err = resolve(to); err != nil {
		return "", "", err
	}

	return from, to, nil
}
