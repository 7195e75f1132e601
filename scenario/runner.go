// SPDX-License-Identifier: MIT
package scenario

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/builder"
	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/internal/metrics"
	"github.com/katalvlaran/routeplanner/render"
)

const (
	banner         = "=== ROUTE PLANNING WITH A* ==="
	prompt         = "Choose an option: "
	invalidMessage = "Invalid option!"
)

var (
	// ErrInvalidSelection is returned by RunSelection for unknown keys.
	ErrInvalidSelection = stderrors.New("scenario: invalid selection")

	// ErrNoScenarios is returned by New when the catalog offers nothing to run.
	ErrNoScenarios = stderrors.New("scenario: catalog has no scenarios")

	// ErrInconsistentCost is returned when a search reports a cost that does
	// not match the sum of road times along its own path.
	ErrInconsistentCost = stderrors.New("scenario: reported cost does not match path")
)

// Outcome is what a successful run printed.
type Outcome struct {
	Scenario catalog.Scenario
	Path     []string
	Cost     float64
}

// Runner drives one menu interaction.
type Runner struct {
	in       io.Reader
	out      io.Writer
	log      *zap.Logger
	catalog  catalog.Catalog
	registry *orderedmap.OrderedMap[string, catalog.Scenario]
	renderer render.Renderer
	metrics  *metrics.Collector
	build    BuildFunc
	search   SearchFunc
	from, to string
}

// New returns a Runner over the built-in catalog unless WithCatalog says
// otherwise. Scenarios keep catalog order in the menu.
func New(opts ...Option) (*Runner, error) {
	rn := &Runner{
		in:      os.Stdin,
		out:     os.Stdout,
		log:     zap.NewNop(),
		catalog: catalog.Default(),
		build:   builder.Build,
		search:  astar.Search,
	}
	for _, opt := range opts {
		opt(rn)
	}
	if len(rn.catalog.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	rn.registry = orderedmap.New[string, catalog.Scenario]()
	for _, s := range rn.catalog.Scenarios {
		if _, dup := rn.registry.Get(s.Key); dup {
			return nil, errors.Wrapf(catalog.ErrInvalidCatalog, "duplicate scenario key %q", s.Key)
		}
		rn.registry.Set(s.Key, s)
	}

	return rn, nil
}

// Keys lists the selectable keys in menu order.
func (rn *Runner) Keys() []string {
	keys := make([]string, 0, rn.registry.Len())
	for pair := rn.registry.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Run prints the menu, reads a single selection and executes it.
// An unknown selection prints the invalid-option message and returns nil.
func (rn *Runner) Run() error {
	rn.printMenu()

	line, err := bufio.NewReader(rn.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "scenario: read selection")
	}
	key := strings.TrimSpace(line)

	_, err = rn.RunSelection(key)
	if stderrors.Is(err, ErrInvalidSelection) {
		rn.log.Info("invalid selection", zap.String("input", key))
		return nil
	}

	return err
}

// RunSelection executes the scenario registered under key without prompting.
// Unknown keys print the invalid-option message and return ErrInvalidSelection.
func (rn *Runner) RunSelection(key string) (*Outcome, error) {
	s, ok := rn.registry.Get(key)
	if !ok {
		fmt.Fprintln(rn.out, invalidMessage)
		return nil, errors.Wrapf(ErrInvalidSelection, "%q", key)
	}

	return rn.execute(s)
}

func (rn *Runner) printMenu() {
	fmt.Fprintln(rn.out, banner)
	for pair := rn.registry.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(rn.out, "%s - %s\n", pair.Key, pair.Value.Description)
	}
	fmt.Fprint(rn.out, prompt)
}

// execute builds, searches, prints and renders one scenario.
func (rn *Runner) execute(s catalog.Scenario) (*Outcome, error) {
	log := rn.log.With(zap.String("scenario", s.Label))
	fmt.Fprintf(rn.out, "\n[%s]\n", s.Label)

	from, to := s.Start, s.Destination
	if rn.from != "" {
		from = rn.from
	}
	if rn.to != "" {
		to = rn.to
	}

	tbl, err := s.Table()
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q traffic", s.Key)
	}
	g, err := rn.build(builder.WithCatalog(rn.catalog), builder.WithTraffic(tbl))
	if err != nil {
		rn.metrics.ObserveFailure(s.Label, metrics.OutcomeError)
		return nil, errors.Wrapf(err, "scenario %q build", s.Key)
	}
	log.Debug("graph built",
		zap.Int("locations", g.VertexCount()),
		zap.Int("roads", g.EdgeCount()),
		zap.Int("penalties", tbl.Len()),
		zap.Any("traffic", tbl.Entries()))

	res, err := rn.search(g, from, to)
	if err != nil {
		outcome := metrics.OutcomeError
		if stderrors.Is(err, astar.ErrNoPathFound) || stderrors.Is(err, astar.ErrUnknownLocation) {
			outcome = metrics.OutcomeNoRoute
		}
		rn.metrics.ObserveFailure(s.Label, outcome)
		fmt.Fprintf(rn.out, "No route: %v\n", err)
		return nil, errors.Wrapf(err, "scenario %q search %s->%s", s.Key, from, to)
	}

	cost, err := astar.PathCost(g, res.Path)
	if err != nil {
		rn.metrics.ObserveFailure(s.Label, metrics.OutcomeError)
		return nil, errors.Wrapf(err, "scenario %q verify", s.Key)
	}
	if cost != res.Cost {
		rn.metrics.ObserveFailure(s.Label, metrics.OutcomeError)
		return nil, errors.Wrapf(ErrInconsistentCost, "reported %g, path sums to %g", res.Cost, cost)
	}
	rn.metrics.ObserveSearch(s.Label, res.Expanded, res.Cost)

	fmt.Fprintf(rn.out, "Best path: %v\n", res.Path)
	fmt.Fprintf(rn.out, "Total time: %g min\n", res.Cost)
	log.Info("route found",
		zap.String("from", from),
		zap.String("to", to),
		zap.Strings("path", res.Path),
		zap.Float64("cost", res.Cost),
		zap.Int("expanded", res.Expanded))

	if rn.renderer != nil {
		title := s.Title
		if title == "" {
			title = s.Label
		}
		if err := rn.renderer.Render(render.NewScene(g, res.Path, title)); err != nil {
			log.Warn("render failed", zap.Error(err))
		}
	}

	return &Outcome{Scenario: s, Path: res.Path, Cost: res.Cost}, nil
}
