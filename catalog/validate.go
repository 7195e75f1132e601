package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is wrapped by every Validate failure.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Validate checks the structural invariants of the network:
//   - at least one location; IDs non-empty and unique;
//   - every road joins two distinct, known locations with a positive base time;
//   - at most one road per unordered pair;
//   - scenario keys non-empty and unique; scenario delays non-negative.
//
// Scenario endpoints and delay pairs are not checked against the network:
// unknown endpoints are reported by the search, unknown delay pairs are ignored.
func (c Catalog) Validate() error {
	if len(c.Locations) == 0 {
		return fmt.Errorf("%w: no locations", ErrInvalidCatalog)
	}
	known := make(map[string]struct{}, len(c.Locations))
	for i, l := range c.Locations {
		if l.ID == "" {
			return fmt.Errorf("%w: location #%d has an empty id", ErrInvalidCatalog, i)
		}
		if _, dup := known[l.ID]; dup {
			return fmt.Errorf("%w: duplicate location %q", ErrInvalidCatalog, l.ID)
		}
		known[l.ID] = struct{}{}
	}

	seen := make(map[[2]string]struct{}, len(c.Connections))
	for i, r := range c.Connections {
		if r.From == r.To {
			return fmt.Errorf("%w: road #%d is a self-loop on %q", ErrInvalidCatalog, i, r.From)
		}
		for _, id := range []string{r.From, r.To} {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: road #%d references unknown location %q", ErrInvalidCatalog, i, id)
			}
		}
		if r.Base <= 0 {
			return fmt.Errorf("%w: road %s-%s has non-positive base time %g", ErrInvalidCatalog, r.From, r.To, r.Base)
		}
		key := pairKey(r.From, r.To)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate road %s-%s", ErrInvalidCatalog, r.From, r.To)
		}
		seen[key] = struct{}{}
	}

	keys := make(map[string]struct{}, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Key == "" {
			return fmt.Errorf("%w: scenario #%d has an empty key", ErrInvalidCatalog, i)
		}
		if _, dup := keys[s.Key]; dup {
			return fmt.Errorf("%w: duplicate scenario key %q", ErrInvalidCatalog, s.Key)
		}
		keys[s.Key] = struct{}{}
		for _, p := range s.Traffic {
			if p.Delay < 0 {
				return fmt.Errorf("%w: scenario %q has negative delay on %s-%s", ErrInvalidCatalog, s.Key, p.From, p.To)
			}
		}
	}

	return nil
}

// pairKey normalizes an unordered pair.
func pairKey(u, v string) [2]string {
	if v < u {
		u, v = v, u
	}

	return [2]string{u, v}
}
