// SPDX-License-Identifier: MIT
// Package traffic models synthetic congestion as a table of additive,
// non-negative delays keyed by pairs of location IDs.
//
// A Table is only consulted while a graph is being built; the builder copies
// the resolved penalty onto each edge and the table is not retained.
//
// Lookup is order-independent: an entry stored for (v,u) applies to a road
// declared as (u,v). When both orderings are present, the (u,v) entry wins.
// Entries naming pairs that are not roads of the catalog are never matched.
package traffic

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNegativePenalty indicates an attempt to store a negative delay.
var ErrNegativePenalty = errors.New("traffic: penalty must be non-negative")

// ErrEmptyLocation indicates a pair with an empty location ID.
var ErrEmptyLocation = errors.New("traffic: location ID is empty")

// Pair is an ordered pair of location IDs as written by the caller.
type Pair struct {
	From string
	To   string
}

// Entry is one row of a Table listing.
type Entry struct {
	Pair
	Penalty float64
}

// Table maps location pairs to traffic delays in minutes.
// The zero value is not usable; call NewTable.
type Table struct {
	penalties map[Pair]float64
}

// NewTable returns an empty table (no traffic anywhere).
func NewTable() *Table {
	return &Table{penalties: make(map[Pair]float64)}
}

// FromEntries builds a table from a listing, failing on the first invalid row.
func FromEntries(entries []Entry) (*Table, error) {
	t := NewTable()
	for _, e := range entries {
		if err := t.Set(e.From, e.To, e.Penalty); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Set stores the delay for (from, to), replacing any previous value for the
// same ordering.
func (t *Table) Set(from, to string, penalty float64) error {
	if from == "" || to == "" {
		return ErrEmptyLocation
	}
	if penalty < 0 {
		return fmt.Errorf("%w: %s-%s=%g", ErrNegativePenalty, from, to, penalty)
	}
	t.penalties[Pair{From: from, To: to}] = penalty

	return nil
}

// Penalty returns the delay for the road joining u and v, trying (u,v) first
// and then (v,u). Absent pairs, and a nil table, yield 0.
func (t *Table) Penalty(u, v string) float64 {
	if t == nil {
		return 0
	}
	if p, ok := t.penalties[Pair{From: u, To: v}]; ok {
		return p
	}

	return t.penalties[Pair{From: v, To: u}]
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.penalties)
}

// Entries lists the table sorted by (From, To) for stable printing.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.penalties))
	for p, v := range t.penalties {
		out = append(out, Entry{Pair: p, Penalty: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
