package geo

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/routeplanner/core"
)

// ErrEmptyIndex is returned by Nearest when the index holds no locations.
var ErrEmptyIndex = errors.New("geo: index is empty")

// pointTolerance is the half-size of the box each location occupies in the R-tree.
const pointTolerance = 1e-9

// nearestCandidates is how many R-tree hits are re-ranked by exact distance.
const nearestCandidates = 4

// locationEntry wraps a vertex for R-tree storage.
type locationEntry struct {
	id    string
	point orb.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (l *locationEntry) Bounds() rtreego.Rect {
	return l.bbox
}

// Index answers nearest-location queries over the vertices of a graph.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an R-tree over every vertex of g.
func NewIndex(g *core.Graph) (*Index, error) {
	tree := rtreego.NewTree(2, 2, 8)
	ids := g.Vertices()
	for _, id := range ids {
		p, err := g.Coord(id)
		if err != nil {
			return nil, err
		}
		tree.Insert(&locationEntry{
			id:    id,
			point: p,
			bbox:  rtreego.Point{p[0], p[1]}.ToRect(pointTolerance),
		})
	}

	return &Index{tree: tree, size: len(ids)}, nil
}

// Nearest returns the ID of the location closest to p and its distance.
// Equidistant locations resolve to the smallest ID.
func (ix *Index) Nearest(p orb.Point) (string, float64, error) {
	if ix.size == 0 {
		return "", 0, ErrEmptyIndex
	}
	k := nearestCandidates
	if k > ix.size {
		k = ix.size
	}
	hits := ix.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})

	candidates := make([]*locationEntry, 0, len(hits))
	for _, h := range hits {
		if e, ok := h.(*locationEntry); ok {
			candidates = append(candidates, e)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := Distance(p, candidates[i].point), Distance(p, candidates[j].point)
		if di != dj {
			return di < dj
		}
		return candidates[i].id < candidates[j].id
	})
	if len(candidates) == 0 {
		return "", 0, ErrEmptyIndex
	}
	best := candidates[0]

	return best.id, Distance(p, best.point), nil
}
