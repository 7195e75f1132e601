package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/bfs"
	"github.com/katalvlaran/routeplanner/builder"
	"github.com/katalvlaran/routeplanner/core"
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Build()
	require.NoError(t, err)

	return g
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(network(t), "A")
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "D", "C", "E", "G", "F", "H"}, res.Order)
	require.Equal(t, map[string]int{
		"A": 0, "B": 1, "D": 1, "C": 2, "E": 2, "G": 2, "F": 3, "H": 3,
	}, res.Depth)

	path, err := res.PathTo("F")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "F"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

func TestBFS_Errors(t *testing.T) {
	g := network(t)

	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, "Z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(network(t), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, res.Order)
	require.False(t, res.Reached("F"))

	_, err = res.PathTo("F")
	require.Error(t, err)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	skipB := func(_, nbr string) bool { return nbr != "B" }
	res, err := bfs.BFS(network(t), "A", bfs.WithFilterNeighbor(skipB))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "C", "G", "E", "F", "H"}, res.Order)
	require.False(t, res.Reached("B"))
}

func TestBFS_HooksAndCancellation(t *testing.T) {
	g := network(t)

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
