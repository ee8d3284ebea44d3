package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
)

// Kruskal generates mazes by randomized Kruskal over a coarse grid.
// Coarse cells sit at the fine cells whose coordinates are all odd; the fine
// cells between two coarse cells are partition walls that may be torn down.
type Kruskal struct {
	Size    world.Vec // odd and at least 3 on every axis
	Percent int       // share of loop-closing walls kept solid, 0..100
	Bug     world.Vec // translation applied to every generated wall; zero value means none
	Scale   float64   // world units per cell, passed through to the maze
}

// Name returns the name of this generator
func (k Kruskal) Name() string {
	return "Randomized Kruskal"
}

func (k Kruskal) validate() {
	if k.Size.Dim() == 0 {
		panic("kruskal: size is not set")
	}
	for axis := 0; axis < k.Size.Dim(); axis++ {
		n := k.Size.At(axis)
		if n < 3 || n%2 == 0 {
			panic(fmt.Sprintf("kruskal: size %v must be odd and at least 3 on every axis", k.Size))
		}
	}
	if k.Percent < 0 || k.Percent > 100 {
		panic(fmt.Sprintf("kruskal: percent %d outside 0..100", k.Percent))
	}
	if k.Bug.Dim() != 0 && k.Bug.Dim() != k.Size.Dim() {
		panic(fmt.Sprintf("kruskal: bug %v does not match size %v", k.Bug, k.Size))
	}
}

// isCoarse reports whether every coordinate of c is odd
func isCoarse(c world.Vec) bool {
	for axis := 0; axis < c.Dim(); axis++ {
		if c.At(axis)%2 == 0 {
			return false
		}
	}
	return true
}

// partitionAxis returns the single axis on which an interior cell has an even
// coordinate, or -1 if the cell is not a partition wall
func partitionAxis(c, size world.Vec) int {
	axis := -1
	for a := 0; a < c.Dim(); a++ {
		n := c.At(a)
		if n <= 0 || n >= size.At(a)-1 {
			return -1
		}
		if n%2 == 0 {
			if axis != -1 {
				return -1
			}
			axis = a
		}
	}
	return axis
}

// Generate builds a fully connected maze. At Percent 100 the open cells form
// a spanning tree; lower values tear down loop-closing walls as well.
// Panics if the configuration is invalid.
func (k Kruskal) Generate(rng *rand.Rand) *maze.Maze {
	k.validate()

	dim := k.Size.Dim()
	coarseSize := k.Size.AddScalar(-1)
	for axis := 0; axis < dim; axis++ {
		coarseSize = coarseSize.With(axis, coarseSize.At(axis)/2)
	}
	coarseIndex := func(c world.Vec) int {
		q := c.AddScalar(-1)
		for axis := 0; axis < dim; axis++ {
			q = q.With(axis, q.At(axis)/2)
		}
		return q.Index(coarseSize)
	}

	open := mapset.New[world.Vec]()
	type partition struct {
		cell world.Vec
		axis int
	}
	var candidates []partition
	world.ForEachCell(k.Size, func(c world.Vec) {
		if isCoarse(c) {
			open.Put(c)
			return
		}
		if axis := partitionAxis(c, k.Size); axis != -1 {
			candidates = append(candidates, partition{cell: c, axis: axis})
		}
	})

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	groups := newDisjointSet(coarseSize.Volume())
	var redundant []world.Vec
	for _, p := range candidates {
		unit := world.Splat(dim, 0).With(p.axis, 1)
		a := coarseIndex(p.cell.Sub(unit))
		b := coarseIndex(p.cell.Add(unit))
		if groups.union(a, b) {
			open.Put(p.cell)
		} else {
			redundant = append(redundant, p.cell)
		}
	}

	// Redundant walls come out in shuffled order; keep the first share solid
	keep := (k.Percent*len(redundant) + 99) / 100
	for _, c := range redundant[keep:] {
		open.Put(c)
	}

	bug := k.Bug
	if bug.Dim() == 0 {
		bug = world.Splat(dim, 0)
	}
	m := maze.New(k.Size, k.Scale)
	world.ForEachCell(k.Size, func(c world.Vec) {
		if open.Has(c) {
			return
		}
		if w := c.Add(bug); w.Within(k.Size) {
			m.SetWall(w)
		}
	})
	return m
}
