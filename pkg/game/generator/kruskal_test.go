package generator

import (
	"math/rand"
	"testing"

	"labyrinth/pkg/engine/maze"
	"labyrinth/pkg/engine/world"
)

// countEdges returns the number of axis-adjacent pairs of open cells.
func countEdges(m *maze.Maze) int {
	edges := 0
	m.ForEachOpen(func(c world.Vec) {
		for axis := 0; axis < m.Dim(); axis++ {
			if m.IsOpen(c.With(axis, c.At(axis)+1)) {
				edges++
			}
		}
	})
	return edges
}

func TestKruskalGenerate_PerfectMazeIsTree(t *testing.T) {
	sizes := []world.Vec{world.V2(11, 11), world.V2(21, 9), world.V3(7, 5, 7)}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Kruskal{Size: size, Percent: 100, Scale: 1}.Generate(rng)

			open := len(m.OpenCells())
			if got := len(m.ComputeZones(maze.Any)); got != 1 {
				t.Errorf("size %v seed %d: %d zones, want 1", size, seed, got)
			}
			if edges := countEdges(m); edges != open-1 {
				t.Errorf("size %v seed %d: %d edges for %d open cells, want %d (tree)", size, seed, edges, open, open-1)
			}
		}
	}
}

func TestKruskalGenerate_LoopsStayConnected(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, percent := range []int{0, 20, 50, 80} {
		m := Kruskal{Size: world.V2(21, 21), Percent: percent, Scale: 1}.Generate(rng)
		if got := len(m.ComputeZones(maze.Any)); got != 1 {
			t.Errorf("percent %d: %d zones, want 1", percent, got)
		}
	}
}

func TestKruskalGenerate_LowerPercentOpensMore(t *testing.T) {
	perfect := Kruskal{Size: world.V2(21, 21), Percent: 100}.Generate(rand.New(rand.NewSource(3)))
	braided := Kruskal{Size: world.V2(21, 21), Percent: 20}.Generate(rand.New(rand.NewSource(3)))

	if len(braided.OpenCells()) <= len(perfect.OpenCells()) {
		t.Errorf("percent 20 has %d open cells, percent 100 has %d; want more at 20",
			len(braided.OpenCells()), len(perfect.OpenCells()))
	}
	open := len(braided.OpenCells())
	if edges := countEdges(braided); edges <= open-1 {
		t.Errorf("percent 20: %d edges for %d open cells, want loops", edges, open)
	}
}

func TestKruskalGenerate_ZeroPercentOpensEveryPartition(t *testing.T) {
	size := world.V2(9, 7)
	m := Kruskal{Size: size, Percent: 0}.Generate(rand.New(rand.NewSource(1)))
	world.ForEachCell(size, func(c world.Vec) {
		even := 0
		for axis := 0; axis < c.Dim(); axis++ {
			if c.At(axis)%2 == 0 {
				even++
			}
		}
		wantWall := c.OnBoundary(size) || even >= 2
		if m.IsWall(c) != wantWall {
			t.Errorf("cell %v wall=%v, want %v", c, m.IsWall(c), wantWall)
		}
	})
}

func TestKruskalGenerate_BoundaryWalled(t *testing.T) {
	size := world.V3(5, 3, 7)
	m := Kruskal{Size: size, Percent: 30}.Generate(rand.New(rand.NewSource(4)))
	world.ForEachCell(size, func(c world.Vec) {
		if c.OnBoundary(size) && !m.IsWall(c) {
			t.Errorf("boundary cell %v is open", c)
		}
	})
}

func TestKruskalGenerate_BugOffsetKeepsWallsInRange(t *testing.T) {
	size := world.V2(11, 11)
	m := Kruskal{Size: size, Percent: 100, Bug: world.V2(1, 1)}.Generate(rand.New(rand.NewSource(5)))
	for _, w := range m.Walls() {
		if !w.Within(size) {
			t.Errorf("wall %v outside region %v", w, size)
		}
	}
	if m.IsWall(world.V2(0, 0)) {
		t.Error("bug offset (1, 1) should shift every wall away from (0, 0)")
	}
	if !m.IsWall(world.V2(1, 1)) {
		t.Error("corner wall should land on (1, 1)")
	}
}

func TestKruskalGenerate_ScaleIsPassedThrough(t *testing.T) {
	m := Kruskal{Size: world.V2(5, 5), Percent: 100, Scale: 2.5}.Generate(rand.New(rand.NewSource(1)))
	if m.Scale() != 2.5 {
		t.Errorf("Scale = %v, want 2.5", m.Scale())
	}
}

func TestKruskalGenerate_ReduceAndCircle(t *testing.T) {
	m := Kruskal{Size: world.V2(11, 11), Percent: 100}.Generate(rand.New(rand.NewSource(9)))
	m.Reduce(1)
	if m.Size() != world.V2(9, 9) {
		t.Fatalf("size after Reduce(1) = %v, want (9, 9)", m.Size())
	}
	m.Circle()
	for y := 0; y < 9; y++ {
		if !m.IsWall(world.V2(0, y)) {
			t.Errorf("cell (0, %d) is open after Circle", y)
		}
	}
}

func TestKruskalGenerate_InvalidConfigPanics(t *testing.T) {
	cases := []struct {
		name string
		k    Kruskal
	}{
		{"EvenSize", Kruskal{Size: world.V2(10, 11), Percent: 50}},
		{"TooSmall", Kruskal{Size: world.V2(1, 11), Percent: 50}},
		{"NoSize", Kruskal{Percent: 50}},
		{"PercentHigh", Kruskal{Size: world.V2(11, 11), Percent: 101}},
		{"PercentLow", Kruskal{Size: world.V2(11, 11), Percent: -1}},
		{"BugDim", Kruskal{Size: world.V2(11, 11), Percent: 50, Bug: world.V3(1, 1, 1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Generate(%+v) did not panic", c.k)
				}
			}()
			c.k.Generate(rand.New(rand.NewSource(1)))
		})
	}
}

func TestDisjointSet(t *testing.T) {
	d := newDisjointSet(5)
	if !d.union(0, 1) || !d.union(2, 3) {
		t.Fatal("union of distinct groups returned false")
	}
	if d.union(1, 0) {
		t.Error("union of the same group returned true")
	}
	d.union(1, 3)
	if d.find(0) != d.find(2) {
		t.Error("0 and 2 should share a group")
	}
	if d.find(4) == d.find(0) {
		t.Error("4 should be alone")
	}
	if d.groups != 2 {
		t.Errorf("groups = %d, want 2", d.groups)
	}
}
