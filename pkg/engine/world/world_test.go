package world

import (
	"testing"
)

func TestVec_Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	if got := a.Add(b); got != V2(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != V2(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := b.Mul(3); got != V2(3, -6) {
		t.Errorf("Mul = %v, want (3, -6)", got)
	}
	if got := b.Abs(); got != V2(1, 2) {
		t.Errorf("Abs = %v, want (1, 2)", got)
	}
	if got := a.DistSq(V2(0, 0)); got != 25 {
		t.Errorf("DistSq = %d, want 25", got)
	}
	if got := a.Chebyshev(b); got != 6 {
		t.Errorf("Chebyshev = %d, want 6", got)
	}
}

func TestVec_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add of 2D and 3D vectors did not panic")
		}
	}()
	V2(1, 1).Add(V3(1, 1, 1))
}

func TestVec_Less(t *testing.T) {
	cases := []struct {
		a, b Vec
		want bool
	}{
		{V2(0, 5), V2(1, 0), true},
		{V2(1, 0), V2(0, 5), false},
		{V2(1, 1), V2(1, 2), true},
		{V2(1, 1), V2(1, 1), false},
		{V3(0, 0, 1), V3(0, 1, 0), true},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestVec_WithinAndBoundary(t *testing.T) {
	size := V2(5, 4)
	if !V2(0, 0).Within(size) || !V2(4, 3).Within(size) {
		t.Error("corner cells should be within size")
	}
	if V2(5, 0).Within(size) || V2(-1, 2).Within(size) {
		t.Error("out of range cells reported within size")
	}
	if !V2(0, 2).OnBoundary(size) || !V2(2, 3).OnBoundary(size) {
		t.Error("edge cells should be on boundary")
	}
	if V2(2, 2).OnBoundary(size) {
		t.Error("interior cell reported on boundary")
	}
	if V2(7, 7).OnBoundary(size) {
		t.Error("outside cell reported on boundary")
	}
}

func TestCells_LexicographicOrder(t *testing.T) {
	cells := Cells(V3(2, 3, 2))
	if len(cells) != 12 {
		t.Fatalf("len(Cells) = %d, want 12", len(cells))
	}
	for i := 1; i < len(cells); i++ {
		if !cells[i-1].Less(cells[i]) {
			t.Fatalf("cells out of order at %d: %v then %v", i, cells[i-1], cells[i])
		}
	}
	if cells[0] != V3(0, 0, 0) || cells[11] != V3(1, 2, 1) {
		t.Errorf("first/last = %v/%v, want (0, 0, 0)/(1, 2, 1)", cells[0], cells[11])
	}
}

func TestCells_EmptyRegion(t *testing.T) {
	if got := Cells(V2(0, 3)); len(got) != 0 {
		t.Errorf("Cells of empty region = %v, want none", got)
	}
}

func TestUnits(t *testing.T) {
	for _, dim := range []int{2, 3} {
		units := Units(dim)
		if len(units) != 2*dim {
			t.Errorf("len(Units(%d)) = %d, want %d", dim, len(units), 2*dim)
		}
		sum := Splat(dim, 0)
		for _, u := range units {
			if !IsUnit(u) {
				t.Errorf("%v is not a unit offset", u)
			}
			if DirectionName(u) == "Unknown" {
				t.Errorf("DirectionName(%v) = Unknown", u)
			}
			sum = sum.Add(u)
		}
		if !sum.IsZero() {
			t.Errorf("units of dim %d are not symmetric, sum = %v", dim, sum)
		}
	}
}

func TestIndex_Unique(t *testing.T) {
	size := V3(3, 2, 4)
	seen := make(map[int]bool)
	ForEachCell(size, func(c Vec) {
		idx := c.Index(size)
		if idx < 0 || idx >= size.Volume() {
			t.Fatalf("Index(%v) = %d out of range", c, idx)
		}
		if seen[idx] {
			t.Fatalf("Index(%v) = %d already used", c, idx)
		}
		seen[idx] = true
	})
}

func TestForEachInBox(t *testing.T) {
	n := 0
	ForEachInBox(V2(-1, 2), V2(1, 3), func(c Vec) {
		n++
	})
	if n != 6 {
		t.Errorf("box visited %d cells, want 6", n)
	}
}
