// Package world provides dimension-generic grid primitives.
// A Vec addresses one cell of a 2D or 3D grid; the dimension is carried at
// runtime so mazes of either kind share the same code.
package world

import (
	"fmt"
	"strings"
)

// MaxDim is the largest supported grid dimension.
const MaxDim = 3

// Vec is an integer grid vector of dimension 2 or 3.
// Vec is comparable and may be used as a map key.
type Vec struct {
	c   [MaxDim]int
	dim uint8
}

// V2 returns a 2D vector
func V2(x, y int) Vec {
	return Vec{c: [MaxDim]int{x, y, 0}, dim: 2}
}

// V3 returns a 3D vector
func V3(x, y, z int) Vec {
	return Vec{c: [MaxDim]int{x, y, z}, dim: 3}
}

// Splat returns a vector of the given dimension with every component set to n
func Splat(dim, n int) Vec {
	checkDim(dim)
	v := Vec{dim: uint8(dim)}
	for axis := 0; axis < dim; axis++ {
		v.c[axis] = n
	}
	return v
}

// FromSlice builds a vector from its components. Panics unless len(c) is 2 or 3.
func FromSlice(c []int) Vec {
	checkDim(len(c))
	v := Vec{dim: uint8(len(c))}
	copy(v.c[:], c)
	return v
}

func checkDim(dim int) {
	if dim < 2 || dim > MaxDim {
		panic(fmt.Sprintf("world: unsupported dimension %d", dim))
	}
}

// Dim returns the number of components
func (v Vec) Dim() int {
	return int(v.dim)
}

// At returns the component along axis
func (v Vec) At(axis int) int {
	return v.c[axis]
}

// With returns a copy of v with the component along axis replaced
func (v Vec) With(axis, n int) Vec {
	v.c[axis] = n
	return v
}

// Slice returns the components as a new slice
func (v Vec) Slice() []int {
	out := make([]int, v.dim)
	copy(out, v.c[:v.dim])
	return out
}

func (v Vec) same(o Vec) {
	if v.dim != o.dim {
		panic(fmt.Sprintf("world: dimension mismatch %v vs %v", v, o))
	}
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec {
	v.same(o)
	for axis := 0; axis < int(v.dim); axis++ {
		v.c[axis] += o.c[axis]
	}
	return v
}

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec {
	v.same(o)
	for axis := 0; axis < int(v.dim); axis++ {
		v.c[axis] -= o.c[axis]
	}
	return v
}

// Mul multiplies every component by n
func (v Vec) Mul(n int) Vec {
	for axis := 0; axis < int(v.dim); axis++ {
		v.c[axis] *= n
	}
	return v
}

// AddScalar adds n to every component
func (v Vec) AddScalar(n int) Vec {
	for axis := 0; axis < int(v.dim); axis++ {
		v.c[axis] += n
	}
	return v
}

// Neg returns -v
func (v Vec) Neg() Vec {
	return v.Mul(-1)
}

// Abs returns v with every component made non-negative
func (v Vec) Abs() Vec {
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] < 0 {
			v.c[axis] = -v.c[axis]
		}
	}
	return v
}

// IsZero reports whether every component is zero
func (v Vec) IsZero() bool {
	return v.c == [MaxDim]int{}
}

// NonZero returns the number of non-zero components
func (v Vec) NonZero() int {
	n := 0
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] != 0 {
			n++
		}
	}
	return n
}

// DistSq returns the squared euclidean distance between v and o
func (v Vec) DistSq(o Vec) int {
	d := v.Sub(o)
	sum := 0
	for axis := 0; axis < int(d.dim); axis++ {
		sum += d.c[axis] * d.c[axis]
	}
	return sum
}

// Chebyshev returns the largest per-axis distance between v and o
func (v Vec) Chebyshev(o Vec) int {
	d := v.Sub(o).Abs()
	best := 0
	for axis := 0; axis < int(d.dim); axis++ {
		if d.c[axis] > best {
			best = d.c[axis]
		}
	}
	return best
}

// Less orders vectors lexicographically, first axis most significant.
// It only exists for deterministic iteration.
func (v Vec) Less(o Vec) bool {
	v.same(o)
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] != o.c[axis] {
			return v.c[axis] < o.c[axis]
		}
	}
	return false
}

// Positive reports whether every component is greater than zero
func (v Vec) Positive() bool {
	if v.dim == 0 {
		return false
	}
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] <= 0 {
			return false
		}
	}
	return true
}

// Within reports whether 0 <= v < size on every axis
func (v Vec) Within(size Vec) bool {
	v.same(size)
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] < 0 || v.c[axis] >= size.c[axis] {
			return false
		}
	}
	return true
}

// OnBoundary reports whether v lies inside size and touches an axis minimum or maximum
func (v Vec) OnBoundary(size Vec) bool {
	if !v.Within(size) {
		return false
	}
	for axis := 0; axis < int(v.dim); axis++ {
		if v.c[axis] == 0 || v.c[axis] == size.c[axis]-1 {
			return true
		}
	}
	return false
}

// Volume returns the number of cells in the region [0,v)
func (v Vec) Volume() int {
	if !v.Positive() {
		return 0
	}
	n := 1
	for axis := 0; axis < int(v.dim); axis++ {
		n *= v.c[axis]
	}
	return n
}

// Index flattens v into [0, size.Volume()) with the first axis most significant
func (v Vec) Index(size Vec) int {
	idx := 0
	for axis := 0; axis < int(v.dim); axis++ {
		idx = idx*size.c[axis] + v.c[axis]
	}
	return idx
}

func (v Vec) String() string {
	parts := make([]string, v.dim)
	for axis := 0; axis < int(v.dim); axis++ {
		parts[axis] = fmt.Sprint(v.c[axis])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
