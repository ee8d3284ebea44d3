package world

// ForEachCell iterates over every cell of the region [0,size) in
// lexicographic order, calling the provided function for each
func ForEachCell(size Vec, fn func(cell Vec)) {
	if !size.Positive() {
		return
	}
	dim := size.Dim()
	cur := Splat(dim, 0)
	for {
		fn(cur)

		// Odometer increment, last axis fastest
		axis := dim - 1
		for axis >= 0 {
			cur.c[axis]++
			if cur.c[axis] < size.c[axis] {
				break
			}
			cur.c[axis] = 0
			axis--
		}
		if axis < 0 {
			return
		}
	}
}

// Cells returns every cell of the region [0,size) in lexicographic order
func Cells(size Vec) []Vec {
	cells := make([]Vec, 0, size.Volume())
	ForEachCell(size, func(cell Vec) {
		cells = append(cells, cell)
	})
	return cells
}

// ForEachInBox iterates over the cells of the inclusive box [lo,hi]
func ForEachInBox(lo, hi Vec, fn func(cell Vec)) {
	lo.same(hi)
	size := hi.Sub(lo).AddScalar(1)
	ForEachCell(size, func(off Vec) {
		fn(lo.Add(off))
	})
}

// Clamp limits every component of v to [0, size-1]
func Clamp(v, size Vec) Vec {
	v.same(size)
	for axis := 0; axis < v.Dim(); axis++ {
		if v.c[axis] < 0 {
			v.c[axis] = 0
		}
		if v.c[axis] >= size.c[axis] {
			v.c[axis] = size.c[axis] - 1
		}
	}
	return v
}
