package world

// Units returns the axis-aligned unit offsets for a dimension, ordered
// negative then positive per axis: 4 in 2D, 6 in 3D.
func Units(dim int) []Vec {
	checkDim(dim)
	units := make([]Vec, 0, 2*dim)
	for axis := 0; axis < dim; axis++ {
		units = append(units, Splat(dim, 0).With(axis, -1))
		units = append(units, Splat(dim, 0).With(axis, 1))
	}
	return units
}

// IsUnit reports whether v is one of the axis-aligned unit offsets
func IsUnit(v Vec) bool {
	if v.NonZero() != 1 {
		return false
	}
	a := v.Abs()
	for axis := 0; axis < v.Dim(); axis++ {
		if a.At(axis) > 1 {
			return false
		}
	}
	return true
}

// DirectionName returns a readable name for a unit offset.
// The first axis runs West to East, the last axis North to South and in 3D
// the middle axis Down to Up.
func DirectionName(d Vec) string {
	if !IsUnit(d) {
		return "Unknown"
	}
	last := d.Dim() - 1
	switch {
	case d.At(0) == 1:
		return "East"
	case d.At(0) == -1:
		return "West"
	case d.At(last) == 1:
		return "South"
	case d.At(last) == -1:
		return "North"
	case d.At(1) == 1:
		return "Up"
	case d.At(1) == -1:
		return "Down"
	}
	return "Unknown"
}

// Axis returns the axis a unit offset points along, or -1
func Axis(d Vec) int {
	if !IsUnit(d) {
		return -1
	}
	for axis := 0; axis < d.Dim(); axis++ {
		if d.At(axis) != 0 {
			return axis
		}
	}
	return -1
}
