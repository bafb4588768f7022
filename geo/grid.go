package geo

import (
	"iter"

	"deedles.dev/xiter"
)

// Grid fills out with xCount*yCount equally spaced samples taken on
// the floor of b, arranged in a grid. Samples are laid out
// row after row from south to north, each row running from west to
// east, and the corners of b are always included. In other words,
//
//	out := make([]geo.Geographic, 6)
//	b.Grid(out, 3, 2)
//
// will produce
//
//	3 - 4 - 5   north
//	|   |   |
//	0 - 1 - 2   south
//
// Both counts must be greater than one and out must have room for all
// of the samples. Nothing is written if either condition is violated.
func (b Bounds) Grid(out []Geographic, xCount, yCount int) {
	Contract(xCount > 1, "grid", "x count %v is less than 2", xCount)
	Contract(yCount > 1, "grid", "y count %v is less than 2", yCount)
	Contract(xCount <= len(out)/yCount, "grid", "output of length %v cannot hold %v by %v samples", len(out), xCount, yCount)

	for i, p := range xiter.Enumerate(b.Gridded(xCount, yCount)) {
		out[i] = p
	}
}

// Gridded is the same as [Bounds.Grid] except that it yields the
// samples from an iterator instead of inserting them into a slice.
func (b Bounds) Gridded(xCount, yCount int) iter.Seq[Geographic] {
	Contract(xCount > 1, "grid", "x count %v is less than 2", xCount)
	Contract(yCount > 1, "grid", "y count %v is less than 2", yCount)

	return func(yield func(Geographic) bool) {
		xLast, yLast := float64(xCount-1), float64(yCount-1)

		for y := range yCount {
			v := float64(y) / yLast
			for x := range xCount {
				if !yield(b.Sample(float64(x)/xLast, v, 0)) {
					return
				}
			}
		}
	}
}
