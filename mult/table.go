package mult

import (
	"fmt"

	"github.com/f3rmion/bilinear/group"
)

// tableSize is the number of odd multiples held by a lookup table,
// matching the windowed-NAF width of [WNAFWidth]: 2^{width-2} entries.
const tableSize = 8

// LookupTable holds the first eight odd multiples {A, 3A, 5A, ..., 15A}
// of a base element A. It is built once per base and never mutated
// afterwards, so a table may be shared across goroutines and reused for
// any number of multiplications against the same base.
type LookupTable struct {
	entries [tableSize]group.Point
}

// NewLookupTable precomputes the odd multiples of base: one doubling
// produces 2A, then seven successive additions produce 3A through 15A.
func NewLookupTable(g group.Group, base group.Point) *LookupTable {
	var t LookupTable
	double := g.NewPoint().Double(base)
	t.entries[0] = g.NewPoint().Set(base)
	for i := 1; i < tableSize; i++ {
		t.entries[i] = g.NewPoint().Add(t.entries[i-1], double)
	}
	return &t
}

// Select returns the table entry holding x*A. x must be odd and in
// [1, 15]; any other value is a programming defect (the windowed-NAF
// encoder only emits digits in that range) and panics. The returned
// point is shared table state and must not be mutated.
func (t *LookupTable) Select(x int) group.Point {
	if x&1 != 1 || x < 1 || x >= 2*tableSize {
		panic(fmt.Sprintf("mult: lookup table index %d not an odd value in [1, 15]", x))
	}
	return t.entries[x/2]
}
