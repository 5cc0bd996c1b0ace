package game

import (
	"github.com/katalvlaran/zk2048/r1cs"
)

// comparatorPairs is the fixed six-comparator network applied to each line.
// One pass moves the first non-zero cell to position 0, the next to 1, and
// so on; because the only reordering rule is "if the left cell is zero,
// swap", non-zero cells never pass each other and the compaction is stable.
var comparatorPairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// SortByZero stably compacts every line: non-zero cells keep their relative
// order at the low indices, zeros collect at the tail.
//
// Each comparator is a conditional swap gated by a zero test on its left
// cell: five constraints (two for the zero test, one boolean, two for the
// swap), all independent of the witness.
func SortByZero(cs *r1cs.System, lines [][]*r1cs.Num) ([][]*r1cs.Num, error) {
	// 1) Shape check
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	// swap returns (b, a) iff a is zero, and (a, b) otherwise.
	swap := func(a, b *r1cs.Num) (*r1cs.Num, *r1cs.Num) {
		bit := cs.IsZeroBit(a)

		return cs.CondReverse(a, b, bit)
	}

	// 2) Run the network on each line
	sorted := make([][]*r1cs.Num, LineCount)
	for i, line := range lines {
		cells := []*r1cs.Num{line[0], line[1], line[2], line[3]}
		for _, p := range comparatorPairs {
			cells[p[0]], cells[p[1]] = swap(cells[p[0]], cells[p[1]])
		}
		sorted[i] = cells
	}

	return sorted, nil
}
