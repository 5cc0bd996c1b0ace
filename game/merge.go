package game

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// MergeLines merges equal adjacent pairs within each compacted line, left
// to right, doubling the survivor and zeroing the consumed cell.
//
// The three pair tests (0,1), (1,2), (2,3) run sequentially and the updated
// right cell feeds the next test as its left cell. That chaining is what
// makes merges single-use: once a cell is zeroed its next comparison is
// against 0, which never equals a tile value, so 2 2 2 2 becomes 4 0 4 0
// rather than 8 0 0 0.
//
// Per pair, with bit = [a == b]:
//
//	a·bit = c − a   (c is 2a when equal, a otherwise)
//	b·bit = b − d   (d is 0 when equal, b otherwise)
func MergeLines(cs *r1cs.System, lines [][]*r1cs.Num) ([][]*r1cs.Num, error) {
	// 1) Shape check
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	// merge returns (2a, 0) iff a == b, and (a, b) otherwise.
	merge := func(a, b *r1cs.Num) (*r1cs.Num, *r1cs.Num) {
		bit := cs.IsEqual(a, b)

		var cVal, dVal fr.Element
		bitVal := bit.Value()
		if bitVal.IsZero() {
			cVal, dVal = a.Value(), b.Value()
		} else {
			aVal := a.Value()
			cVal.Double(&aVal)
		}
		c := cs.NewNum(cVal)
		d := cs.NewNum(dVal)

		cs.Enforce(
			r1cs.LC().Add(a.Variable()),
			r1cs.LC().Add(bit.Variable()),
			r1cs.LC().Add(c.Variable()).Sub(a.Variable()),
		)
		cs.Enforce(
			r1cs.LC().Add(b.Variable()),
			r1cs.LC().Add(bit.Variable()),
			r1cs.LC().Add(b.Variable()).Sub(d.Variable()),
		)

		return c, d
	}

	// 2) Three chained pair tests per line
	merged := make([][]*r1cs.Num, LineCount)
	for i, line := range lines {
		c0, c1 := merge(line[0], line[1])
		c1, c2 := merge(c1, line[2])
		c2, c3 := merge(c2, line[3])

		merged[i] = []*r1cs.Num{c0, c1, c2, c3}
	}

	return merged, nil
}
