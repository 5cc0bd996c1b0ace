package game_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zk2048/game"
	"github.com/katalvlaran/zk2048/r1cs"
)

// fe builds a field element from a small integer.
func fe(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)

	return e
}

// cells converts a literal board or line to field elements.
func cells(vs ...uint64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}

	return out
}

// allocBoard allocates a literal 16-cell board, failing the test on shape errors.
func allocBoard(t *testing.T, cs *r1cs.System, vs ...uint64) []*r1cs.Num {
	t.Helper()

	board, err := game.AllocBoard(cs, cells(vs...))
	require.NoError(t, err)

	return board
}

// allocLine allocates a literal 4-cell line.
func allocLine(cs *r1cs.System, vs ...uint64) []*r1cs.Num {
	line := make([]*r1cs.Num, len(vs))
	for i, v := range vs {
		line[i] = cs.NewNum(fe(v))
	}

	return line
}

// values extracts the witness values of a wire slice.
func values(nums []*r1cs.Num) []fr.Element {
	out := make([]fr.Element, len(nums))
	for i, n := range nums {
		out[i] = n.Value()
	}

	return out
}

// lineValues extracts the witness values of a 4×4 line set.
func lineValues(lines [][]*r1cs.Num) [][]fr.Element {
	out := make([][]fr.Element, len(lines))
	for i, line := range lines {
		out[i] = values(line)
	}

	return out
}

// boardSum adds up a board's witness values.
func boardSum(board []*r1cs.Num) fr.Element {
	var sum fr.Element
	for _, cell := range board {
		v := cell.Value()
		sum.Add(&sum, &v)
	}

	return sum
}
