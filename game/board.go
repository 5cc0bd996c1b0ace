package game

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// AllocBoard allocates one wire per board cell and returns them in
// row-major order. cells must hold exactly BoardSize values.
func AllocBoard(cs *r1cs.System, cells []fr.Element) ([]*r1cs.Num, error) {
	if len(cells) != BoardSize {
		return nil, ErrBoardSize
	}

	board := make([]*r1cs.Num, BoardSize)
	for i, c := range cells {
		board[i] = cs.NewNum(c)
	}

	return board, nil
}

// AllocDirection allocates the four one-hot direction wires for a move,
// ordered (up, down, left, right). The one-hot property is asserted later
// by ChooseDirection, not here.
func AllocDirection(cs *r1cs.System, m Move) []*r1cs.Num {
	vec := m.Vector()
	direction := make([]*r1cs.Num, DirectionSize)
	for i := range vec {
		direction[i] = cs.NewNum(vec[i])
	}

	return direction
}

// validateBoard checks the 16-cell shape.
func validateBoard(board []*r1cs.Num) error {
	if len(board) != BoardSize {
		return ErrBoardSize
	}

	return nil
}

// validateDirection checks the 4-wire shape.
func validateDirection(direction []*r1cs.Num) error {
	if len(direction) != DirectionSize {
		return ErrDirectionSize
	}

	return nil
}

// validateLines checks the 4×4 shape.
func validateLines(lines [][]*r1cs.Num) error {
	if len(lines) != LineCount {
		return ErrLineShape
	}
	for _, line := range lines {
		if len(line) != LineLen {
			return ErrLineShape
		}
	}

	return nil
}
