package game

import (
	"github.com/katalvlaran/zk2048/r1cs"
)

// Restore scatters the four lines back into a 16-cell board, applying the
// exact inverse of ChooseDirection's permutation for each direction.
//
// Each board cell is one one-hot selection: with d = (up, down, left, right),
//
//	board[4r+c] = up·lines[c][r] + down·lines[c][3−r] +
//	              left·lines[r][c] + right·lines[r][3−c]
//
// Restore assumes the direction wires were already pinned one-hot by
// ChooseDirection on the same system and does not re-constrain them.
func Restore(cs *r1cs.System, lines [][]*r1cs.Num, direction []*r1cs.Num) ([]*r1cs.Num, error) {
	// 1) Shape checks
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	if err := validateDirection(direction); err != nil {
		return nil, err
	}

	// 2) One inverse selection per board cell
	board := make([]*r1cs.Num, BoardSize)
	var err error
	for r := 0; r < BoardSide; r++ {
		for c := 0; c < BoardSide; c++ {
			quad := []*r1cs.Num{
				lines[c][r],             // up
				lines[c][BoardSide-1-r], // down
				lines[r][c],             // left
				lines[r][BoardSide-1-c], // right
			}
			board[BoardSide*r+c], err = cs.ProductSum(quad, direction)
			if err != nil {
				return nil, err
			}
		}
	}

	return board, nil
}
