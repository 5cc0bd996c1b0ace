package game

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// ChooseDirection reorients the board into four lines so that "slide toward
// the chosen edge" becomes "slide toward index 0" for every direction.
//
// Each output cell is a one-hot selection over four board cells: with the
// direction vector d = (up, down, left, right),
//
//	lines[i][j] = up·b[4j+i] + down·b[4(3−j)+i] + left·b[4i+j] + right·b[4i+3−j]
//
// so line i is column i read top-down (Up), column i read bottom-up (Down),
// row i read left-right (Left), or row i read right-left (Right).
//
// ChooseDirection also pins the direction vector itself: each wire is
// boolean-constrained and their sum is forced to one, so a witness carrying
// anything but exactly one active direction is unsatisfiable.
func ChooseDirection(cs *r1cs.System, board, direction []*r1cs.Num) ([][]*r1cs.Num, error) {
	// 1) Shape checks
	if err := validateBoard(board); err != nil {
		return nil, err
	}
	if err := validateDirection(direction); err != nil {
		return nil, err
	}

	// 2) Direction must be one-hot: booleans summing to one
	for _, d := range direction {
		cs.ApplyBool(d)
	}
	sum, err := cs.Sum(direction)
	if err != nil {
		return nil, err
	}
	var one fr.Element
	one.SetOne()
	cs.Enforce(r1cs.LC(), r1cs.LC(), r1cs.LC().AddConstant(one).Sub(sum.Variable()))

	// 3) One selection per (line, position)
	lines := make([][]*r1cs.Num, LineCount)
	for i := 0; i < LineCount; i++ {
		line := make([]*r1cs.Num, LineLen)
		for j := 0; j < LineLen; j++ {
			quad := []*r1cs.Num{
				board[BoardSide*j+i],               // up: column i, top-down
				board[BoardSide*(BoardSide-1-j)+i], // down: column i, bottom-up
				board[BoardSide*i+j],               // left: row i, left-right
				board[BoardSide*i+(BoardSide-1-j)], // right: row i, right-left
			}
			line[j], err = cs.ProductSum(quad, direction)
			if err != nil {
				return nil, err
			}
		}
		lines[i] = line
	}

	return lines, nil
}
