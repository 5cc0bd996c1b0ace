package game

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// CanMove returns a wire holding 1 iff the slide changed the board: a
// per-cell equality bit between the pre-move and post-restore boards, their
// sum compared against 16, and the difference zero-tested.
//
// The resulting flag gates SpawnTile, so an ineffective move (the 2048 rule
// forbids spawning after one) leaves the board untouched while the system
// stays satisfiable.
func CanMove(cs *r1cs.System, oldBoard, restoredBoard []*r1cs.Num) (*r1cs.Num, error) {
	// 1) Shape checks
	if err := validateBoard(oldBoard); err != nil {
		return nil, err
	}
	if err := validateBoard(restoredBoard); err != nil {
		return nil, err
	}

	// 2) One equality bit per cell
	sameBits := make([]*r1cs.Num, BoardSize)
	for i := range oldBoard {
		sameBits[i] = cs.IsEqual(oldBoard[i], restoredBoard[i])
	}
	sameCount, err := cs.Sum(sameBits)
	if err != nil {
		return nil, err
	}

	// 3) Pin a wire to the constant 16
	var sixteenVal fr.Element
	sixteenVal.SetUint64(BoardSize)
	sixteen := cs.NewNum(sixteenVal)
	cs.Enforce(
		r1cs.LC(), r1cs.LC(),
		r1cs.LC().Add(sixteen.Variable()).SubConstant(sixteenVal),
	)

	// 4) moveable = [sameCount − 16 ≠ 0]
	diff := cs.Sub(sameCount, sixteen)

	return cs.IsNotZero(diff), nil
}
