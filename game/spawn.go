package game

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// SpawnTile writes a new 2 or 4 into one verifiably-chosen empty cell of the
// post-move board, and returns the board unchanged when no empty cell exists
// or when moveable is 0 (the move changed nothing).
//
// The selection never branches at runtime:
//
//  1. flipᵢ = [cellᵢ == 0] marks the empty cells.
//  2. An inclusive prefix sum ranks them: candᵢ is the 1-based rank of cell
//     i among the empty cells when cell i is empty, and 0 otherwise.
//  3. position = (n mod m) + 1 picks a rank, enforced as
//     quotient·m = n + 1 − position, where m is the empty-cell count and n
//     the pseudo-random source.
//  4. bᵢ = [candᵢ == position] with Σ bᵢ = 1 pins exactly one cell.
//  5. newᵢ = oldᵢ + value·bᵢ, with value ∈ {2, 4} from the parity of n and
//     gated by both the has-empty flag and moveable.
//
// Full boards would leave the division without a witness, so the has-empty
// flag g substitutes m := 1 and cand₀ := 1 through rows of the shape
// g·x = t + g − 1; the gated value is then 0 and nothing is written, which
// keeps terminal states satisfiable.
func SpawnTile(cs *r1cs.System, board []*r1cs.Num, moveable *r1cs.Num) ([]*r1cs.Num, error) {
	// 1) Shape check
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	var one, two fr.Element
	one.SetOne()
	two.SetUint64(2)

	// 2) Empty-cell flags
	flips := make([]*r1cs.Num, BoardSize)
	for i, cell := range board {
		flips[i] = cs.IsZero(cell)
	}

	// 3) Inclusive prefix-sum ranks and the empty-cell count
	candidates := make([]*r1cs.Num, BoardSize)
	count := cs.Zero()
	for i := range board {
		count = cs.Add(count, flips[i])
		candidates[i] = cs.Mul(count, flips[i])
	}

	// 4) g = [count ≠ 0]; substitute m := 1 and cand₀ := 1 on full boards
	hasEmpty := cs.IsNotZero(count)
	m := substituteOnFull(cs, hasEmpty, count)
	candidates[0] = substituteOnFull(cs, hasEmpty, candidates[0])

	// 5) Pseudo-random source: the sum of the old board cells.
	// TODO: replace with an in-circuit hash of (board, direction, step index, nonce).
	n := board[0]
	for _, cell := range board[1:] {
		n = cs.Add(n, cell)
	}

	// 6) position = (n mod m) + 1, via quotient·m = n + 1 − position
	var nBig, mBig, quotientBig, remainderBig big.Int
	nVal, mVal := n.Value(), m.Value()
	nVal.BigInt(&nBig)
	mVal.BigInt(&mBig)
	quotientBig.DivMod(&nBig, &mBig, &remainderBig)

	var quotientVal, positionVal fr.Element
	quotientVal.SetBigInt(&quotientBig)
	positionVal.SetBigInt(&remainderBig)
	positionVal.Add(&positionVal, &one)

	quotient := cs.NewNum(quotientVal)
	position := cs.NewNum(positionVal)
	cs.Enforce(
		r1cs.LC().Add(quotient.Variable()),
		r1cs.LC().Add(m.Variable()),
		r1cs.LC().Add(n.Variable()).AddConstant(one).Sub(position.Variable()),
	)

	// 7) value = 2·((n mod 2) + 1) ∈ {2, 4}
	twoNum := cs.NewNum(two)
	cs.Enforce(
		r1cs.LC(), r1cs.LC(),
		r1cs.LC().Add(twoNum.Variable()).SubConstant(two),
	)

	var twoBig, parityQuotientBig, parityBig big.Int
	twoBig.SetUint64(2)
	parityQuotientBig.DivMod(&nBig, &twoBig, &parityBig)

	var parityQuotientVal, parityVal, valueVal fr.Element
	parityQuotientVal.SetBigInt(&parityQuotientBig)
	parityVal.SetBigInt(&parityBig)
	valueVal.Add(&parityVal, &one)
	valueVal.Mul(&valueVal, &two)

	parityQuotient := cs.NewNum(parityQuotientVal)
	parity := cs.NewNum(parityVal)
	cs.Enforce(
		r1cs.LC().Add(parity.Variable()),
		r1cs.LC().Add(parity.Variable()).SubConstant(one),
		r1cs.LC(),
	)
	cs.Enforce(
		r1cs.LC().Add(twoNum.Variable()),
		r1cs.LC().Add(parityQuotient.Variable()),
		r1cs.LC().Add(n.Variable()).Sub(parity.Variable()),
	)

	value := cs.NewNum(valueVal)
	cs.Enforce(
		r1cs.LC().Add(parity.Variable()).AddConstant(one),
		r1cs.LC().AddConstant(two),
		r1cs.LC().Add(value.Variable()),
	)

	// 8) Gate the value: zero when the board is full or the move was a no-op
	gated := cs.Mul(value, hasEmpty)
	gated = cs.Mul(gated, moveable)

	// 9) One-hot over the ranks: exactly one cell matches position
	bits := make([]*r1cs.Num, BoardSize)
	for i := range candidates {
		diff := cs.Sub(candidates[i], position)
		bits[i] = cs.IsZero(diff)
	}
	bitSum, err := cs.Sum(bits)
	if err != nil {
		return nil, err
	}
	cs.Enforce(
		r1cs.LC(), r1cs.LC(),
		r1cs.LC().Add(bitSum.Variable()).SubConstant(one),
	)

	// 10) Write-back
	newBoard := make([]*r1cs.Num, BoardSize)
	for i := range board {
		written := cs.Mul(gated, bits[i])
		newBoard[i] = cs.Add(written, board[i])
	}

	return newBoard, nil
}

// substituteOnFull returns t with g·x = t + g − 1, so t equals x when g is 1
// and 1 when g is 0. g must be boolean.
func substituteOnFull(cs *r1cs.System, g, x *r1cs.Num) *r1cs.Num {
	var one, tVal fr.Element
	one.SetOne()
	gVal := g.Value()
	if gVal.IsZero() {
		tVal.SetOne()
	} else {
		tVal = x.Value()
	}

	t := cs.NewNum(tVal)
	cs.Enforce(
		r1cs.LC().Add(g.Variable()),
		r1cs.LC().Add(x.Variable()),
		r1cs.LC().Add(t.Variable()).Add(g.Variable()).SubConstant(one),
	)

	return t
}
