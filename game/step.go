package game

import (
	"github.com/katalvlaran/zk2048/r1cs"
)

// Game2048 is the step circuit: arity 16, one six-stage pipeline per
// configured move. The move list is a circuit-construction-time parameter,
// so prover and verifier synthesize identical constraint streams.
//
// An empty move list yields the identity step.
type Game2048 struct {
	moves []Move
}

// New builds a step circuit for a fixed sequence of moves.
func New(moves []Move) *Game2048 {
	return &Game2048{moves: append([]Move(nil), moves...)}
}

// Arity returns the length of the state vector: one wire per board cell.
func (g *Game2048) Arity() int { return BoardSize }

// Moves returns the configured move sequence.
func (g *Game2048) Moves() []Move { return append([]Move(nil), g.moves...) }

// Synthesize appends the constraints for every configured move and returns
// the output board wires. For each move:
//
//	board → ChooseDirection → SortByZero → MergeLines → SortByZero →
//	Restore → (CanMove gates) SpawnTile → board'
//
// The second SortByZero re-compacts the zeros that merging produced; CanMove
// compares the pre-move and post-restore boards so that a no-op move
// suppresses the spawn.
func (g *Game2048) Synthesize(cs *r1cs.System, z []*r1cs.Num) ([]*r1cs.Num, error) {
	if err := validateBoard(z); err != nil {
		return nil, err
	}

	board := z
	for _, move := range g.moves {
		direction := AllocDirection(cs, move)

		lines, err := ChooseDirection(cs, board, direction)
		if err != nil {
			return nil, err
		}

		sorted, err := SortByZero(cs, lines)
		if err != nil {
			return nil, err
		}

		merged, err := MergeLines(cs, sorted)
		if err != nil {
			return nil, err
		}

		compacted, err := SortByZero(cs, merged)
		if err != nil {
			return nil, err
		}

		restored, err := Restore(cs, compacted, direction)
		if err != nil {
			return nil, err
		}

		moveable, err := CanMove(cs, board, restored)
		if err != nil {
			return nil, err
		}

		board, err = SpawnTile(cs, restored, moveable)
		if err != nil {
			return nil, err
		}
	}

	return board, nil
}

// compile-time check: Game2048 satisfies the StepCircuit contract.
var _ StepCircuit = (*Game2048)(nil)
