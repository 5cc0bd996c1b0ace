// Package game defines core types, constants, and sentinel errors for the
// game subpackage of github.com/katalvlaran/zk2048.
package game

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/katalvlaran/zk2048/r1cs"
)

// Board and line geometry. The board is row-major: index = BoardSide·row + col.
const (
	// BoardSide is the edge length of the square board.
	BoardSide = 4
	// BoardSize is the number of board cells, and the arity of the step circuit.
	BoardSize = BoardSide * BoardSide
	// LineCount is the number of slide lines the board decomposes into.
	LineCount = BoardSide
	// LineLen is the number of cells per line.
	LineLen = BoardSide
	// DirectionSize is the width of the one-hot direction vector.
	DirectionSize = 4
)

// Sentinel errors for game operations.
var (
	// ErrBoardSize indicates a board slice whose length is not BoardSize.
	ErrBoardSize = errors.New("game: board must have exactly 16 cells")
	// ErrDirectionSize indicates a direction slice whose length is not DirectionSize.
	ErrDirectionSize = errors.New("game: direction must have exactly 4 wires")
	// ErrLineShape indicates a line set that is not 4 lines of 4 cells.
	ErrLineShape = errors.New("game: lines must be 4 lines of 4 cells")
)

// Move is a slide direction for one step of the game.
type Move int

const (
	// Up slides every column toward row 0.
	Up Move = iota
	// Down slides every column toward row 3.
	Down
	// Left slides every row toward column 0.
	Left
	// Right slides every row toward column 3.
	Right
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Move(?)"
	}
}

// Vector returns the one-hot field encoding of the move, ordered
// (up, down, left, right).
func (m Move) Vector() [DirectionSize]fr.Element {
	var v [DirectionSize]fr.Element
	v[m].SetOne()

	return v
}

// StepCircuit is the contract a folding/recursive prover drives: a circuit
// over a fixed-arity state vector whose synthesis consumes the previous
// state wires and returns the next ones on the same constraint system.
type StepCircuit interface {
	// Arity is the length of the state vector z.
	Arity() int
	// Synthesize appends all wires and constraints for one state
	// transition and returns the output state.
	Synthesize(cs *r1cs.System, z []*r1cs.Num) ([]*r1cs.Num, error)
}
