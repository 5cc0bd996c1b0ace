// Package game arithmetizes one move of the 2048 sliding-tile game into a
// rank-1 constraint system, as a step circuit for a folding/recursive prover.
//
// What:
//
//   - Game2048 is a StepCircuit of arity 16: one wire per board cell,
//     row-major, with a fixed move list baked in at construction.
//   - One move is a six-stage, branch-free pipeline on the shared system:
//
//     board ──ChooseDirection──▶ lines ──SortByZero──▶ ──MergeLines──▶
//     ──SortByZero──▶ ──Restore──▶ board' ──SpawnTile──▶ board''
//
//   - ChooseDirection reorients the board into four length-4 lines so that
//     "slide toward the chosen edge" always means "slide toward index 0";
//     Restore applies the inverse permutation.
//   - SortByZero stably compacts zeros to the tail of each line; MergeLines
//     doubles equal adjacent pairs once, left to right; SpawnTile writes a
//     2 or 4 into one verifiably-chosen empty cell, or nothing when the
//     board is full or the move changed nothing (CanMove).
//
// Why:
//
//   - The game rule is branchy and data-dependent; a circuit is neither.
//     Every "if" becomes a multiplication by a proven 0/1 wire, so the
//     constraint count per step is a constant independent of the witness.
//   - Folding provers consume one such step per move and chain them into a
//     proof of a whole game trace; this package owns exactly the step.
//
// Complexity (constraints per move, all fixed at synthesis time):
//
//   - ChooseDirection: 16 selections × 5 + 4 booleans + 2 one-hot rows.
//   - SortByZero: 4 lines × 6 comparators × 5 (zero test + bool + swap pair).
//   - MergeLines: 4 lines × 3 pair tests × 4.
//   - Restore: 16 selections × 5.
//   - CanMove + SpawnTile: 37 + 173 = 210.
//
// Errors:
//
//   - ErrBoardSize: a board slice without exactly 16 cells.
//   - ErrDirectionSize: a direction slice without exactly 4 wires.
//   - ErrLineShape: a line set that is not 4×4.
//
// Satisfiability is not an error here: synthesis always builds a well-formed
// system, and rejecting a dishonest witness (a non-one-hot direction, a board
// that claims an illegal slide) is the verifier's job.
package game
