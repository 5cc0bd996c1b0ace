package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// System is an append-only rank-1 constraint system under construction,
// together with the witness assignment for every allocated wire.
//
// Synthesis is strictly sequential: every Alloc and Enforce appends at the
// tail, so two synthesis runs of the same circuit produce identical systems.
// A System is exclusively owned by the step being synthesized and is not
// safe for concurrent use.
type System struct {
	values      []fr.Element
	constraints []Constraint
}

// NewSystem returns an empty system holding only the constant wire,
// pre-assigned to one.
func NewSystem() *System {
	var one fr.Element
	one.SetOne()

	return &System{values: []fr.Element{one}}
}

// One returns the constant wire. Its witness value is always one.
func (s *System) One() Variable { return ConstOne }

// Alloc appends a fresh wire carrying the witness value v and returns it.
func (s *System) Alloc(v fr.Element) Variable {
	s.values = append(s.values, v)

	return Variable(len(s.values) - 1)
}

// Value returns the witness value carried by v.
func (s *System) Value(v Variable) fr.Element { return s.values[v] }

// Enforce appends the constraint ⟨a,z⟩·⟨b,z⟩ = ⟨c,z⟩.
func (s *System) Enforce(a, b, c LinearCombination) {
	s.constraints = append(s.constraints, Constraint{A: a, B: b, C: c})
}

// NumConstraints reports how many constraints have been appended so far.
func (s *System) NumConstraints() int { return len(s.constraints) }

// NumVariables reports how many wires exist, including the constant wire.
func (s *System) NumVariables() int { return len(s.values) }

// Satisfied evaluates every constraint over the witness and returns nil if
// all hold, or an *UnsatisfiedError naming the first violated row.
//
// Satisfied is a verification aid for tests and debugging; the synthesis
// path never calls it.
func (s *System) Satisfied() error {
	var left fr.Element
	for i := range s.constraints {
		a := s.constraints[i].A.Eval(s.values)
		b := s.constraints[i].B.Eval(s.values)
		c := s.constraints[i].C.Eval(s.values)

		left.Mul(&a, &b)
		if !left.Equal(&c) {
			return &UnsatisfiedError{Index: i}
		}
	}

	return nil
}
