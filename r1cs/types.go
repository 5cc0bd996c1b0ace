// Package r1cs defines core types and sentinel errors for the rank-1
// constraint-system builder of github.com/katalvlaran/zk2048.
package r1cs

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Sentinel errors for r1cs operations.
var (
	// ErrEmptySum indicates Sum or ProductSum was called with no operands.
	ErrEmptySum = errors.New("r1cs: sum requires at least one operand")
	// ErrLengthMismatch indicates ProductSum received slices of differing lengths.
	ErrLengthMismatch = errors.New("r1cs: operand slices must have the same length")
)

// Variable is the index of a wire in the constraint system.
// Variable 0 is reserved for the constant wire, whose witness value is
// always one.
type Variable int

// ConstOne is the variable holding the constant 1.
const ConstOne Variable = 0

// Term is a single coefficient·variable product inside a linear combination.
type Term struct {
	Coeff fr.Element
	Var   Variable
}

// LinearCombination is a formal sum Σ coeffᵢ·varᵢ over the wires of a system.
// The zero value is the empty combination, which evaluates to zero.
//
// Builder methods return a new combination and never mutate the receiver's
// backing array in place beyond appending, so chains like
// LC().Add(a).Sub(b) read naturally.
type LinearCombination []Term

// LC returns an empty linear combination.
func LC() LinearCombination { return nil }

// Add appends +1·v to the combination.
func (lc LinearCombination) Add(v Variable) LinearCombination {
	var one fr.Element
	one.SetOne()

	return append(lc, Term{Coeff: one, Var: v})
}

// Sub appends −1·v to the combination.
func (lc LinearCombination) Sub(v Variable) LinearCombination {
	var minusOne fr.Element
	minusOne.SetOne()
	minusOne.Neg(&minusOne)

	return append(lc, Term{Coeff: minusOne, Var: v})
}

// AddScaled appends +c·v to the combination.
func (lc LinearCombination) AddScaled(c fr.Element, v Variable) LinearCombination {
	return append(lc, Term{Coeff: c, Var: v})
}

// AddConstant appends +c·1 (a term on the constant wire).
func (lc LinearCombination) AddConstant(c fr.Element) LinearCombination {
	return append(lc, Term{Coeff: c, Var: ConstOne})
}

// SubConstant appends −c·1 (a term on the constant wire).
func (lc LinearCombination) SubConstant(c fr.Element) LinearCombination {
	var neg fr.Element
	neg.Neg(&c)

	return append(lc, Term{Coeff: neg, Var: ConstOne})
}

// Eval computes the value of the combination over a witness vector.
func (lc LinearCombination) Eval(values []fr.Element) fr.Element {
	var acc, tmp fr.Element
	for _, t := range lc {
		tmp.Mul(&t.Coeff, &values[t.Var])
		acc.Add(&acc, &tmp)
	}

	return acc
}

// Constraint is a single rank-1 row: ⟨A,z⟩ · ⟨B,z⟩ = ⟨C,z⟩.
type Constraint struct {
	A, B, C LinearCombination
}

// UnsatisfiedError reports the first constraint violated by the witness.
type UnsatisfiedError struct {
	// Index is the append-order position of the violated constraint.
	Index int
}

func (e *UnsatisfiedError) Error() string {
	return fmt.Sprintf("r1cs: constraint %d is not satisfied", e.Index)
}
