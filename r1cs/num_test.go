package r1cs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zk2048/r1cs"
)

// TestZero verifies the pinned-zero wire and its constraint.
func TestZero(t *testing.T) {
	cs := r1cs.NewSystem()
	z := cs.Zero()

	assert.Equal(t, fe(0), z.Value())
	assert.Equal(t, 1, cs.NumConstraints())
	assert.NoError(t, cs.Satisfied())
}

// TestAddSubMul exercises the three arithmetic gadgets.
func TestAddSubMul(t *testing.T) {
	cs := r1cs.NewSystem()
	a := cs.NewNum(fe(6))
	b := cs.NewNum(fe(4))

	sum := cs.Add(a, b)
	diff := cs.Sub(a, b)
	prod := cs.Mul(a, b)

	assert.Equal(t, fe(10), sum.Value())
	assert.Equal(t, fe(2), diff.Value())
	assert.Equal(t, fe(24), prod.Value())
	assert.Equal(t, 3, cs.NumConstraints(), "one constraint per gadget")
	assert.NoError(t, cs.Satisfied())
}

// TestApplyBool verifies booleans pass and non-booleans are rejected.
func TestApplyBool(t *testing.T) {
	for _, v := range []uint64{0, 1} {
		cs := r1cs.NewSystem()
		cs.ApplyBool(cs.NewNum(fe(v)))
		assert.NoError(t, cs.Satisfied(), "0 and 1 must satisfy the boolean constraint")
	}

	cs := r1cs.NewSystem()
	cs.ApplyBool(cs.NewNum(fe(2)))
	assert.Error(t, cs.Satisfied(), "2 must violate the boolean constraint")
}

// TestSum verifies the single-constraint sum and its empty-input error.
func TestSum(t *testing.T) {
	cs := r1cs.NewSystem()
	vs := []*r1cs.Num{cs.NewNum(fe(1)), cs.NewNum(fe(2)), cs.NewNum(fe(3))}

	s, err := cs.Sum(vs)
	require.NoError(t, err)
	assert.Equal(t, fe(6), s.Value())
	assert.Equal(t, 1, cs.NumConstraints(), "sum must cost one constraint regardless of length")
	assert.NoError(t, cs.Satisfied())

	_, err = cs.Sum(nil)
	assert.ErrorIs(t, err, r1cs.ErrEmptySum)
}

// TestProductSum_OneHotSelection verifies the selection idiom: with b
// one-hot, ProductSum(a, b) picks the entry of a at the active index.
func TestProductSum_OneHotSelection(t *testing.T) {
	cs := r1cs.NewSystem()
	a := []*r1cs.Num{cs.NewNum(fe(11)), cs.NewNum(fe(22)), cs.NewNum(fe(33)), cs.NewNum(fe(44))}
	oneHot := []*r1cs.Num{cs.NewNum(fe(0)), cs.NewNum(fe(0)), cs.NewNum(fe(1)), cs.NewNum(fe(0))}

	got, err := cs.ProductSum(a, oneHot)
	require.NoError(t, err)
	assert.Equal(t, fe(33), got.Value())
	assert.NoError(t, cs.Satisfied())

	_, err = cs.ProductSum(a[:2], oneHot)
	assert.ErrorIs(t, err, r1cs.ErrLengthMismatch)
	_, err = cs.ProductSum(nil, nil)
	assert.ErrorIs(t, err, r1cs.ErrEmptySum)
}

// TestIsZero covers both sides of the zero test and its constraint budget.
func TestIsZero(t *testing.T) {
	cs := r1cs.NewSystem()

	bit := cs.IsZero(cs.NewNum(fe(0)))
	assert.Equal(t, fe(1), bit.Value(), "zero input must flip the bit on")

	before := cs.NumConstraints()
	bit = cs.IsZero(cs.NewNum(fe(42)))
	assert.Equal(t, fe(0), bit.Value(), "nonzero input must leave the bit off")
	assert.Equal(t, 2, cs.NumConstraints()-before, "zero test must cost two constraints")

	assert.NoError(t, cs.Satisfied())
}

// TestIsZeroBit verifies the boolean-constrained variant adds the extra row.
func TestIsZeroBit(t *testing.T) {
	cs := r1cs.NewSystem()

	before := cs.NumConstraints()
	bit := cs.IsZeroBit(cs.NewNum(fe(0)))
	assert.Equal(t, fe(1), bit.Value())
	assert.Equal(t, 3, cs.NumConstraints()-before)
	assert.NoError(t, cs.Satisfied())
}

// TestIsNotZero covers the flipped-sense test.
func TestIsNotZero(t *testing.T) {
	cs := r1cs.NewSystem()

	assert.Equal(t, fe(0), cs.IsNotZero(cs.NewNum(fe(0))).Value())
	assert.Equal(t, fe(1), cs.IsNotZero(cs.NewNum(fe(17))).Value())
	assert.NoError(t, cs.Satisfied())
}

// TestIsEqual verifies equality over the a−b linear combination.
func TestIsEqual(t *testing.T) {
	cs := r1cs.NewSystem()
	a := cs.NewNum(fe(8))
	b := cs.NewNum(fe(8))
	c := cs.NewNum(fe(16))

	assert.Equal(t, fe(1), cs.IsEqual(a, b).Value())

	before := cs.NumConstraints()
	assert.Equal(t, fe(0), cs.IsEqual(a, c).Value())
	assert.Equal(t, 2, cs.NumConstraints()-before, "equality must not spend a subtraction wire")

	assert.NoError(t, cs.Satisfied())
}

// TestCondReverse exercises the conditional swap in both gate positions.
func TestCondReverse(t *testing.T) {
	cs := r1cs.NewSystem()
	a := cs.NewNum(fe(3))
	b := cs.NewNum(fe(5))

	keepC, keepD := cs.CondReverse(a, b, cs.NewNum(fe(0)))
	assert.Equal(t, fe(3), keepC.Value())
	assert.Equal(t, fe(5), keepD.Value())

	swapC, swapD := cs.CondReverse(a, b, cs.NewNum(fe(1)))
	assert.Equal(t, fe(5), swapC.Value())
	assert.Equal(t, fe(3), swapD.Value())

	assert.NoError(t, cs.Satisfied())
}
