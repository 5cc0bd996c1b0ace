package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Num is an allocated wire together with the witness value it carries
// during synthesis. Nums are created by a System and are only meaningful
// within it.
type Num struct {
	v   Variable
	val fr.Element
}

// Variable returns the wire behind the number.
func (n *Num) Variable() Variable { return n.v }

// Value returns the witness value carried by the number.
func (n *Num) Value() fr.Element { return n.val }

// NewNum allocates a fresh wire carrying val. No constraint is applied;
// callers that need the value pinned must enforce it themselves.
func (s *System) NewNum(val fr.Element) *Num {
	return &Num{v: s.Alloc(val), val: val}
}

// Zero allocates a wire and pins it to zero: w·1 = 0.
func (s *System) Zero() *Num {
	var zero fr.Element
	w := s.NewNum(zero)

	s.Enforce(LC().Add(w.v), LC().Add(ConstOne), LC())

	return w
}

// Add returns r with (a + b)·1 = r.
func (s *System) Add(a, b *Num) *Num {
	var val fr.Element
	val.Add(&a.val, &b.val)
	r := s.NewNum(val)

	s.Enforce(LC().Add(a.v).Add(b.v), LC().Add(ConstOne), LC().Add(r.v))

	return r
}

// Sub returns r with (a − b)·1 = r.
func (s *System) Sub(a, b *Num) *Num {
	var val fr.Element
	val.Sub(&a.val, &b.val)
	r := s.NewNum(val)

	s.Enforce(LC().Add(a.v).Sub(b.v), LC().Add(ConstOne), LC().Add(r.v))

	return r
}

// Mul returns r with a·b = r.
func (s *System) Mul(a, b *Num) *Num {
	var val fr.Element
	val.Mul(&a.val, &b.val)
	r := s.NewNum(val)

	s.Enforce(LC().Add(a.v), LC().Add(b.v), LC().Add(r.v))

	return r
}

// ApplyBool constrains a to be boolean: a·(1 − a) = 0. No new wire.
func (s *System) ApplyBool(a *Num) {
	var one fr.Element
	one.SetOne()

	s.Enforce(LC().Add(a.v), LC().AddConstant(one).Sub(a.v), LC())
}

// Sum returns r with (Σ vsᵢ)·1 = r. One constraint regardless of length.
func (s *System) Sum(vs []*Num) (*Num, error) {
	if len(vs) == 0 {
		return nil, ErrEmptySum
	}

	var val fr.Element
	lhs := LC()
	for _, x := range vs {
		val.Add(&val, &x.val)
		lhs = lhs.Add(x.v)
	}
	r := s.NewNum(val)

	s.Enforce(lhs, LC().Add(ConstOne), LC().Add(r.v))

	return r, nil
}

// ProductSum returns Σ aᵢ·bᵢ, one multiplication constraint per pair plus
// the closing Sum. With b one-hot it selects the entry of a at the active
// index, which is how the board orientation stages use it.
func (s *System) ProductSum(a, b []*Num) (*Num, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	if len(a) == 0 {
		return nil, ErrEmptySum
	}

	products := make([]*Num, len(a))
	for i := range a {
		products[i] = s.Mul(a[i], b[i])
	}

	return s.Sum(products)
}

// IsZero returns a wire holding 1 iff a is zero, 0 otherwise.
//
// The prover supplies inv = a⁻¹ (zero when a is zero) and the pair
//
//	a·inv = 1 − bit
//	a·bit = 0
//
// forces bit = [a == 0]: a nonzero a pins bit to 0 through the second
// constraint and makes the first solvable only with the true inverse; a
// zero a pins bit to 1 through the first.
func (s *System) IsZero(a *Num) *Num {
	return s.isZero(a.val, LC().Add(a.v))
}

// IsZeroBit is IsZero with the result additionally boolean-constrained,
// for callers that feed the bit into a conditional swap.
func (s *System) IsZeroBit(a *Num) *Num {
	bit := s.IsZero(a)
	s.ApplyBool(bit)

	return bit
}

// IsNotZero returns a wire holding 1 iff a is nonzero, 0 otherwise.
// Same two-constraint envelope as IsZero with the bit's sense flipped:
//
//	a·inv = bit
//	a·(1 − bit) = 0
func (s *System) IsNotZero(a *Num) *Num {
	var one, inv, bitVal fr.Element
	one.SetOne()
	inv.Inverse(&a.val)
	if !a.val.IsZero() {
		bitVal.SetOne()
	}

	invNum := s.NewNum(inv)
	bit := s.NewNum(bitVal)

	s.Enforce(LC().Add(a.v), LC().Add(invNum.v), LC().Add(bit.v))
	s.Enforce(LC().Add(a.v), LC().AddConstant(one).Sub(bit.v), LC())

	return bit
}

// IsEqual returns a wire holding 1 iff a equals b. It is the IsZero pair
// applied to the combination a − b directly, with no intermediate
// subtraction wire.
func (s *System) IsEqual(a, b *Num) *Num {
	var diff fr.Element
	diff.Sub(&a.val, &b.val)

	return s.isZero(diff, LC().Add(a.v).Sub(b.v))
}

// isZero appends the two-constraint zero test over an arbitrary linear
// combination a with witness value val.
func (s *System) isZero(val fr.Element, a LinearCombination) *Num {
	var one, inv, bitVal fr.Element
	one.SetOne()
	inv.Inverse(&val) // Inverse(0) = 0, the witness the second row needs
	if val.IsZero() {
		bitVal.SetOne()
	}

	invNum := s.NewNum(inv)
	bit := s.NewNum(bitVal)

	s.Enforce(a, LC().Add(invNum.v), LC().AddConstant(one).Sub(bit.v))
	s.Enforce(a, LC().Add(bit.v), LC())

	return bit
}

// CondReverse returns (a, b) when bit is 0 and (b, a) when bit is 1.
// bit must already be boolean-constrained. Two constraints:
//
//	(b − a)·bit = c − a
//	(a − b)·bit = d − b
func (s *System) CondReverse(a, b, bit *Num) (*Num, *Num) {
	cVal, dVal := a.val, b.val
	if !bit.val.IsZero() {
		cVal, dVal = b.val, a.val
	}

	c := s.NewNum(cVal)
	d := s.NewNum(dVal)

	s.Enforce(LC().Add(b.v).Sub(a.v), LC().Add(bit.v), LC().Add(c.v).Sub(a.v))
	s.Enforce(LC().Add(a.v).Sub(b.v), LC().Add(bit.v), LC().Add(d.v).Sub(b.v))

	return c, d
}
