// Package r1cs is a minimal, deterministic rank-1 constraint-system builder
// over the BN254 scalar field, plus the gadget catalog the zk2048 step
// circuit is assembled from.
//
// What:
//
//   - System collects constraints of the form ⟨A,z⟩·⟨B,z⟩ = ⟨C,z⟩ together
//     with the witness assignment z, in a stable append order.
//   - Num wraps an allocated wire with its witness value and is the unit the
//     gadget layer trades in.
//   - Gadgets: Zero, Add, Sub, Mul, Sum, ProductSum, ApplyBool, IsZero,
//     IsZeroBit, IsNotZero, IsEqual, CondReverse. Each costs a fixed number
//     of constraints: at most two for most gadgets, three for IsZeroBit, and
//     one per operand pair plus one for ProductSum. That constant shape is
//     what keeps the per-step constraint count of the outer circuit flat.
//
// Why:
//
//   - A folding prover re-synthesizes the same circuit on both sides, so the
//     constraint stream must be byte-for-byte deterministic. Identifying
//     constraints by append order (no labels, no namespaces) makes that
//     property structural instead of a discipline.
//   - The zero tests (IsZero/IsEqual with a·inv = 1−bit, a·bit = 0, and
//     IsNotZero with its flipped pair) are the only places field inversion
//     appears; Inverse of zero yields zero, which is exactly the witness the
//     second constraint needs.
//
// Complexity:
//
//   - Enforce, Alloc: O(1) amortized.
//   - Satisfied: O(constraints × terms), witness evaluation only.
//
// Errors:
//
//   - ErrEmptySum: Sum/ProductSum over zero operands.
//   - ErrLengthMismatch: ProductSum over slices of differing lengths.
//   - UnsatisfiedError: returned by Satisfied with the first violated row.
package r1cs
