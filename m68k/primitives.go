package m68k

// ccrDelta is the result of a width-generic ALU primitive: the new value of
// the five CCR flags (X,N,Z,V,C), packed into the low bits of the status
// register layout, and a mask of which of those bits the operation actually
// defines. Callers merge with `sr = (sr &^ delta.mask) | delta.value` so an
// instruction that only defines some flags never disturbs the others —
// spec.md §3's "mask-based merge, never blanket overwrite" invariant.
type ccrDelta struct {
	value uint16
	mask  uint16
}

// addPrimitive derives the XNZVC delta for an addition already computed by
// the caller as result = dst + src (+ incoming X, for ADDX). Taking the
// result rather than recomputing dst+src matters for ADDX: its carry chain
// includes the X bit, so dst+src alone would understate the true sum.
func addPrimitive(sz Size, dst, src, result uint32) ccrDelta {
	msb := sz.MSB()
	mask := sz.Mask()
	r := result & mask
	s := src & mask
	d := dst & mask

	var d16 uint16
	if r == 0 {
		d16 |= flagZ
	}
	if r&msb != 0 {
		d16 |= flagN
	}
	// Overflow: both operands the same sign, result a different sign.
	if (s^r)&(d^r)&msb != 0 {
		d16 |= flagV
	}
	// Carry: unsigned overflow out of the width.
	if result&(msb<<1) != 0 || (sz == Long && ((s&d|(s|d)&^r)&msb != 0)) {
		d16 |= flagC | flagX
	}

	return ccrDelta{value: d16, mask: flagX | flagN | flagZ | flagV | flagC}
}

// subPrimitive derives the XNZVC delta for a subtraction already computed
// by the caller as result = dst - src (- incoming X, for SUBX/NEGX).
func subPrimitive(sz Size, dst, src, result uint32) ccrDelta {
	msb := sz.MSB()
	mask := sz.Mask()
	r := result & mask
	s := src & mask
	d := dst & mask

	var d16 uint16
	if r == 0 {
		d16 |= flagZ
	}
	if r&msb != 0 {
		d16 |= flagN
	}
	// Overflow: operands differ in sign, result differs from the minuend.
	if (s^d)&(r^d)&msb != 0 {
		d16 |= flagV
	}
	// Borrow.
	if (s&^d|r&^d|s&r)&msb != 0 {
		d16 |= flagC | flagX
	}

	return ccrDelta{value: d16, mask: flagX | flagN | flagZ | flagV | flagC}
}

// logicalPrimitive computes N/Z for a logical result (AND/OR/EOR/NOT/MOVE/
// TST/MOVEQ/EXT/SWAP/shift results at count 0); V and C are always cleared,
// X is always left untouched by the caller (mask omits flagX).
func logicalPrimitive(sz Size, result uint32) ccrDelta {
	var d16 uint16
	if result&sz.Mask() == 0 {
		d16 |= flagZ
	}
	if result&sz.MSB() != 0 {
		d16 |= flagN
	}
	return ccrDelta{value: d16, mask: flagN | flagZ | flagV | flagC}
}

// cmpPrimitive derives NZVC for a comparison (CMP/CMPA/CMPI/CMPM): the same
// XNZVC delta as a subtraction, with X dropped from the mask since a
// comparison never disturbs the extend flag.
func cmpPrimitive(sz Size, dst, src, result uint32) ccrDelta {
	d := subPrimitive(sz, dst, src, result)
	d.mask &^= flagX
	return d
}

// bitTestDelta derives Z for a BTST/BCHG/BCLR/BSET bit test: the tested bit
// was clear (so Z is set) or already set (Z clear). N, V, C, X are all left
// untouched by these instructions.
func bitTestDelta(bitWasClear bool) ccrDelta {
	var d16 uint16
	if bitWasClear {
		d16 = flagZ
	}
	return ccrDelta{value: d16, mask: flagZ}
}
