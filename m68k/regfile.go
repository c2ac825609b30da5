package m68k

import "strconv"

// dRegName and aRegName name a data/address register for step-log entries,
// e.g. "D3", "A7". The disassembler formats registers with fmtReg instead.
func dRegName(n uint8) string { return "D" + strconv.Itoa(int(n&7)) }
func aRegName(n uint8) string { return "A" + strconv.Itoa(int(n&7)) }

// GetD reads data register n at the given width.
func (c *CPU) GetD(n uint8, sz Size) uint32 {
	return c.reg.D[n&7] & sz.Mask()
}

// SetD writes data register n at the given width, preserving the
// untouched upper bits (a byte or word store never clobbers the rest of
// the 32-bit register).
func (c *CPU) SetD(n uint8, sz Size, val uint32) {
	n &= 7
	mask := sz.Mask()
	old := c.reg.D[n]
	c.reg.D[n] = (old &^ mask) | (val & mask)
	c.logRegWrite(dRegName(n), sz, old, c.reg.D[n])
}

// GetA reads address register n. Always full-width: there is no byte or
// word form of an address register read.
func (c *CPU) GetA(n uint8) uint32 {
	return c.activeA(n)
}

// SetA writes address register n with a full 32-bit value.
func (c *CPU) SetA(n uint8, val uint32) {
	n &= 7
	old := c.activeA(n)
	if n == 7 {
		c.reg.A[7] = val
	} else {
		c.reg.A[n] = val
	}
	c.logRegWrite(aRegName(n), Long, old, val)
}

// activeA returns the live value of An, accounting for A7 being whichever
// of USP/SSP is currently mapped in by the supervisor bit.
func (c *CPU) activeA(n uint8) uint32 {
	return c.reg.A[n&7]
}
