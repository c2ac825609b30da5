package m68k

func init() {
	registerBTST()
	registerBCHG()
	registerBCLR()
	registerBSET()
}

// Bit operations have two forms:
// Dynamic: 0000 DDD1 ttmm mrrr (Dn specifies bit number)
// Static:  0000 1000 ttmm mrrr + immediate word (bit number in extension)
// tt (bits 7-6) = 00:BTST, 01:BCHG, 10:BCLR, 11:BSET; mmm/rrr = EA mode/reg
// For Dn destination: operates on long (bit mod 32)
// For memory: operates on byte (bit mod 8)

// --- BTST ---

func registerBTST() {
	// Dynamic form: BTST Dn,<ea> (includes immediate as source)
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0x0100 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opBTSTdyn
			}
		}
	}
	// Static form: BTST #imm,<ea>
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			opcode := 0x0800 | mode<<3 | reg
			opcodeTable[opcode] = opBTSTstatic
		}
	}
}

// bitField reads the register or memory operand a bit op tests, masking
// the bit number to 31 for a Dn destination (the bit indexes a full long)
// or 7 for memory (the bit indexes a single byte), per spec.md §4.A.
func (c *CPU) bitField(mode uint8, reg uint8, bitNum uint32) (val uint32, bit uint32, dst ea) {
	if mode == 0 {
		return c.GetD(reg, Long), bitNum & 31, ea{}
	}
	dst = c.resolveEA(mode, reg, Byte)
	return dst.read(c, Byte), bitNum & 7, dst
}

func opBTSTdyn(c *CPU) {
	dn := uint8((c.ir >> 9) & 7)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, _ := c.bitField(mode, reg, c.GetD(dn, Long))
	c.applyDelta(bitTestDelta(val&(1<<bit) == 0))

	fetch := eaFetchCycles(mode, reg, Byte)
	if mode == 0 {
		c.cycles += 6
	} else {
		c.cycles += 4 + fetch
	}
}

func opBTSTstatic(c *CPU) {
	bitNum := uint32(c.fetchPC() & 0xFF)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, _ := c.bitField(mode, reg, bitNum)
	c.applyDelta(bitTestDelta(val&(1<<bit) == 0))

	if mode == 0 {
		c.cycles += 10
	} else {
		c.cycles += 8
	}
}

// --- BCHG ---

func registerBCHG() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x0140 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opBCHGdyn
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			opcode := 0x0840 | mode<<3 | reg
			opcodeTable[opcode] = opBCHGstatic
		}
	}
}

// bitMutate applies op to the bit numbered bit within val, reporting the
// CCR delta for the bit's prior state and the new operand value.
func bitMutate(val, bit uint32, op func(v, mask uint32) uint32) (delta ccrDelta, result uint32) {
	mask := uint32(1) << bit
	return bitTestDelta(val&mask == 0), op(val, mask)
}

func opBCHGdyn(c *CPU) {
	dn := uint8((c.ir >> 9) & 7)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, c.GetD(dn, Long))
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v ^ mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
	} else {
		dst.write(c, Byte, result)
	}
	c.cycles += 8
}

func opBCHGstatic(c *CPU) {
	bitNum := uint32(c.fetchPC() & 0xFF)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, bitNum)
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v ^ mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
	} else {
		dst.write(c, Byte, result)
	}
	c.cycles += 12
}

// --- BCLR ---

func registerBCLR() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x0180 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opBCLRdyn
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			opcode := 0x0880 | mode<<3 | reg
			opcodeTable[opcode] = opBCLRstatic
		}
	}
}

func opBCLRdyn(c *CPU) {
	dn := uint8((c.ir >> 9) & 7)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, c.GetD(dn, Long))
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v &^ mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
		c.cycles += 10
	} else {
		dst.write(c, Byte, result)
		c.cycles += 8
	}
}

func opBCLRstatic(c *CPU) {
	bitNum := uint32(c.fetchPC() & 0xFF)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, bitNum)
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v &^ mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
		c.cycles += 14
	} else {
		dst.write(c, Byte, result)
		c.cycles += 12
	}
}

// --- BSET ---

func registerBSET() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x01C0 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opBSETdyn
			}
		}
	}
	for mode := uint16(0); mode < 8; mode++ {
		if mode == 1 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 1 {
				continue
			}
			opcode := 0x08C0 | mode<<3 | reg
			opcodeTable[opcode] = opBSETstatic
		}
	}
}

func opBSETdyn(c *CPU) {
	dn := uint8((c.ir >> 9) & 7)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, c.GetD(dn, Long))
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v | mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
	} else {
		dst.write(c, Byte, result)
	}
	c.cycles += 8
}

func opBSETstatic(c *CPU) {
	bitNum := uint32(c.fetchPC() & 0xFF)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	val, bit, dst := c.bitField(mode, reg, bitNum)
	delta, result := bitMutate(val, bit, func(v, mask uint32) uint32 { return v | mask })
	c.applyDelta(delta)
	if mode == 0 {
		c.SetD(reg, Long, result)
	} else {
		dst.write(c, Byte, result)
	}
	c.cycles += 12
}
