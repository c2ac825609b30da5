package m68k

import "fmt"

// Disassemble decodes the instruction at addr without executing it or
// mutating any CPU-visible state (registers, SR, memory, cycle count,
// step-log). It is safe to call at any time, including while a run is
// paused mid-instruction.
//
// This is deliberately a separate linear-scan table from opcodeTable rather
// than a second [65536]disasmFunc populated alongside it: the execution
// handlers are grouped by instruction family across ops_*.go, and most of
// them share a register* registration loop that would need per-entry
// mnemonic/operand text threaded through it. A standalone mask/value scan
// (the shape every "decode object code" example in this corpus uses) keeps
// that text out of the hot execution path entirely.
func (c *CPU) Disassemble(addr uint32) Instruction {
	d := &disasmCursor{c: c, start: addr, pc: addr}
	word := d.fetch()

	for _, e := range disasmTable {
		if word&e.mask == e.value {
			mnem, operands := e.decode(d, word)
			return Instruction{Address: addr, AddressNext: d.pc, Mnemonic: mnem, Operands: operands}
		}
	}

	return Instruction{Address: addr, AddressNext: d.pc, Mnemonic: "DC.W", Operands: fmt.Sprintf("$%04X", word)}
}

// disasmCursor walks memory read-only, standing in for the PC-advancing
// fetch methods CPU uses during real execution.
type disasmCursor struct {
	c     *CPU
	start uint32
	pc    uint32
}

func (d *disasmCursor) fetch() uint16 {
	val := d.c.peekBus(Word, d.pc)
	d.pc += 2
	return uint16(val)
}

func (d *disasmCursor) fetchLong() uint32 {
	hi := d.fetch()
	lo := d.fetch()
	return uint32(hi)<<16 | uint32(lo)
}

// peekBus reads memory exactly like readBus but bypasses halted/odd-address
// handling, cycle accounting, and step-log emission: a disassembly view
// must never have a side effect.
func (c *CPU) peekBus(sz Size, addr uint32) uint32 {
	addr &= 0xFFFFFF
	if c.cycleBus != nil {
		return c.cycleBus.ReadCycle(c.cycles, sz, addr)
	}
	return c.bus.Read(sz, addr)
}

// disasmEntry matches a decoded word against mask/value and renders it.
type disasmEntry struct {
	mask, value uint16
	decode      func(d *disasmCursor, word uint16) (mnemonic, operands string)
}

// eaOperand decodes and renders the effective-address text for a mode/reg
// pair at the given size, advancing the cursor past any extension words.
// Mirrors resolveEA's mode switch but only ever reads, never writes.
func eaOperand(d *disasmCursor, mode, reg uint8, sz Size) string {
	switch mode {
	case 0:
		return fmtReg("D", reg)
	case 1:
		return fmtReg("A", reg)
	case 2:
		return "(" + fmtReg("A", reg) + ")"
	case 3:
		return "(" + fmtReg("A", reg) + ")+"
	case 4:
		return "-(" + fmtReg("A", reg) + ")"
	case 5:
		disp := int16(d.fetch())
		return fmtDisp(disp, fmtReg("A", reg))
	case 6:
		ext := d.fetch()
		return fmtIndex(fmtReg("A", reg), ext)
	case 7:
		switch reg {
		case 0:
			addr := int16(d.fetch())
			return fmtAbsW(uint16(addr))
		case 1:
			return fmtAbsL(d.fetchLong())
		case 2:
			disp := int16(d.fetch())
			return fmtDisp(disp, "PC")
		case 3:
			ext := d.fetch()
			return fmtIndex("PC", ext)
		case 4:
			switch sz {
			case Byte:
				return fmtImm(uint32(d.fetch() & 0xFF))
			case Word:
				return fmtImm(uint32(d.fetch()))
			case Long:
				return fmtImm(d.fetchLong())
			}
		}
	}
	return "?"
}

func fmtReg(prefix string, n uint8) string {
	return fmt.Sprintf("%s%d", prefix, n&7)
}

func fmtImm(v uint32) string {
	return fmt.Sprintf("#$%X", v)
}

func fmtAbsW(v uint16) string {
	return fmt.Sprintf("$%04X.W", v)
}

func fmtAbsL(v uint32) string {
	return fmt.Sprintf("$%08X.L", v)
}

func fmtDisp(disp int16, base string) string {
	return fmt.Sprintf("($%X,%s)", uint16(disp), base)
}

func fmtIndex(base string, ext uint16) string {
	xn := fmtReg("D", uint8(ext>>12))
	if ext&0x8000 != 0 {
		xn = fmtReg("A", uint8(ext>>12))
	}
	size := ".W"
	if ext&0x0800 != 0 {
		size = ".L"
	}
	scale := 1 << ((ext >> 9) & 3)
	disp := int8(ext & 0xFF)
	if ext&0x0100 != 0 {
		return fmt.Sprintf("($%X,%s,%s%s*%d) ; full ext unimplemented", uint8(disp), base, xn, size, scale)
	}
	if scale == 1 {
		return fmt.Sprintf("($%X,%s,%s%s)", uint8(disp), base, xn, size)
	}
	return fmt.Sprintf("($%X,%s,%s%s*%d)", uint8(disp), base, xn, size, scale)
}

// disasmTable lists the instruction families this view recognizes, most
// specific mask first so e.g. EXT ($4880, mask $FFB8) is matched before the
// broader MOVEM pattern ($4880, mask $FB80) that also covers it.
var disasmTable = []disasmEntry{
	{0xFFFF, 0x4E71, func(d *disasmCursor, w uint16) (string, string) { return "NOP", "" }},
	{0xFFFF, 0x4E70, func(d *disasmCursor, w uint16) (string, string) { return "RESET", "" }},
	{0xFFFF, 0x4E72, func(d *disasmCursor, w uint16) (string, string) {
		imm := d.fetch()
		return "STOP", fmtImm(uint32(imm))
	}},
	{0xFFFF, 0x4E73, func(d *disasmCursor, w uint16) (string, string) { return "RTE", "" }},
	{0xFFFF, 0x4E75, func(d *disasmCursor, w uint16) (string, string) { return "RTS", "" }},
	{0xFFFF, 0x4E76, func(d *disasmCursor, w uint16) (string, string) { return "TRAPV", "" }},
	{0xFFFF, 0x4E77, func(d *disasmCursor, w uint16) (string, string) { return "RTR", "" }},
	{0xFFF0, 0x4E40, func(d *disasmCursor, w uint16) (string, string) {
		return "TRAP", fmt.Sprintf("#%d", w&0xF)
	}},
	{0xFFF8, 0x4E50, func(d *disasmCursor, w uint16) (string, string) {
		disp := int16(d.fetch())
		return "LINK", fmt.Sprintf("%s,#%d", fmtReg("A", uint8(w&7)), disp)
	}},
	{0xFFF8, 0x4E58, func(d *disasmCursor, w uint16) (string, string) {
		return "UNLK", fmtReg("A", uint8(w&7))
	}},
	{0xFFF8, 0x4E60, func(d *disasmCursor, w uint16) (string, string) {
		return "MOVE", fmt.Sprintf("%s,USP", fmtReg("A", uint8(w&7)))
	}},
	{0xFFF8, 0x4E68, func(d *disasmCursor, w uint16) (string, string) {
		return "MOVE", fmt.Sprintf("USP,%s", fmtReg("A", uint8(w&7)))
	}},
	{0xFFFE, 0x4E7A, func(d *disasmCursor, w uint16) (string, string) {
		d.fetch()
		return "MOVEC", "; unimplemented"
	}},
	{0xF1C0, 0x41C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "LEA", eaOperand(d, mode, reg, Long) + "," + dn
	}},
	{0xF1C0, 0x4840, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "PEA", eaOperand(d, mode, reg, Long)
	}},
	{0xFF00, 0x4200, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "CLR" + sz.Suffix(), eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x4400, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "NEG" + sz.Suffix(), eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x4000, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "NEGX" + sz.Suffix(), eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x4600, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "NOT" + sz.Suffix(), eaOperand(d, mode, reg, sz)
	}},
	{0xFFC0, 0x4A00, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "TST", eaOperand(d, mode, reg, Word)
	}},
	{0xFFC0, 0x4AC0, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "TAS", eaOperand(d, mode, reg, Byte)
	}},
	{0xF1F8, 0x3048, func(d *disasmCursor, w uint16) (string, string) {
		ax := fmtReg("A", uint8((w>>9)&7))
		ay := fmtReg("A", uint8(w&7))
		return "MOVEA.W", ay + "," + ax
	}},
	{0xF1F8, 0x2048, func(d *disasmCursor, w uint16) (string, string) {
		ax := fmtReg("A", uint8((w>>9)&7))
		ay := fmtReg("A", uint8(w&7))
		return "MOVEA.L", ay + "," + ax
	}},
	{0xF000, 0x1000, decodeMOVE(Byte)},
	{0xF000, 0x3000, decodeMOVE(Word)},
	{0xF000, 0x2000, decodeMOVE(Long)},
	{0xF100, 0x7000, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		imm := int8(w & 0xFF)
		return "MOVEQ", fmt.Sprintf("#%d,%s", imm, dn)
	}},
	{0xF000, 0x6000, decodeBcc},
	{0xF0F8, 0x50C8, decodeDBcc},
	{0xF0C0, 0x50C0, decodeScc},
	{0xF000, 0xB000, decodeCMPEOR},
	{0xF000, 0xD000, decodeArith("ADD")},
	{0xF000, 0x9000, decodeArith("SUB")},
	{0xF000, 0xC000, decodeArith("AND")},
	{0xF000, 0x8000, decodeArith("OR")},
	{0xFE00, 0xC100, func(d *disasmCursor, w uint16) (string, string) {
		return "EXG", fmt.Sprintf("%s,%s", fmtReg("D", uint8((w>>9)&7)), fmtReg("D", uint8(w&7)))
	}},
	{0xFF00, 0x0000, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "ORI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x0200, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "ANDI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x0A00, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "EORI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x0600, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "ADDI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x0400, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "SUBI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xFF00, 0x0C00, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		imm := immForSize(d, sz)
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "CMPI" + sz.Suffix(), fmtImm(imm) + "," + eaOperand(d, mode, reg, sz)
	}},
	{0xF100, 0x5000, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		data := (w >> 9) & 7
		if data == 0 {
			data = 8
		}
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "ADDQ" + sz.Suffix(), fmt.Sprintf("#%d,%s", data, eaOperand(d, mode, reg, sz))
	}},
	{0xF100, 0x5100, func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		data := (w >> 9) & 7
		if data == 0 {
			data = 8
		}
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "SUBQ" + sz.Suffix(), fmt.Sprintf("#%d,%s", data, eaOperand(d, mode, reg, sz))
	}},
	{0xF1C0, 0x4180, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "CHK", eaOperand(d, mode, reg, Word) + "," + dn
	}},
	{0xFFC0, 0x4EC0, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "JMP", eaOperand(d, mode, reg, Long)
	}},
	{0xFFC0, 0x4E80, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "JSR", eaOperand(d, mode, reg, Long)
	}},
	{0xFFF8, 0x4840, func(d *disasmCursor, w uint16) (string, string) {
		return "SWAP", fmtReg("D", uint8(w&7))
	}},
	{0xFFB8, 0x4880, func(d *disasmCursor, w uint16) (string, string) {
		sz := Word
		if w&0x40 != 0 {
			sz = Long
		}
		return "EXT" + sz.Suffix(), fmtReg("D", uint8(w&7))
	}},
	{0xFB80, 0x4880, func(d *disasmCursor, w uint16) (string, string) {
		sz := Word
		if w&0x40 != 0 {
			sz = Long
		}
		mask := d.fetch()
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		dir := "reg->mem"
		if w&0x0400 != 0 {
			dir = "mem->reg"
		}
		return "MOVEM" + sz.Suffix(), fmt.Sprintf("#$%04X,%s ; %s", mask, eaOperand(d, mode, reg, sz), dir)
	}},
	{0xF1C0, 0x0100, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "BTST", dn + "," + eaOperand(d, mode, reg, Byte)
	}},
	{0xF1C0, 0x0140, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "BCHG", dn + "," + eaOperand(d, mode, reg, Byte)
	}},
	{0xF1C0, 0x0180, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "BCLR", dn + "," + eaOperand(d, mode, reg, Byte)
	}},
	{0xF1C0, 0x01C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "BSET", dn + "," + eaOperand(d, mode, reg, Byte)
	}},
	{0xFFC0, 0x0800, func(d *disasmCursor, w uint16) (string, string) {
		imm := d.fetch()
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "BTST", fmt.Sprintf("#%d,%s", imm&0xFF, eaOperand(d, mode, reg, Byte))
	}},
	{0xF138, 0x9100, func(d *disasmCursor, w uint16) (string, string) {
		return "SUBX", fmt.Sprintf("%s,%s", fmtReg("D", uint8(w&7)), fmtReg("D", uint8((w>>9)&7)))
	}},
	{0xF138, 0xD100, func(d *disasmCursor, w uint16) (string, string) {
		return "ADDX", fmt.Sprintf("%s,%s", fmtReg("D", uint8(w&7)), fmtReg("D", uint8((w>>9)&7)))
	}},
	{0xF1F0, 0xC100, func(d *disasmCursor, w uint16) (string, string) {
		return "ABCD", fmt.Sprintf("%s,%s", fmtReg("D", uint8(w&7)), fmtReg("D", uint8((w>>9)&7)))
	}},
	{0xF1F0, 0x8100, func(d *disasmCursor, w uint16) (string, string) {
		return "SBCD", fmt.Sprintf("%s,%s", fmtReg("D", uint8(w&7)), fmtReg("D", uint8((w>>9)&7)))
	}},
	{0xFFC0, 0x4800, func(d *disasmCursor, w uint16) (string, string) {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "NBCD", eaOperand(d, mode, reg, Byte)
	}},
	{0xF1C0, 0xC0C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "MULU", eaOperand(d, mode, reg, Word) + "," + dn
	}},
	{0xF1C0, 0xC1C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "MULS", eaOperand(d, mode, reg, Word) + "," + dn
	}},
	{0xF1C0, 0x80C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "DIVU", eaOperand(d, mode, reg, Word) + "," + dn
	}},
	{0xF1C0, 0x81C0, func(d *disasmCursor, w uint16) (string, string) {
		dn := fmtReg("D", uint8((w>>9)&7))
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		return "DIVS", eaOperand(d, mode, reg, Word) + "," + dn
	}},
	{0xF018, 0xE000, decodeShift},
}

func decodeMOVE(sz Size) func(d *disasmCursor, w uint16) (string, string) {
	return func(d *disasmCursor, w uint16) (string, string) {
		srcMode, srcReg := uint8((w>>3)&7), uint8(w&7)
		dstReg, dstMode := uint8((w>>9)&7), uint8((w>>6)&7)
		src := eaOperand(d, srcMode, srcReg, sz)
		dst := eaOperand(d, dstMode, dstReg, sz)
		return "MOVE" + sz.Suffix(), src + "," + dst
	}
}

func decodeArith(name string) func(d *disasmCursor, w uint16) (string, string) {
	return func(d *disasmCursor, w uint16) (string, string) {
		sz := sizeFromBits((w >> 6) & 3)
		dn := fmtReg("D", uint8((w>>9)&7))
		dir := (w >> 8) & 1
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		ea := eaOperand(d, mode, reg, sz)
		if dir == 0 {
			return name + sz.Suffix(), ea + "," + dn
		}
		return name + sz.Suffix(), dn + "," + ea
	}
}

func decodeCMPEOR(d *disasmCursor, w uint16) (string, string) {
	sz := sizeFromBits((w >> 6) & 3)
	dn := fmtReg("D", uint8((w>>9)&7))
	opmode := (w >> 6) & 7
	mode, reg := uint8((w>>3)&7), uint8(w&7)
	ea := eaOperand(d, mode, reg, sz)
	if opmode >= 4 {
		return "EOR" + sz.Suffix(), dn + "," + ea
	}
	return "CMP" + sz.Suffix(), ea + "," + dn
}

func decodeBcc(d *disasmCursor, w uint16) (string, string) {
	cc := (w >> 8) & 0xF
	disp8 := int8(w & 0xFF)
	var target int32
	if disp8 == 0 {
		disp16 := int16(d.fetch())
		target = int32(d.pc) + int32(disp16) - 2
	} else {
		target = int32(d.start) + int32(disp8) + 2
	}
	switch cc {
	case 0:
		return "BRA", fmt.Sprintf("$%06X", uint32(target))
	case 1:
		return "BSR", fmt.Sprintf("$%06X", uint32(target))
	}
	return "B" + ccName(cc), fmt.Sprintf("$%06X", uint32(target))
}

var shiftMnemonics = [4][2]string{
	{"ASR", "ASL"},
	{"LSR", "LSL"},
	{"ROXR", "ROXL"},
	{"ROR", "ROL"},
}

// decodeShift covers both the register-direct shift/rotate form (bits 7-6
// select B/W/L, bit 5 selects immediate-count vs register-count) and the
// single-bit memory-shift form (bits 7-6 == 11, operating on a word at an
// effective address).
func decodeShift(d *disasmCursor, w uint16) (string, string) {
	dir := (w >> 8) & 1
	op := (w >> 3) & 3

	if (w>>6)&3 == 3 {
		mode, reg := uint8((w>>3)&7), uint8(w&7)
		mnem := shiftMnemonics[op][dir]
		return mnem, eaOperand(d, mode, reg, Word)
	}

	sz := sizeFromBits((w >> 6) & 3)
	dn := fmtReg("D", uint8(w&7))
	mnem := shiftMnemonics[op][dir]

	if w&0x20 != 0 {
		count := fmtReg("D", uint8((w>>9)&7))
		return mnem + sz.Suffix(), count + "," + dn
	}
	count := (w >> 9) & 7
	if count == 0 {
		count = 8
	}
	return mnem + sz.Suffix(), fmt.Sprintf("#%d,%s", count, dn)
}

func decodeDBcc(d *disasmCursor, w uint16) (string, string) {
	cc := (w >> 8) & 0xF
	disp := int16(d.fetch())
	target := int32(d.pc) + int32(disp) - 2
	name := "DB" + ccName(cc)
	if cc == 1 {
		name = "DBF"
	} else if cc == 0 {
		name = "DBT"
	}
	return name, fmt.Sprintf("%s,$%06X", fmtReg("D", uint8(w&7)), uint32(target))
}

func decodeScc(d *disasmCursor, w uint16) (string, string) {
	cc := (w >> 8) & 0xF
	mode, reg := uint8((w>>3)&7), uint8(w&7)
	return "S" + ccName(cc), eaOperand(d, mode, reg, Byte)
}

func ccName(cc uint16) string {
	names := [16]string{"T", "F", "HI", "LS", "CC", "CS", "NE", "EQ", "VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE"}
	return names[cc&0xF]
}

func sizeFromBits(b uint16) Size {
	switch b {
	case 0:
		return Byte
	case 1:
		return Word
	default:
		return Long
	}
}

func immForSize(d *disasmCursor, sz Size) uint32 {
	if sz == Long {
		return d.fetchLong()
	}
	v := d.fetch()
	if sz == Byte {
		return uint32(v & 0xFF)
	}
	return uint32(v)
}

