package m68k

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 104

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// Bus references are not included.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	off += putRegisters(buf[off:], c.reg)

	be.PutUint64(buf[off:], c.cycles)
	off += 8
	be.PutUint16(buf[off:], c.ir)
	off += 2

	buf[off] = boolByte(c.stopped)
	off++
	buf[off] = boolByte(c.halted)
	off++

	be.PutUint32(buf[off:], c.prevPC)
	off += 4

	buf[off] = c.pendingIPL
	off++

	if c.pendingVec != nil {
		buf[off] = 1
		buf[off+1] = *c.pendingVec
	} else {
		buf[off] = 0
		buf[off+1] = 0
	}
	off += 2

	be.PutUint32(buf[off:], uint32(int32(c.deficit)))
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// putRegisters writes the programmer-visible Registers fields to buf in the
// same layout getRegisters reads back, and returns the number of bytes
// written. Kept as a pair with getRegisters so the on-wire register layout
// has one definition instead of being duplicated across Serialize and
// Deserialize.
func putRegisters(buf []byte, r Registers) int {
	be := binary.BigEndian
	off := 0
	for i := 0; i < 8; i++ {
		be.PutUint32(buf[off:], r.D[i])
		off += 4
	}
	for i := 0; i < 8; i++ {
		be.PutUint32(buf[off:], r.A[i])
		off += 4
	}
	be.PutUint32(buf[off:], r.PC)
	off += 4
	be.PutUint16(buf[off:], r.SR)
	off += 2
	be.PutUint32(buf[off:], r.USP)
	off += 4
	be.PutUint32(buf[off:], r.SSP)
	off += 4
	be.PutUint16(buf[off:], r.IR)
	off += 2
	return off
}

// getRegisters is putRegisters' inverse.
func getRegisters(buf []byte) (Registers, int) {
	be := binary.BigEndian
	var r Registers
	off := 0
	for i := 0; i < 8; i++ {
		r.D[i] = be.Uint32(buf[off:])
		off += 4
	}
	for i := 0; i < 8; i++ {
		r.A[i] = be.Uint32(buf[off:])
		off += 4
	}
	r.PC = be.Uint32(buf[off:])
	off += 4
	r.SR = be.Uint16(buf[off:])
	off += 2
	r.USP = be.Uint32(buf[off:])
	off += 4
	r.SSP = be.Uint32(buf[off:])
	off += 4
	r.IR = be.Uint16(buf[off:])
	off += 2
	return r, off
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The bus and cycleBus fields are left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("m68k: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	regs, n := getRegisters(buf[off:])
	c.reg = regs
	off += n

	c.cycles = be.Uint64(buf[off:])
	off += 8
	c.ir = be.Uint16(buf[off:])
	off += 2

	c.stopped = buf[off] != 0
	off++
	c.halted = buf[off] != 0
	off++

	c.prevPC = be.Uint32(buf[off:])
	off += 4

	c.pendingIPL = buf[off]
	off++

	if buf[off] != 0 {
		v := buf[off+1]
		c.pendingVec = &v
	} else {
		c.pendingVec = nil
	}
	off += 2

	c.deficit = int(int32(be.Uint32(buf[off:])))
	return nil
}
