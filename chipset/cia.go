// Package chipset provides stub peripherals for the address windows the
// CPU core treats as opaque I/O: the two 8520 CIAs and the Paula/Denise/
// Agnus "custom chip" register block. Neither does anything beyond what
// the firmware under test needs to observe — deterministic stub reads,
// logged writes, and (for CIA-A) the one side effect the core's memory
// fabric actually depends on: clearing the power-on ROM overlay.
package chipset

import "amiga68k/memory"

// ciaOverlay is implemented by *memory.Fabric; CIA only needs the one
// method, so it depends on this narrow interface rather than the whole
// fabric type — the same inverted-dependency shape memory.RegionHandler
// uses to keep chipset out of memory's import graph.
type ciaOverlay interface {
	SetOverlay(on bool)
}

// CIA register offsets within its 16-byte-spaced register window
// (only port A, used for the OVL bit, is given real semantics).
const (
	regPRA  = 0x0 // Peripheral Register A: bit 0 is OVL
	regPRB  = 0x1
	regDDRA = 0x2
	regDDRB = 0x3
	regTALO = 0x4
	regTAHI = 0x5
	regTBLO = 0x6
	regTBHI = 0x7
)

const ovlBit = 0x01

// CIA models one 8520 complex interface adapter as a memory.RegionHandler.
// It is registered into a memory.Fabric at the CIA's address window; the
// fabric never imports this package, only the interface it satisfies.
type CIA struct {
	name    string
	fabric  ciaOverlay
	pra     byte
	prb     byte
	ddra    byte
	ddrb    byte
	ta, tb  uint16
	overlay bool // current OVL bit, mirrored locally for reads
}

// NewCIA constructs a CIA stub. name is used only in log output
// ("A" or "B" conventionally). The OVL side effect target is nil until
// AttachOverlayTarget is called — CIA-B never gets one, since only CIA-A's
// port A drives the overlay.
func NewCIA(name string) *CIA {
	return &CIA{name: name, pra: 0xFF, overlay: true}
}

// AttachOverlayTarget wires the memory fabric CIA-A's OVL bit controls.
// Deferred from NewCIA because the fabric is normally built from a region
// list that includes this CIA, so the two can't be constructed in one step.
func (c *CIA) AttachOverlayTarget(f ciaOverlay) {
	c.fabric = f
}

var _ memory.RegionHandler = (*CIA)(nil)

// ReadByte returns the stub register value. Registers are mirrored every
// 16 bytes across the CIA's full address window, as on real hardware
// (only the low 4 bits of the address select the register).
func (c *CIA) ReadByte(addr uint32) byte {
	switch addr & 0xF {
	case regPRA:
		return c.pra
	case regPRB:
		return c.prb
	case regDDRA:
		return c.ddra
	case regDDRB:
		return c.ddrb
	case regTALO:
		return byte(c.ta)
	case regTAHI:
		return byte(c.ta >> 8)
	case regTBLO:
		return byte(c.tb)
	case regTBHI:
		return byte(c.tb >> 8)
	default:
		return 0
	}
}

// WriteByte updates the stub register and, for port A, reacts to the OVL
// bit: clearing it tells the fabric to stop mirroring ROM into page zero,
// exactly the firmware sequence spec.md's overlay description names.
func (c *CIA) WriteByte(addr uint32, v byte) {
	switch addr & 0xF {
	case regPRA:
		c.pra = v
		overlay := v&ovlBit != 0
		if overlay != c.overlay && c.fabric != nil {
			c.fabric.SetOverlay(overlay)
		}
		c.overlay = overlay
	case regPRB:
		c.prb = v
	case regDDRA:
		c.ddra = v
	case regDDRB:
		c.ddrb = v
	case regTALO:
		c.ta = c.ta&0xFF00 | uint16(v)
	case regTAHI:
		c.ta = c.ta&0x00FF | uint16(v)<<8
	case regTBLO:
		c.tb = c.tb&0xFF00 | uint16(v)
	case regTBHI:
		c.tb = c.tb&0x00FF | uint16(v)<<8
	}
}
