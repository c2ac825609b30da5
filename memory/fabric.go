package memory

import (
	"log"

	"amiga68k/m68k"
)

// Fabric is an ordered list of address regions presented to the CPU core
// as a single m68k.Bus. Dispatch walks the list and uses the first region
// whose [start,end) window contains the address; an address inside no
// region falls through to a synthetic catch-all Unmapped region.
//
// Grounded on the range-dispatch-with-veto shape of a bus wired across
// several backing devices: each access is tried against regions in order
// rather than computed from the address directly, so a CIA-overlay window
// can intercept low memory ahead of its normal ROM/RAM mapping without the
// other regions knowing about it.
type Fabric struct {
	regions  []*region
	unmapped *region

	overlay    bool
	overlaySrc *region   // ROM region the overlay mirrors
	overlayWin *region   // synthetic KindCIAOverlay region, prepended while overlay is set
	dispatch   []*region // regions with overlayWin conditionally prepended
}

var _ m68k.Bus = (*Fabric)(nil)

// NewFabric builds a Fabric from specs. Data slices are copied so the
// caller's backing arrays can be reused or discarded afterward.
func NewFabric(specs []RegionSpec) *Fabric {
	f := &Fabric{
		unmapped: &region{kind: KindUnmapped, start: 0, end: 0x1000000},
	}
	for _, s := range specs {
		r := &region{kind: s.Kind, start: s.Start, end: s.End, handler: s.Handler}
		if s.Kind == KindRAM || s.Kind == KindROM {
			r.data = make([]byte, s.End-s.Start)
			copy(r.data, s.Data)
		}
		f.regions = append(f.regions, r)
	}
	f.dispatch = f.regions
	return f
}

// SetOverlay toggles the Amiga power-on overlay: while true, a synthetic
// KindCIAOverlay region mirroring the overlay source is prepended ahead of
// every other region, so the low window reads as ROM regardless of what's
// mapped there normally. Real hardware clears this from software the first
// time it touches CIA port A's OVL bit; the chipset package owns that
// transition and calls SetOverlay, Fabric only implements the mechanism.
func (f *Fabric) SetOverlay(on bool) {
	f.overlay = on
	if on && f.overlayWin != nil {
		f.dispatch = append([]*region{f.overlayWin}, f.regions...)
	} else {
		f.dispatch = f.regions
	}
}

// SetOverlaySource designates the region (normally Kickstart ROM) that the
// overlay window mirrors into address 0 while the overlay is active.
func (f *Fabric) SetOverlaySource(start, end uint32) {
	for _, r := range f.regions {
		if r.start == start && r.end == end {
			f.overlaySrc = r
			f.overlayWin = &region{
				kind:  KindCIAOverlay,
				start: 0,
				end:   end - start,
				data:  r.data, // mirrors the same backing bytes, not a copy
			}
			if f.overlay {
				f.dispatch = append([]*region{f.overlayWin}, f.regions...)
			}
			return
		}
	}
}

func (f *Fabric) findRegion(addr uint32) *region {
	for _, r := range f.dispatch {
		if r.contains(addr) {
			return r
		}
	}
	return f.unmapped
}

func (f *Fabric) readByteAt(addr uint32) byte {
	return f.findRegion(addr).readByte(addr)
}

func (f *Fabric) writeByteAt(addr uint32, v byte) {
	r := f.findRegion(addr)
	switch r.kind {
	case KindROM, KindCIAOverlay:
		log.Printf("[memory] write to read-only region kind=%d addr=%06x val=%02x", r.kind, addr, v)
	case KindUnmapped:
		log.Printf("[memory] write to unmapped addr=%06x val=%02x", addr, v)
	}
	r.writeByte(addr, v)
}

// Read implements m68k.Bus: big-endian composition of 1, 2, or 4 bytes.
func (f *Fabric) Read(op m68k.Size, addr uint32) uint32 {
	switch op {
	case m68k.Byte:
		return uint32(f.readByteAt(addr))
	case m68k.Word:
		hi := uint32(f.readByteAt(addr))
		lo := uint32(f.readByteAt(addr + 1))
		return hi<<8 | lo
	default: // Long
		b0 := uint32(f.readByteAt(addr))
		b1 := uint32(f.readByteAt(addr + 1))
		b2 := uint32(f.readByteAt(addr + 2))
		b3 := uint32(f.readByteAt(addr + 3))
		return b0<<24 | b1<<16 | b2<<8 | b3
	}
}

// Write implements m68k.Bus: big-endian decomposition of 1, 2, or 4 bytes.
func (f *Fabric) Write(op m68k.Size, addr uint32, val uint32) {
	switch op {
	case m68k.Byte:
		f.writeByteAt(addr, byte(val))
	case m68k.Word:
		f.writeByteAt(addr, byte(val>>8))
		f.writeByteAt(addr+1, byte(val))
	default: // Long
		f.writeByteAt(addr, byte(val>>24))
		f.writeByteAt(addr+1, byte(val>>16))
		f.writeByteAt(addr+2, byte(val>>8))
		f.writeByteAt(addr+3, byte(val))
	}
}

// Reset clears all RAM regions to zero and restores the power-on overlay.
// Kickstart ROM regions and peripheral handlers are left untouched; the
// handlers' own state (for example a CIA's overlay bit) is not reset here.
func (f *Fabric) Reset() {
	for _, r := range f.regions {
		if r.kind == KindRAM {
			for i := range r.data {
				r.data[i] = 0
			}
		}
	}
	f.SetOverlay(true)
}
