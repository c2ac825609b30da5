// Package memory implements the address-space fabric the CPU core talks
// to through the m68k.Bus interface: an ordered list of address regions
// (RAM, ROM, peripheral register windows) plus the Amiga's power-on
// ROM/RAM overlay.
package memory

// Kind tags what a Region's address window is backed by.
type Kind int

const (
	KindRAM Kind = iota
	KindROM
	KindHandler    // delegates to a RegionHandler (CIA, custom chips, ...)
	KindCIAOverlay // synthetic: mirrors a ROM region into page zero
	KindUnmapped
)

// RegionHandler is implemented by a peripheral that wants to own a window
// of address space without the memory package importing its concrete type
// — the same inverted-dependency shape as m68k.CycleBus being an optional
// interface the core never names directly.
type RegionHandler interface {
	ReadByte(addr uint32) byte
	WriteByte(addr uint32, v byte)
}

// RegionSpec describes one address window before a Fabric is built.
type RegionSpec struct {
	Kind    Kind
	Start   uint32 // inclusive
	End     uint32 // exclusive
	Data    []byte // initial contents for KindRAM/KindROM; copied, not retained
	Handler RegionHandler
}

// region is the runtime form of a RegionSpec: Data is live backing storage
// for RAM/ROM, owned by this region.
type region struct {
	kind    Kind
	start   uint32
	end     uint32
	data    []byte
	handler RegionHandler
}

func (r *region) contains(addr uint32) bool {
	return addr >= r.start && addr < r.end
}

func (r *region) readByte(addr uint32) byte {
	switch r.kind {
	case KindRAM, KindROM, KindCIAOverlay:
		off := addr - r.start
		if int(off) >= len(r.data) {
			return 0
		}
		return r.data[off]
	case KindHandler:
		return r.handler.ReadByte(addr)
	default:
		return 0xFF // unmapped reads float high on real hardware
	}
}

func (r *region) writeByte(addr uint32, v byte) {
	switch r.kind {
	case KindRAM:
		off := addr - r.start
		if int(off) < len(r.data) {
			r.data[off] = v
		}
	case KindHandler:
		r.handler.WriteByte(addr, v)
	case KindROM, KindCIAOverlay, KindUnmapped:
		// Writes to ROM, the overlay mirror, or unmapped space are silently
		// dropped at the region level; Fabric logs them before dispatching.
	}
}
