package memory

import (
	"testing"

	"amiga68k/m68k"

	"github.com/stretchr/testify/require"
)

func TestFabricRAMRoundTrip(t *testing.T) {
	f := NewFabric([]RegionSpec{
		{Kind: KindRAM, Start: 0, End: 0x1000},
	})

	f.Write(m68k.Long, 0x10, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), f.Read(m68k.Long, 0x10))
	require.Equal(t, uint32(0xDEAD), f.Read(m68k.Word, 0x10))
	require.Equal(t, uint32(0xDE), f.Read(m68k.Byte, 0x10))
}

func TestFabricROMIsReadOnly(t *testing.T) {
	f := NewFabric([]RegionSpec{
		{Kind: KindROM, Start: 0xF80000, End: 0xF80000 + 4, Data: []byte{0x11, 0x22, 0x33, 0x44}},
	})

	f.Write(m68k.Byte, 0xF80000, 0xFF)
	require.Equal(t, uint32(0x11), f.Read(m68k.Byte, 0xF80000), "write to ROM must be dropped")
}

func TestFabricUnmappedReadsFloatHigh(t *testing.T) {
	f := NewFabric(nil)
	require.Equal(t, uint32(0xFFFFFFFF), f.Read(m68k.Long, 0x500000))
}

func TestFabricRegionPriorityFirstMatchWins(t *testing.T) {
	f := NewFabric([]RegionSpec{
		{Kind: KindROM, Start: 0, End: 0x1000, Data: []byte{0xAA}},
		{Kind: KindRAM, Start: 0, End: 0x1000},
	})
	// The ROM region is registered first, so it shadows the RAM region
	// below it rather than the two being merged.
	require.Equal(t, uint32(0xAA), f.Read(m68k.Byte, 0))
}

type stubHandler struct {
	reads, writes int
	last          byte
}

func (s *stubHandler) ReadByte(addr uint32) byte {
	s.reads++
	return 0x42
}

func (s *stubHandler) WriteByte(addr uint32, v byte) {
	s.writes++
	s.last = v
}

func TestFabricHandlerRegion(t *testing.T) {
	h := &stubHandler{}
	f := NewFabric([]RegionSpec{
		{Kind: KindHandler, Start: 0xBFD000, End: 0xBFE000, Handler: h},
	})

	require.Equal(t, uint32(0x42), f.Read(m68k.Byte, 0xBFD000))
	f.Write(m68k.Byte, 0xBFD001, 0x7)
	require.Equal(t, 1, h.reads)
	require.Equal(t, 1, h.writes)
	require.Equal(t, byte(0x7), h.last)
}

func TestFabricOverlayMirrorsROMToPageZero(t *testing.T) {
	f := NewFabric([]RegionSpec{
		{Kind: KindROM, Start: 0xF80000, End: 0xF80000 + 8, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{Kind: KindRAM, Start: 0, End: 0x1000},
	})
	f.SetOverlaySource(0xF80000, 0xF80000+8)
	f.SetOverlay(true)

	require.Equal(t, uint32(1), f.Read(m68k.Byte, 0), "overlay should mirror ROM at address 0")

	f.SetOverlay(false)
	f.Write(m68k.Byte, 0, 0x99)
	require.Equal(t, uint32(0x99), f.Read(m68k.Byte, 0), "once the overlay clears, page zero is ordinary RAM")
}

func TestFabricResetClearsRAMAndReenablesOverlay(t *testing.T) {
	f := NewFabric([]RegionSpec{
		{Kind: KindRAM, Start: 0, End: 0x10},
	})
	f.Write(m68k.Byte, 4, 0x55)
	f.SetOverlay(false)

	f.Reset()

	require.Equal(t, uint32(0), f.Read(m68k.Byte, 4))
	require.True(t, f.overlay)
}
