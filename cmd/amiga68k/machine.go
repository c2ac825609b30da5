package main

import (
	"amiga68k/chipset"
	"amiga68k/m68k"
	"amiga68k/memory"
	"amiga68k/rom"
)

// chipRAMSize is the smallest common Amiga chip RAM configuration (512K);
// large enough for the firmware paths this emulator targets.
const chipRAMSize = 512 * 1024

// buildMachine loads the ROM at romPath and wires up a complete address
// space: chip RAM at 0, CIA-A/B and custom-chip register stubs at their
// real addresses, and Kickstart ROM mapped at rom.Base with the power-on
// overlay mirroring it into page zero until CIA-A's OVL bit is cleared.
func buildMachine(romPath string) (*m68k.CPU, *memory.Fabric, error) {
	img, err := rom.LoadImage(romPath)
	if err != nil {
		return nil, nil, err
	}

	ciaA := chipset.NewCIA("A")
	romEnd := img.Base + uint32(len(img.Data))

	fab := memory.NewFabric([]memory.RegionSpec{
		{Kind: memory.KindRAM, Start: 0, End: chipRAMSize},
		{Kind: memory.KindHandler, Start: 0xBFE000, End: 0xBFF000, Handler: ciaA},
		{Kind: memory.KindHandler, Start: 0xBFD000, End: 0xBFE000, Handler: chipset.NewCIA("B")},
		{Kind: memory.KindHandler, Start: 0xDFF000, End: 0xE00000, Handler: &chipset.Custom{}},
		{Kind: memory.KindROM, Start: img.Base, End: romEnd, Data: img.Data},
	})
	ciaA.AttachOverlayTarget(fab)
	fab.SetOverlaySource(img.Base, romEnd)
	fab.Reset()

	cpu := m68k.New(fab) // New already performs the initial reset
	return cpu, fab, nil
}
