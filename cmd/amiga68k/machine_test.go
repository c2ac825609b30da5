package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"amiga68k/m68k"
)

// minimalROM is a synthetic 10-byte Kickstart image: initial SSP, initial
// PC (pointing right after itself), then a single NOP the CPU can step.
var minimalROM = []byte{
	0x00, 0x00, 0x10, 0x00, // initial SSP = 0x1000 (chip RAM)
	0x00, 0xF8, 0x00, 0x08, // initial PC = 0xF80008
	0x4E, 0x71, // NOP
}

func writeROM(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kick.rom")
	require.NoError(t, os.WriteFile(path, minimalROM, 0o644))
	return path
}

func TestBuildMachineBootsFromResetVector(t *testing.T) {
	cpu, _, err := buildMachine(writeROM(t))
	require.NoError(t, err)
	require.Equal(t, uint32(0xF80008), cpu.PC())
}

func TestBuildMachineOverlayMirrorsROMUntilCIAWrite(t *testing.T) {
	_, fab, err := buildMachine(writeROM(t))
	require.NoError(t, err)

	// Page zero should read as the overlay-mirrored reset vector while the
	// overlay is active, matching what the reset sequence itself just read.
	require.Equal(t, uint32(0x00001000), fab.Read(m68k.Long, 0))

	fab.Write(m68k.Byte, 0xBFE000, 0x00) // clear OVL via CIA-A port A
	require.Equal(t, uint32(0), fab.Read(m68k.Long, 0), "page zero should now be chip RAM")
}
