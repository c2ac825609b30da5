// Package annotate supplies human-readable labels for well-known Kickstart
// ROM addresses, for use in a disassembly listing or the debug TUI. It is
// a static lookup table, not a ROM parser: entries are only as good as the
// Kickstart revision they were recorded against.
package annotate

// entries maps a ROM address to a short label for common 1.2/1.3
// Kickstart entry points. Addresses are absolute, matching rom.Base's
// 0xF80000 mapping.
var entries = map[uint32]string{
	0xF80000: "reset: initial SSP",
	0xF80004: "reset: initial PC",
	0xFC0000: "Kickstart 1.2/1.3 cold-start entry",
	0xFE0000: "exec.library base (typical)",
}

// Lookup returns the label recorded for addr and whether one exists.
func Lookup(addr uint32) (string, bool) {
	s, ok := entries[addr]
	return s, ok
}

// Add registers or overrides a label, for a caller that has identified an
// entry point beyond the built-in set (e.g. from a symbol map).
func Add(addr uint32, label string) {
	entries[addr] = label
}
