package m68k

import "errors"

// Emulator-internal errors indicate a bug in the emulator itself or an
// unimplemented instruction path. Unlike guest-visible exceptions (see
// exception.go) these never vector through the guest's table: they abort
// the current instruction without advancing PC and are surfaced to the
// driver via (*CPU).Err after Step returns.
var (
	// ErrUnknownOpcode names a dispatch-table miss. It is declared but not
	// raised: Step vectors every opcode with no handler as a guest exception
	// (Line-A, Line-F, or illegal instruction), so a table miss never
	// reaches the driver as an internal error.
	ErrUnknownOpcode = errors.New("m68k: unknown opcode (dispatch table miss)")

	// ErrFullExtensionUnimplemented is raised when an indexed effective
	// address uses the post-68000 "full" extension word format (base/outer
	// displacement, memory indirection). Decoded but not executed; see
	// ea.go and SPEC_FULL.md §12.
	ErrFullExtensionUnimplemented = errors.New("m68k: full extension word addressing not implemented")

	// ErrMalformedExtensionWord names an extension word whose bits encode a
	// combination the decoder cannot interpret. It is declared but not
	// raised: calcIndex splits brief from full format on bit 8 alone and
	// accepts every brief-format bit pattern.
	ErrMalformedExtensionWord = errors.New("m68k: malformed extension word")

	// ErrInvalidRegisterIndex is raised by resolveEA when address-register
	// direct is used with a byte operand size, a combination no opcode-table
	// entry registers.
	ErrInvalidRegisterIndex = errors.New("m68k: invalid register index")

	// ErrControlRegisterUnimplemented is raised by MOVEC, which is decoded
	// (so the dispatcher doesn't misclassify it as illegal) but not
	// executed: the MC68000 has no MOVEC-addressable control registers.
	ErrControlRegisterUnimplemented = errors.New("m68k: MOVEC control register not implemented on this core")
)
