package m68k

// opFunc is the handler signature for a single MC68000 instruction.
// The first word of the instruction is already in c.ir when called.
type opFunc func(*CPU)

// opcodeTable is a 64K-entry lookup table indexed by the first instruction word.
// nil entries are treated as illegal instructions.
var opcodeTable [65536]opFunc

// Instruction is the result of a non-executing decode: the text form of the
// instruction at an address, plus its extent, so a caller (disassembler
// view, trace annotator) never has to execute guest code to describe it.
type Instruction struct {
	Address     uint32
	AddressNext uint32 // address of the following instruction
	Mnemonic    string
	Operands    string
}

// String renders the instruction the way a listing would: mnemonic, a
// space, then comma-separated operands.
func (in Instruction) String() string {
	if in.Operands == "" {
		return in.Mnemonic
	}
	return in.Mnemonic + " " + in.Operands
}
