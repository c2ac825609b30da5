package m68k

import (
	"fmt"

	"amiga68k/internal/trace"
)

// LogKind tags the category of an observable CPU event.
type LogKind int

const (
	LogMemRead LogKind = iota
	LogMemWrite
	LogRegRead
	LogRegWrite
	LogSRChange
	LogException
)

// LogEntry is one structured step-log record, emitted at the chokepoints
// where the CPU touches memory, registers, or the status register. A run
// produces a stream of these instead of free-text log lines; the driver
// decides how (or whether) to render them.
type LogEntry struct {
	Cycle uint64
	PC    uint32
	Kind  LogKind
	Size  Size
	Addr  uint32 // meaningful for LogMemRead/LogMemWrite
	Reg   string // meaningful for LogRegRead/LogRegWrite, e.g. "D3", "A7"
	Old   uint32
	New   uint32
}

// String renders an entry the way a trace consumer would print one line.
func (e LogEntry) String() string {
	switch e.Kind {
	case LogMemRead:
		return fmt.Sprintf("%06x: read%s  [%06x] -> %x", e.PC, e.Size.Suffix(), e.Addr, e.New)
	case LogMemWrite:
		return fmt.Sprintf("%06x: write%s [%06x] <- %x", e.PC, e.Size.Suffix(), e.Addr, e.New)
	case LogRegRead:
		return fmt.Sprintf("%06x: read %s -> %x", e.PC, e.Reg, e.New)
	case LogRegWrite:
		return fmt.Sprintf("%06x: %s: %x -> %x", e.PC, e.Reg, e.Old, e.New)
	case LogSRChange:
		if e.Old == e.New {
			return fmt.Sprintf("%06x: SR unchanged (%04x)", e.PC, e.New)
		}
		return fmt.Sprintf("%06x: SR: %04x -> %04x", e.PC, e.Old, e.New)
	case LogException:
		return fmt.Sprintf("%06x: exception vector %d", e.PC, e.Addr)
	default:
		return fmt.Sprintf("%06x: <unknown log entry>", e.PC)
	}
}

const defaultTraceCapacity = 1024

// traceLog is embedded into CPU; kept as a thin wrapper so CPU's zero value
// (outside New) still has a usable, if uninitialized, ring.
type traceLog struct {
	ring    *trace.Ring[LogEntry]
	enabled bool
}

func newTraceLog() traceLog {
	return traceLog{ring: trace.NewRing[LogEntry](defaultTraceCapacity)}
}

// SetTraceEnabled turns step-log emission on or off. Disabled by default:
// a headless run pays no logging cost unless a driver opts in.
func (c *CPU) SetTraceEnabled(on bool) {
	c.trace.enabled = on
}

// Drain returns every buffered log entry since the last Drain and empties
// the buffer.
func (c *CPU) Drain() []LogEntry {
	return c.trace.ring.Drain()
}

func (c *CPU) emit(e LogEntry) {
	if !c.trace.enabled {
		return
	}
	e.Cycle = c.cycles
	e.PC = c.prevPC
	c.trace.ring.Push(e)
}

func (c *CPU) logMemRead(sz Size, addr, val uint32) {
	c.emit(LogEntry{Kind: LogMemRead, Size: sz, Addr: addr, New: val})
}

func (c *CPU) logMemWrite(sz Size, addr, val uint32) {
	c.emit(LogEntry{Kind: LogMemWrite, Size: sz, Addr: addr, New: val})
}

func (c *CPU) logRegWrite(name string, sz Size, old, new uint32) {
	c.emit(LogEntry{Kind: LogRegWrite, Size: sz, Reg: name, Old: old, New: new})
}

func (c *CPU) logSRChange(old, new uint16) {
	c.emit(LogEntry{Kind: LogSRChange, New: uint32(new), Old: uint32(old)})
}

func (c *CPU) logException(vector uint8) {
	c.emit(LogEntry{Kind: LogException, Addr: uint32(vector)})
}
