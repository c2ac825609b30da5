package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"amiga68k/annotate"
	"amiga68k/m68k"
)

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <kickstart.rom>",
		Short: "Step an interactive disassembly/register inspector TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu, _, err := buildMachine(args[0])
			if err != nil {
				return err
			}
			cpu.SetTraceEnabled(true)

			m, err := tea.NewProgram(debugModel{cpu: cpu}).Run()
			if err != nil {
				return err
			}
			if final := m.(debugModel); final.lastErr != nil {
				fmt.Println("halted:", final.lastErr)
			}
			return nil
		},
	}
	return cmd
}

// debugModel is a bubbletea model stepping one instruction at a time,
// showing the upcoming disassembly window, registers, and the most
// recent step-log entries.
type debugModel struct {
	cpu     *m68k.CPU
	prevPC  uint32
	lastErr error
}

func (m debugModel) Init() tea.Cmd {
	return nil
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			m.prevPC = m.cpu.PC()
			m.cpu.Step()
			if err := m.cpu.Err(); err != nil {
				m.lastErr = err
				return m, tea.Quit
			}
			if m.cpu.Halted() {
				m.lastErr = fmt.Errorf("address error halt")
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// disasmWindow renders count instructions starting at the current PC.
func (m debugModel) disasmWindow(count int) string {
	var lines []string
	addr := m.cpu.PC()
	for i := 0; i < count; i++ {
		in := m.cpu.Disassemble(addr)
		label := ""
		if name, ok := annotate.Lookup(in.Address); ok {
			label = "  ; " + name
		}
		marker := "  "
		if in.Address == m.cpu.PC() {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%06x  %-28s%s", marker, in.Address, in.String(), label))
		addr = in.AddressNext
	}
	return strings.Join(lines, "\n")
}

func (m debugModel) registers() string {
	r := m.cpu.Registers()
	var b strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "D%d=%08x  A%d=%08x\n", i, r.D[i], i, r.A[i])
	}
	fmt.Fprintf(&b, "PC=%06x (was %06x)  SR=%04x\n", r.PC, m.prevPC, r.SR)
	return b.String()
}

func (m debugModel) recentLog() string {
	entries := m.cpu.Drain()
	if len(entries) == 0 {
		return "(no step-log activity)"
	}
	start := 0
	if len(entries) > 12 {
		start = len(entries) - 12
	}
	var lines []string
	for _, e := range entries[start:] {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}

var (
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m debugModel) View() string {
	disasm := paneStyle.Render(titleStyle.Render("disassembly") + "\n" + m.disasmWindow(10))
	regs := paneStyle.Render(titleStyle.Render("registers") + "\n" + m.registers())
	log := paneStyle.Render(titleStyle.Render("step-log") + "\n" + m.recentLog())
	inspector := paneStyle.Render(titleStyle.Render("registers (spew)") + "\n" + spew.Sdump(m.cpu.Registers()))

	top := lipgloss.JoinHorizontal(lipgloss.Top, disasm, regs)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, log, inspector)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, "space/n: step   q: quit")
}
