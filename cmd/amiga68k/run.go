package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// clockHz is the PAL Amiga's 68000 bus clock; the pacing loop uses this to
// convert a wall-clock tick into a cycle budget instead of running flat out.
const clockHz = 7_093_790

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func newRunCmd() *cobra.Command {
	var ticksPerSecond int
	var maxSeconds float64
	var trace bool

	cmd := &cobra.Command{
		Use:   "run <kickstart.rom>",
		Short: "Run a Kickstart image at (approximately) real Amiga speed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu, _, err := buildMachine(args[0])
			if err != nil {
				return err
			}
			cpu.SetTraceEnabled(trace)

			tickInterval := time.Second / time.Duration(ticksPerSecond)
			cyclesPerTick := int(clockHz / ticksPerSecond)

			ticker := time.NewTicker(tickInterval)
			defer ticker.Stop()

			deadline := time.Now().Add(time.Duration(maxSeconds * float64(time.Second)))
			fmt.Println(infoStyle.Render(fmt.Sprintf(
				"running at %d Hz (%d cycles/tick), overlay=%v", clockHz, cyclesPerTick, true)))

			for range ticker.C {
				for budget := cyclesPerTick; budget > 0; {
					n := cpu.StepCycles(budget)
					if n == 0 || cpu.Err() != nil || cpu.Halted() {
						break
					}
					budget -= n
				}
				if trace {
					for _, e := range cpu.Drain() {
						fmt.Println(e)
					}
				}
				if err := cpu.Err(); err != nil {
					fmt.Println(errStyle.Render(fmt.Sprintf("halted: %v at pc=%06x", err, cpu.PC())))
					return nil
				}
				if cpu.Halted() {
					fmt.Println(errStyle.Render(fmt.Sprintf("address error halt at pc=%06x", cpu.PC())))
					return nil
				}
				if maxSeconds > 0 && time.Now().After(deadline) {
					fmt.Println(infoStyle.Render("max run time reached"))
					return nil
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&ticksPerSecond, "rate", 50, "pacing ticks per second (PAL vblank default)")
	cmd.Flags().Float64Var(&maxSeconds, "max-seconds", 0, "stop after this many wall-clock seconds (0 = run forever)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the structured step-log")

	return cmd
}
