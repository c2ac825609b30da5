// Command amiga68k runs or steps through an Amiga Kickstart ROM image
// against the m68k core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "amiga68k",
		Short: "MC68000 emulator driver for Amiga Kickstart ROM images",
	}

	rootCmd.AddCommand(newRunCmd(), newDebugCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
