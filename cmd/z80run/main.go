// Command z80run hosts the cpu package's diagnostic ROMs and the Space
// Invaders cabinet from the command line: a CP/M-shaped console runner
// for cpudiag/exerciser/zexdoc/zexall images, plus an ebiten window for
// the arcade ROM.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/z80cabinet/core/cpu"
	"github.com/z80cabinet/core/diag"
	"github.com/z80cabinet/core/invaders"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80run",
		Short: "Run Z80/8080 diagnostic ROMs and the Space Invaders cabinet",
	}

	var modeStr string
	var step bool

	diagCmd := &cobra.Command{
		Use:   "diag [rom]",
		Short: "Run a CP/M-style diagnostic ROM (cpudiag, 8080exer, zexdoc, zexall)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(modeStr)
			if err != nil {
				return err
			}
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("z80run: %w", err)
			}

			host := diag.New(mode)
			if err := host.Load(rom); err != nil {
				return err
			}

			var result diag.Result
			if step {
				result, err = diag.NewStepper(host, os.Stdout).Run()
			} else {
				result, err = host.Run()
			}
			fmt.Print(host.Output())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "\n[z80run] steps=%d warmBoot=%v halted=%v checksum=0x%08X\n",
				result.Steps, result.WarmBoot, result.Halted, host.Checksum())
			return nil
		},
	}
	diagCmd.Flags().StringVar(&modeStr, "mode", "z80", "CPU mode: z80 or 8080")
	diagCmd.Flags().BoolVar(&step, "step", false, "Single-step interactively, dumping registers each instruction")

	invadersCmd := &cobra.Command{
		Use:   "invaders [rom]",
		Short: "Run the Space Invaders cabinet ROM in an ebiten window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("z80run: %w", err)
			}
			cab, err := invaders.New(rom)
			if err != nil {
				return err
			}
			display := invaders.NewDisplay(cab)
			ebiten.SetWindowTitle("z80run — Space Invaders")
			ebiten.SetWindowSize(224*3, 256*3)
			return ebiten.RunGame(display)
		},
	}

	rootCmd.AddCommand(diagCmd, invadersCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseMode(s string) (cpu.Mode, error) {
	switch strings.ToLower(s) {
	case "z80", "":
		return cpu.ModeZ80, nil
	case "8080":
		return cpu.Mode8080, nil
	default:
		return 0, fmt.Errorf("z80run: unknown --mode %q (want z80 or 8080)", s)
	}
}
