// Command mos6502 loads a binary image into the emulator's memory and
// drives it with execute_step, either to completion or one instruction at
// a time under operator control. Image loading, process control and
// terminal I/O all live here, outside the core: the core only ever sees a
// *memory.Memory and a *cpu.Registers.
package main

import (
	"fmt"
	"log"
	"os"

	term "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"

	"github.com/jawr/soft65c02/cpu"
	"github.com/jawr/soft65c02/memory"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mos6502",
		Short: "run or disassemble a 65C02 binary image",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDisasmCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		imagePath string
		start     uint16
		stop      uint16
		stepMode  bool
		trapWatch bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "execute an image until it halts",
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loadImage(imagePath)
			if err != nil {
				return err
			}

			regs := cpu.NewInitialized(start)
			if start == 0 {
				regs, err = cpu.ResetFromVector(mem)
				if err != nil {
					return err
				}
			}

			if stepMode {
				return runStepping(regs, mem, stop, trapWatch)
			}
			return runToCompletion(regs, mem, stop, trapWatch)
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "path to the binary image to load at $0000")
	cmd.Flags().Uint16VarP(&start, "start", "s", 0, "initial PC; 0 reads the reset vector at $FFFC")
	cmd.Flags().Uint16Var(&stop, "stop", 0, "PC value that halts the run when reached (0 disables)")
	cmd.Flags().BoolVar(&stepMode, "step", false, "wait for Enter between instructions, showing each LogLine")
	cmd.Flags().BoolVar(&trapWatch, "detect-loops", false, "abort the run if PC settles into a repeating cycle")
	cmd.MarkFlagRequired("image")

	return cmd
}

func newDisasmCmd() *cobra.Command {
	var (
		imagePath string
		start     uint16
		end       uint16
	)

	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "disassemble an address range of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loadImage(imagePath)
			if err != nil {
				return err
			}

			instructions, err := cpu.Disassemble(start, end, mem)
			if err != nil {
				return err
			}
			for _, ins := range instructions {
				fmt.Printf("#0x%04X: %s %s\n", ins.Address, ins.Mnemonic, ins.Mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "path to the binary image to load at $0000")
	cmd.Flags().Uint16VarP(&start, "start", "s", 0, "first address to disassemble")
	cmd.Flags().Uint16VarP(&end, "end", "e", 0xFFFF, "last address to disassemble")
	cmd.MarkFlagRequired("image")

	return cmd
}

func loadImage(path string) (*memory.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	mem, err := memory.NewFromImage(data)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	log.Printf("loaded image: %s (%d bytes)", path, len(data))
	return mem, nil
}

// runToCompletion drives execute_step until PC stops advancing, a loop
// trap fires, or the stop address is reached.
func runToCompletion(regs *cpu.Registers, mem *memory.Memory, stop uint16, trapWatch bool) error {
	var trap cpu.LoopTrap
	for {
		lastPC := regs.PC
		line, err := cpu.ExecuteStep(regs, mem)
		if err != nil {
			return err
		}
		if stop != 0 && regs.PC == stop {
			log.Printf("reached stop address $%04X after %d cycles", stop, regs.Cycles)
			return nil
		}
		if regs.PC == lastPC {
			log.Printf("halted: %s", line)
			return nil
		}
		if trapWatch {
			trap.Observe(regs.PC)
			if trap.Tripped() {
				return fmt.Errorf("detected a repeating PC cycle around $%04X", regs.PC)
			}
		}
	}
}

// runStepping is the interactive twin of runToCompletion: it prints each
// LogLine and waits for Enter before advancing, with Ctrl-C exiting
// cleanly at any step boundary.
func runStepping(regs *cpu.Registers, mem *memory.Memory, stop uint16, trapWatch bool) error {
	if err := term.Init(); err != nil {
		return fmt.Errorf("initializing termbox: %w", err)
	}
	defer term.Close()

	var trap cpu.LoopTrap
	for {
		lastPC := regs.PC
		line, err := cpu.ExecuteStep(regs, mem)
		if err != nil {
			return err
		}

		term.Sync()
		fmt.Println(line)
		fmt.Println(regs.FormatStatus())

		if stop != 0 && regs.PC == stop {
			return nil
		}
		if regs.PC == lastPC {
			return nil
		}
		if trapWatch {
			trap.Observe(regs.PC)
			if trap.Tripped() {
				return fmt.Errorf("detected a repeating PC cycle around $%04X", regs.PC)
			}
		}

		ev := term.PollEvent()
		for ev.Type != term.EventKey || (ev.Key != term.KeyEnter && ev.Key != term.KeyCtrlC) {
			ev = term.PollEvent()
		}
		if ev.Key == term.KeyCtrlC {
			return nil
		}
	}
}
