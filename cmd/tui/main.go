// Command tui is an interactive stepping dashboard: it loads a binary
// image, lets the operator single-step the emulator with the space bar,
// and renders a memory page, the register file and the LogLine of the
// last executed step.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/jawr/soft65c02/cpu"
	"github.com/jawr/soft65c02/memory"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pcCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	mem     *memory.Memory
	regs    *cpu.Registers
	page    uint16
	lastLog cpu.LogLine
	err     error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		if m.err != nil {
			return m, nil
		}
		line, err := cpu.ExecuteStep(m.regs, m.mem)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.lastLog = line
		m.page = line.Address &^ 0x0F
	}
	return m, nil
}

func (m model) renderPage() string {
	start := m.page
	row := fmt.Sprintf("%04X | ", start)
	b, _ := m.mem.Read(int(start), 16)
	for i, v := range b {
		addr := start + uint16(i)
		if addr == m.regs.PC {
			row += pcCellStyle.Render(fmt.Sprintf("[%02X]", v)) + " "
		} else {
			row += fmt.Sprintf(" %02X  ", v)
		}
	}
	return row
}

func (m model) status() string {
	return fmt.Sprintf(
		"PC: $%04X\nA:  $%02X\nX:  $%02X\nY:  $%02X\nS:  $%02X\nP:  %s\ncycles: %d",
		m.regs.PC, m.regs.A, m.regs.X, m.regs.Y, m.regs.S, m.regs.FormatStatus(), m.regs.Cycles,
	)
}

func (m model) View() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("memory"),
		m.renderPage(),
		"",
		headerStyle.Render("registers"),
		m.status(),
		"",
		headerStyle.Render("last step"),
		m.lastLog.String(),
		"",
		"space/j: step   q: quit",
	)
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", errorStyle.Render(m.err.Error()))
	}
	return body
}

func main() {
	var imagePath string
	var start uint16
	pflag.StringVarP(&imagePath, "image", "i", "", "path to the binary image to load at $0000")
	pflag.Uint16VarP(&start, "start", "s", 0, "initial PC; 0 reads the reset vector at $FFFC")
	pflag.Parse()

	if imagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: tui --image <path> [--start 0xNNNN]")
		os.Exit(2)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mem, err := memory.NewFromImage(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	regs := cpu.NewInitialized(start)
	if start == 0 {
		regs, err = cpu.ResetFromVector(mem)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	initial := model{mem: mem, regs: regs, page: regs.PC &^ 0x0F}
	if _, err := tea.NewProgram(initial).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
