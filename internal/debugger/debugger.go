// Package debugger implements an interactive bubbletea TUI over the
// CPU/Bus core: a single-instruction step/continue/quit inspector that
// renders the register file and the NESTest trace line. It adds no CPU
// or Bus semantics of its own — everything it shows comes from
// CPU.Step and CPU.TraceLine.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nesgo/internal/bus"
	"nesgo/internal/cpu"
)

const historySize = 12

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	traceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	haltStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// model is the bubbletea model wrapping a running CPU/Bus pair.
type model struct {
	cpu *cpu.CPU
	bus *bus.Bus

	history []string
	running bool
	err     error
}

// New constructs a debugger model over an already-reset CPU and its
// Bus.
func New(c *cpu.CPU, b *bus.Bus) tea.Model {
	return model{cpu: c, bus: b}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.step()
		case "c":
			m.running = true
			for !m.cpu.B && m.running {
				m.step()
				if len(m.history) >= historySize {
					break
				}
			}
			m.running = false
		}
	}
	return m, nil
}

func (m *model) step() {
	if m.cpu.B {
		return
	}
	line := m.cpu.TraceLine()
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.err = fmt.Errorf("fault: %v", r)
			}
		}()
		m.cpu.Step() // Step ticks the bus (and thus the PPU) internally
	}()
	m.history = append(m.history, line)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("nesgo trace debugger") + "\n\n")

	for _, line := range m.history {
		b.WriteString(traceStyle.Render(line) + "\n")
	}
	if m.cpu.B {
		b.WriteString("\n" + haltStyle.Render("HALTED (BRK)") + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + haltStyle.Render(m.err.Error()) + "\n")
	}

	regs := fmt.Sprintf("A:%02X X:%02X Y:%02X SP:%02X P:%02X PC:%04X",
		m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, m.cpu.GetStatusByte(), m.cpu.PC)
	b.WriteString("\n" + cursorStyle.Render(regs) + "\n")
	b.WriteString("\n[space/s] step  [c] run  [q] quit\n")
	return b.String()
}

// Run starts the TUI, blocking until the user quits.
func Run(c *cpu.CPU, b *bus.Bus) error {
	_, err := tea.NewProgram(New(c, b)).Run()
	return err
}
