package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bf-runtime/engine"
	"github.com/wippyai/bf-runtime/memory"
	"github.com/wippyai/bf-runtime/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	programWindow = 48
	tapeWindow    = 12
	// Budget for "run" in the debugger when -max-steps is not given
	defaultDebugSteps = 10_000_000
)

type modelState int

const (
	stateStep modelState = iota
	stateInput
)

type interactiveModel struct {
	err          error
	vm           *engine.VM
	filename     string
	status       string
	initialInput []byte
	input        textinput.Model
	maxSteps     int64
	initialPtr   uint16
	state        modelState
}

func newInteractiveModel(vm *engine.VM, filename string, pointer uint16, input []byte, maxSteps int64) *interactiveModel {
	if maxSteps <= 0 {
		maxSteps = defaultDebugSteps
	}
	ti := textinput.New()
	ti.Placeholder = "bytes to feed"
	ti.Prompt = "input: "
	ti.Width = 40

	return &interactiveModel{
		vm:           vm,
		filename:     filename,
		initialPtr:   pointer,
		initialInput: input,
		maxSteps:     maxSteps,
		input:        ti,
		state:        stateStep,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateInput {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			data := m.input.Value()
			m.vm.Feed([]byte(data))
			m.status = fmt.Sprintf("fed %d byte(s)", len(data))
			m.input.Reset()
			m.input.Blur()
			m.state = stateStep
			return m, nil
		case "esc":
			m.input.Blur()
			m.state = stateStep
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s", "n", "right":
		m.step()

	case "r":
		m.runToEnd()

	case "i":
		m.state = stateInput
		return m, m.input.Focus()

	case "0":
		m.vm.Reset()
		m.vm.SetPointer(m.initialPtr)
		m.vm.Feed(m.initialInput)
		m.err = nil
		m.status = "reset"
	}

	return m, nil
}

func (m *interactiveModel) step() {
	done, err := m.vm.Step()
	m.err = err
	switch {
	case err != nil:
		m.status = "faulted"
	case done:
		m.status = fmt.Sprintf("halted after %d step(s)", m.vm.Steps())
	default:
		m.status = ""
	}
}

func (m *interactiveModel) runToEnd() {
	before := m.vm.Steps()
	_, err := runtime.Continue(context.Background(), m.vm, runtime.WithMaxSteps(m.maxSteps))
	m.err = err
	if err == nil {
		m.status = fmt.Sprintf("halted after %d step(s)", m.vm.Steps())
	} else {
		m.status = fmt.Sprintf("stopped after %d step(s)", m.vm.Steps()-before)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BF Debugger"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s   %s %d   %s %d   %s %d\n\n",
		labelStyle.Render("state"), m.vm.State(),
		labelStyle.Render("pc"), m.vm.PC(),
		labelStyle.Render("steps"), m.vm.Steps(),
		labelStyle.Render("input left"), m.vm.PendingInput(),
	)

	b.WriteString(labelStyle.Render("program"))
	b.WriteString("\n  ")
	b.WriteString(m.renderProgram())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("tape"))
	b.WriteString("\n")
	b.WriteString(m.renderTape())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("output"))
	b.WriteString("\n  ")
	b.WriteString(resultStyle.Render(fmt.Sprintf("%q", m.vm.Output())))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if m.state == stateInput {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter feed • esc back"))
	} else {
		b.WriteString(helpStyle.Render("s step • r run • i input • 0 reset • q quit"))
	}

	return b.String()
}

// renderProgram shows a window of the program with the next instruction
// highlighted.
func (m *interactiveModel) renderProgram() string {
	code := m.vm.Program()
	pc := m.vm.PC()
	start := max(pc-programWindow/2, 0)
	end := min(start+programWindow, len(code))

	var b strings.Builder
	if start > 0 {
		b.WriteString("…")
	}
	for i := start; i < end; i++ {
		c := string(rune(code[i]))
		if i == pc && m.vm.State() != engine.StateHalted {
			b.WriteString(selectedStyle.Render(c))
		} else {
			b.WriteString(c)
		}
	}
	if end < len(code) {
		b.WriteString("…")
	}
	return b.String()
}

// renderTape shows the cells around the address pointer, two rows: address
// and value.
func (m *interactiveModel) renderTape() string {
	ap := int(m.vm.Pointer())
	start := max(ap-tapeWindow/2, 0)
	start = min(start, memory.Size-tapeWindow)
	cells := m.vm.Memory().Window(uint16(start), tapeWindow)

	var addrs, vals strings.Builder
	addrs.WriteString("  ")
	vals.WriteString("  ")
	for i, v := range cells {
		a := fmt.Sprintf("%5d ", start+i)
		c := fmt.Sprintf("%5d ", v)
		if start+i == ap {
			a = selectedStyle.Render(a)
			c = selectedStyle.Render(c)
		}
		addrs.WriteString(a)
		vals.WriteString(c)
	}
	return addrs.String() + "\n" + vals.String()
}

func runInteractive(vm *engine.VM, filename string, pointer uint16, input []byte, maxSteps int64) error {
	p := tea.NewProgram(newInteractiveModel(vm, filename, pointer, input, maxSteps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
