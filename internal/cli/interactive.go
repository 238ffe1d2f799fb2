package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ananya54321/handwritten/pkg/errors"
	"github.com/Ananya54321/handwritten/pkg/handwriting"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickStep identifies the current page of the interactive picker.
type pickStep int

const (
	stepOutputType pickStep = iota
	stepInk
	stepRuled
	stepDone
)

var (
	inkChoices   = []string{"black", "red", "blue"}
	ruledChoices = []string{"plain", "ruled"}
)

// OptionsModel is the bubbletea model for interactive option selection.
// It walks through output type, ink color, and paper style in sequence.
type OptionsModel struct {
	Step   pickStep
	Cursor int

	OutputType string
	Ink        string
	Ruled      bool
	Aborted    bool
}

// NewOptionsModel creates the picker with defaults selected.
func NewOptionsModel() OptionsModel {
	return OptionsModel{OutputType: string(handwriting.DefaultOutputType)}
}

func (m OptionsModel) Init() tea.Cmd {
	return nil
}

func (m OptionsModel) choices() []string {
	switch m.Step {
	case stepOutputType:
		return handwriting.SupportedOutputTypes
	case stepInk:
		return inkChoices
	default:
		return ruledChoices
	}
}

func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.choices())-1 {
			m.Cursor++
		}
	case "enter":
		switch m.Step {
		case stepOutputType:
			m.OutputType = handwriting.SupportedOutputTypes[m.Cursor]
		case stepInk:
			m.Ink = inkChoices[m.Cursor]
		case stepRuled:
			m.Ruled = m.Cursor == 1
		}
		m.Step++
		m.Cursor = 0
		if m.Step == stepDone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OptionsModel) View() string {
	if m.Step == stepDone {
		return ""
	}

	var b strings.Builder

	titles := map[pickStep]string{
		stepOutputType: "Select Output Type",
		stepInk:        "Select Ink Color",
		stepRuled:      "Select Paper Style",
	}
	b.WriteString(StyleTitle.Render(titles[m.Step]))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, choice := range m.choices() {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + choice
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickOptions runs the interactive picker and applies the selection.
func pickOptions(opts *handwriting.Options) error {
	program := tea.NewProgram(NewOptionsModel())
	final, err := program.Run()
	if err != nil {
		return err
	}

	m, ok := final.(OptionsModel)
	if !ok || m.Aborted {
		return errors.New(errors.ErrCodeInvalidInput, "selection cancelled")
	}

	opts.OutputType = handwriting.OutputType(m.OutputType)
	opts.Ruled = m.Ruled
	opts.InkColor = m.Ink
	if m.Ink == "black" {
		opts.InkColor = ""
	}
	return nil
}
