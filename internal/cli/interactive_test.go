package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func step(t *testing.T, m tea.Model, msg tea.Msg) OptionsModel {
	t.Helper()
	next, _ := m.Update(msg)
	om, ok := next.(OptionsModel)
	if !ok {
		t.Fatalf("Update returned %T, want OptionsModel", next)
	}
	return om
}

func TestOptionsModelWalkthrough(t *testing.T) {
	m := NewOptionsModel()

	// Pick the second output type.
	m = step(t, m, keyMsg(tea.KeyDown))
	m = step(t, m, keyMsg(tea.KeyEnter))
	if m.Step != stepInk {
		t.Fatalf("Step = %v, want stepInk", m.Step)
	}
	if m.OutputType != "jpeg/buf" {
		t.Errorf("OutputType = %q, want jpeg/buf", m.OutputType)
	}

	// Pick the blue ink.
	m = step(t, m, keyMsg(tea.KeyDown))
	m = step(t, m, keyMsg(tea.KeyDown))
	m = step(t, m, keyMsg(tea.KeyEnter))
	if m.Ink != "blue" {
		t.Errorf("Ink = %q, want blue", m.Ink)
	}

	// Pick ruled paper.
	m = step(t, m, keyMsg(tea.KeyDown))
	m = step(t, m, keyMsg(tea.KeyEnter))
	if !m.Ruled {
		t.Error("Ruled should be true")
	}
	if m.Step != stepDone {
		t.Errorf("Step = %v, want stepDone", m.Step)
	}
}

func TestOptionsModelAbort(t *testing.T) {
	m := NewOptionsModel()
	m = step(t, m, tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	if !m.Aborted {
		t.Error("q should abort the picker")
	}
}

func TestOptionsModelCursorBounds(t *testing.T) {
	m := NewOptionsModel()

	// Moving above the first entry stays put.
	m = step(t, m, keyMsg(tea.KeyUp))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	// Moving past the last entry stays on it.
	for i := 0; i < 20; i++ {
		m = step(t, m, keyMsg(tea.KeyDown))
	}
	if m.Cursor != len(m.choices())-1 {
		t.Errorf("Cursor = %d, want %d", m.Cursor, len(m.choices())-1)
	}
}
