package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuModel(t *testing.T) {
	m := NewMenuModel()

	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	model, _ := m.Update(msg)
	m = model.(MenuModel)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after 'j', got %d", m.cursor)
	}

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}
	model, _ = m.Update(msg)
	m = model.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after 'k', got %d", m.cursor)
	}

	msg = tea.KeyMsg{Type: tea.KeyEnter}
	model, cmd := m.Update(msg)
	m = model.(MenuModel)
	if m.Selected() != "tui" {
		t.Errorf("expected selection 'tui', got %s", m.Selected())
	}
	if cmd == nil {
		t.Error("expected quit command after enter")
	}

	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	model, _ = m.Update(msg)
	m = model.(MenuModel)
	if !m.quitting {
		t.Error("expected quitting true after 'q'")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestMenuChoices(t *testing.T) {
	m := NewMenuModel()
	want := map[string]bool{"tui": false, "serve": false, "mcp": false}
	for _, choice := range m.choices {
		want[choice.command] = true
	}
	for cmd, found := range want {
		if !found {
			t.Errorf("expected %q to be in menu choices", cmd)
		}
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel()

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}

	for i := 0; i < 10; i++ {
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = model.(MenuModel)
	}
	if m.cursor != len(m.choices)-1 {
		t.Errorf("expected cursor at last choice, got %d", m.cursor)
	}
}
