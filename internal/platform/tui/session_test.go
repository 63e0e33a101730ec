package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/games/dragon"
)

func sessionSend(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testConfig())
	ids := map[string]bool{}
	for _, it := range m.items {
		ids[it.GameID] = true
	}
	if !ids[dragon.IDRich] || !ids[dragon.IDClassic] {
		t.Errorf("menu items = %+v", m.items)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	m := NewSessionModel(testConfig(), Options{})
	if m.InGame() {
		t.Fatal("session should start at the menu")
	}

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.InGame() || cmd == nil {
		t.Fatal("enter should start the selected variant and its tick loop")
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.game.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v", m.game.State().Phase)
	}

	// Pause, then leave
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc}, TickMsg{}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InGame() {
		t.Error("session should be back at the menu")
	}
	if m.quitting {
		t.Error("going back to the menu must not end the session")
	}

	// Stray ticks from the finished game are ignored by the menu
	m, _ = sessionSend(t, m, TickMsg{})
	if m.InGame() {
		t.Error("tick should not start a game")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testConfig(), Options{})
	m, cmd := sessionSend(t, m, runeKey('q'))
	if cmd == nil || !m.quitting || m.View() != "" {
		t.Error("q at the menu should end the session")
	}
}
