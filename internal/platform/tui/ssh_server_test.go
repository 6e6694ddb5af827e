package tui

import (
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/temple-run/internal/config"
)

func newTestSession(factory GameFactory) SessionModel {
	server := DefaultSSHServerConfig()
	server.NewGame = factory
	return NewSessionModel(nil, testCfg, server, log.New(io.Discard))
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestNewSSHServerNeedsFactory(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), log.New(io.Discard)); err == nil {
		t.Error("expected an error without a game factory")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var picked config.DifficultyPreset
	g := &fakeGame{}
	m := newTestSession(func(p config.DifficultyPreset) (Game, error) {
		picked = p
		return g, nil
	})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("expected game screen, got %d", m.screen)
	}
	if picked != config.DifficultyHard {
		t.Errorf("factory got %s, expected hard", picked)
	}

	m = sessionStep(t, m, TickMsg{})
	if g.ticks != 1 {
		t.Error("ticks should reach the game")
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Error("back should return to the menu")
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(func(config.DifficultyPreset) (Game, error) { return &fakeGame{}, nil })

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("expected scores screen, got %d", m.screen)
	}

	m = sessionStep(t, m, TickMsg{})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionFactoryError(t *testing.T) {
	m := newTestSession(func(config.DifficultyPreset) (Game, error) {
		return nil, errors.New("broken config")
	})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Error("a failed game should leave the session on the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after a failed game")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(func(config.DifficultyPreset) (Game, error) { return &fakeGame{}, nil })

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if next.(SessionModel).View() != "" {
		t.Error("ended session should render nothing")
	}
}
