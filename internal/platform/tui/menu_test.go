package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/storage"
)

func menuStep(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuStartsOnNormal(t *testing.T) {
	m := NewMenuModel(nil, "temple", testCfg)

	m, cmd := menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().Preset != config.DifficultyNormal {
		t.Fatalf("expected normal selected, got %+v", m.Selected())
	}
	if cmd == nil {
		t.Error("standalone menu should quit after selecting")
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"up once", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"up clamps", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down once", []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"down clamps", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j')}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, "temple", testCfg)
			for _, k := range tt.keys {
				m, _ = menuStep(t, m, k)
			}
			m, _ = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if got := m.Selected().Preset; got != tt.want {
				t.Errorf("selected %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestMenuEmbeddedDoesNotQuit(t *testing.T) {
	m := NewMenuModel(nil, "temple", testCfg)
	m.embedded = true

	m, cmd := menuStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}
	if cmd != nil {
		t.Error("embedded menu should not quit the program")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{GameID: "temple", Mode: "hard", Score: 370, Level: 4, Ticks: 900}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, "temple", testCfg)
	for _, item := range m.items {
		want := 0
		if item.Preset == config.DifficultyHard {
			want = 370
		}
		if item.Best != want {
			t.Errorf("%s best = %d, expected %d", item.Preset, item.Best, want)
		}
	}

	m.width, m.height = 80, 24
	if !strings.Contains(m.View(), "370") {
		t.Error("menu should show the best hard score")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, "temple", testCfg)
	m, cmd := menuStep(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("quitting should not select anything")
	}
}
