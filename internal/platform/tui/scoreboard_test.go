package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func TestScoreboardShowsHistory(t *testing.T) {
	registerFakes()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("fake", 420); err != nil {
		t.Fatal(err)
	}
	runs := []storage.Run{
		{LevelID: "fake", Score: 420, Outcome: storage.OutcomeVictory, Lives: 2, Duration: 40 * time.Second},
		{LevelID: "fake", Score: 80, Outcome: storage.OutcomeFall, Duration: 12 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"Fake Level", "Top scores", "420", "Runs 2", "Fastest 40.0s"} {
		if !strings.Contains(view, want) {
			t.Errorf("top scores view missing %q", want)
		}
	}

	next, _ := m.Update(runeKey("v"))
	m = next.(ScoreboardModel)
	view = m.View()
	if !strings.Contains(view, "Recent runs") || !strings.Contains(view, storage.OutcomeFall) {
		t.Error("runs view should list the recent runs with their outcomes")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	registerFakes()
	m := NewScoreboardModel(nil, 60, 20)

	if !strings.Contains(m.View(), "No runs yet") {
		t.Error("empty scoreboard should say there are no runs")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if next.(ScoreboardModel).cursor != 0 {
		t.Error("cursor should wrap around a single level")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
