package stats

import (
	"testing"
	"time"

	"torus-snake/game"
	"torus-snake/game/types"
)

func TestRecorderFollowsGames(t *testing.T) {
	r := NewRecorder()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	r.OnReset(5, game.Snapshot{Size: 5, Body: []types.Point{{X: 0, Y: 0}}})
	if r.CurrentSize() != 1 {
		t.Fatalf("CurrentSize = %d, want 1", r.CurrentSize())
	}
	r.OnUpdate(game.Snapshot{}, 2)
	r.OnUpdate(game.Snapshot{}, 3)
	clock = clock.Add(4 * time.Second)
	r.OnGameOver()
	r.OnGameOver()

	if r.CurrentSize() != 0 {
		t.Fatal("no game should be active after game over")
	}
	if r.GetGamesPlayed() != 1 || r.GetMaxSize() != 3 {
		t.Fatalf("played=%d max=%d", r.GetGamesPlayed(), r.GetMaxSize())
	}
	if d := r.GetAverageDuration(); d != 4 {
		t.Fatalf("average duration = %v, want 4", d)
	}

	// A restart mid-game closes the running game.
	r.OnReset(5, game.Snapshot{Body: []types.Point{{X: 0, Y: 0}}})
	r.OnUpdate(game.Snapshot{}, 7)
	clock = clock.Add(2 * time.Second)
	r.OnReset(5, game.Snapshot{Body: []types.Point{{X: 0, Y: 0}}})

	if r.GetGamesPlayed() != 2 || r.GetMaxSize() != 7 {
		t.Fatalf("played=%d max=%d", r.GetGamesPlayed(), r.GetMaxSize())
	}
	if avg := r.GetAverageSize(); avg != 5 {
		t.Fatalf("average size = %v, want 5", avg)
	}
	if m := r.GetMedianSize(); m != 5 {
		t.Fatalf("median size = %v, want 5", m)
	}
	if r.GetMaxDuration() != 4 {
		t.Fatalf("max duration = %v, want 4", r.GetMaxDuration())
	}
}

func TestGrouping(t *testing.T) {
	r := NewRecorder()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < GroupSize+5; i++ {
		s := start.Add(time.Duration(i) * time.Minute)
		r.AddGame(i+1, s, s.Add(time.Second))
	}

	records := r.Records()
	if len(records) != 6 {
		t.Fatalf("got %d records, want 1 group + 5 singles", len(records))
	}
	var group GameRecord
	for _, rec := range records {
		if rec.CompressionIndex == 1 {
			group = rec
		}
	}
	if group.GamesCount != GroupSize {
		t.Fatalf("group holds %d games, want %d", group.GamesCount, GroupSize)
	}
	if group.MinSize != 1 || group.MaxSize != GroupSize {
		t.Fatalf("group min/max = %d/%d", group.MinSize, group.MaxSize)
	}
	if group.AverageSize != float64(GroupSize+1)/2 {
		t.Fatalf("group average = %v", group.AverageSize)
	}
	if r.GetGamesPlayed() != GroupSize+5 {
		t.Fatalf("played = %d", r.GetGamesPlayed())
	}
	if r.GetMaxSize() != GroupSize+5 {
		t.Fatalf("max = %d", r.GetMaxSize())
	}
}

func TestEmptyRecorder(t *testing.T) {
	r := NewRecorder()
	if r.GetAverageSize() != 0 || r.GetMedianSize() != 0 || r.GetMaxSize() != 0 ||
		r.GetAverageDuration() != 0 || r.GetMaxDuration() != 0 || r.GetGamesPlayed() != 0 {
		t.Fatal("empty recorder should report zeros")
	}
}
