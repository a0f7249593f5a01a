// Package stats keeps per-process records of finished games. It is a render
// sink: attach it to the loop next to the display.
package stats

import (
	"sort"
	"sync"
	"time"

	"torus-snake/game"
)

// GroupSize is the number of records folded into one summary record once a
// compression level fills up.
const GroupSize = 100

// GameRecord is one game, or a group of games when CompressionIndex > 0.
type GameRecord struct {
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Size             int       `json:"size"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageSize      float64   `json:"averageSize"`
	MedianSize       float64   `json:"medianSize"`
	MaxSize          int       `json:"maxSize"`
	MinSize          int       `json:"minSize"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

type Recorder struct {
	mutex sync.RWMutex
	games []GameRecord
	now   func() time.Time

	active    bool
	startTime time.Time
	size      int
}

func NewRecorder() *Recorder {
	return &Recorder{
		games: make([]GameRecord, 0),
		now:   time.Now,
	}
}

// OnReset closes any game still in progress and opens a new one.
func (r *Recorder) OnReset(size int, snap game.Snapshot) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.active {
		r.addGame(r.size, r.startTime, r.now())
	}
	r.active = true
	r.startTime = r.now()
	r.size = len(snap.Body)
}

func (r *Recorder) OnUpdate(snap game.Snapshot, size int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.size = size
}

func (r *Recorder) OnGameOver() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !r.active {
		return
	}
	r.active = false
	r.addGame(r.size, r.startTime, r.now())
}

// AddGame records a finished game.
func (r *Recorder) AddGame(size int, startTime, endTime time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.addGame(size, startTime, endTime)
}

func (r *Recorder) addGame(size int, startTime, endTime time.Time) {
	duration := endTime.Sub(startTime).Seconds()
	r.games = append(r.games, GameRecord{
		StartTime:        startTime,
		EndTime:          endTime,
		Size:             size,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageSize:      float64(size),
		MedianSize:       float64(size),
		MaxSize:          size,
		MinSize:          size,
		AverageDuration:  duration,
		MaxDuration:      duration,
		MinDuration:      duration,
	})
	r.groupGames()
}

// groupGames folds every full run of GroupSize records at one compression
// level into a single record at the next level.
func (r *Recorder) groupGames() {
	sort.Slice(r.games, func(i, j int) bool {
		if r.games[i].CompressionIndex != r.games[j].CompressionIndex {
			return r.games[i].CompressionIndex < r.games[j].CompressionIndex
		}
		return r.games[i].StartTime.Before(r.games[j].StartTime)
	})

	for level := 0; ; level++ {
		records := make([]GameRecord, 0)
		for _, g := range r.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			}
		}
		if len(records) < GroupSize {
			break
		}

		var grouped []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				grouped = append(grouped, records[i:]...)
				break
			}
			grouped = append(grouped, summarize(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(r.games))
		for _, g := range r.games {
			if g.CompressionIndex != level {
				remaining = append(remaining, g)
			}
		}
		r.games = append(remaining, grouped...)
	}
}

func summarize(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxSize:          group[0].MaxSize,
		MinSize:          group[0].MinSize,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalSize, totalDuration float64
	sizes := make([]float64, 0, len(group))
	for _, g := range group {
		out.MaxSize = max(out.MaxSize, g.MaxSize)
		out.MinSize = min(out.MinSize, g.MinSize)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalSize += g.AverageSize * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			sizes = append(sizes, g.MedianSize)
		}
	}

	out.AverageSize = totalSize / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianSize = median(sizes)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// Records returns a copy of the stored records.
func (r *Recorder) Records() []GameRecord {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]GameRecord, len(r.games))
	copy(out, r.games)
	return out
}

// CurrentSize returns the size of the game in progress, or 0.
func (r *Recorder) CurrentSize() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if !r.active {
		return 0
	}
	return r.size
}

func (r *Recorder) GetGamesPlayed() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := 0
	for _, g := range r.games {
		total += g.GamesCount
	}
	return total
}

func (r *Recorder) GetAverageSize() float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var total float64
	var games int
	for _, g := range r.games {
		total += g.AverageSize * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (r *Recorder) GetMedianSize() float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	sizes := make([]float64, 0)
	for _, g := range r.games {
		for i := 0; i < g.GamesCount; i++ {
			sizes = append(sizes, g.MedianSize)
		}
	}
	return median(sizes)
}

func (r *Recorder) GetMaxSize() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	best := 0
	for _, g := range r.games {
		best = max(best, g.MaxSize)
	}
	return best
}

// GetAverageDuration returns the mean game length in seconds.
func (r *Recorder) GetAverageDuration() float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var total float64
	var games int
	for _, g := range r.games {
		total += g.AverageDuration * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (r *Recorder) GetMaxDuration() float64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var longest float64
	for _, g := range r.games {
		longest = max(longest, g.MaxDuration)
	}
	return longest
}
