package dragon

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// RunStats summarises one session.
type RunStats struct {
	Ticks        uint64
	Duration     time.Duration // Simulated play time
	Shots        int
	Hits         int
	Kills        map[EnemyType]int
	Escapes      int
	DamageTaken  int
	WavesCleared int
}

func newRunStats() RunStats {
	return RunStats{Kills: make(map[EnemyType]int)}
}

// TotalKills sums kills across enemy types.
func (s RunStats) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

// Accuracy returns hits per shot in [0,1].
func (s RunStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

func (s RunStats) clone() RunStats {
	out := s
	out.Kills = make(map[EnemyType]int, len(s.Kills))
	for k, v := range s.Kills {
		out.Kills[k] = v
	}
	return out
}

// Summary reports the session statistics as display lines.
func (g *Game) Summary() []core.Stat {
	s := g.stats
	wave := 0
	if g.waves != nil {
		wave = g.waves.Wave()
	}
	lines := []core.Stat{
		{Label: "Score", Value: strconv.Itoa(g.score)},
		{Label: "Wave reached", Value: strconv.Itoa(wave)},
		{Label: "Waves cleared", Value: strconv.Itoa(s.WavesCleared)},
		{Label: "Flight time", Value: s.Duration.Truncate(time.Second / 10).String()},
		{Label: "Shots", Value: strconv.Itoa(s.Shots)},
		{Label: "Accuracy", Value: fmt.Sprintf("%.0f%%", s.Accuracy()*100)},
		{Label: "Escaped", Value: strconv.Itoa(s.Escapes)},
		{Label: "Damage taken", Value: strconv.Itoa(s.DamageTaken)},
	}

	types := make([]string, 0, len(s.Kills))
	for t := range s.Kills {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		lines = append(lines, core.Stat{Label: "Kills: " + t, Value: strconv.Itoa(s.Kills[EnemyType(t)])})
	}
	return lines
}
