package dragon

import "time"

// waveTimer is a deferred wave start, due once the simulation clock reaches at.
type waveTimer struct {
	at   time.Duration
	wave int
}

// timerQueue holds pending wave starts in scheduling order.
type timerQueue struct {
	pending []waveTimer
}

func (q *timerQueue) schedule(at time.Duration, wave int) {
	q.pending = append(q.pending, waveTimer{at: at, wave: wave})
}

// due removes and returns every timer whose time has come.
func (q *timerQueue) due(now time.Duration) []waveTimer {
	var fired []waveTimer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if t.at <= now {
			fired = append(fired, t)
		} else {
			kept = append(kept, t)
		}
	}
	q.pending = kept
	return fired
}

func (q *timerQueue) clear() {
	q.pending = q.pending[:0]
}

func (q *timerQueue) len() int {
	return len(q.pending)
}
