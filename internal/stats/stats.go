// Package stats tracks turn bookkeeping for a single session: total
// guesses, match/mismatch counts and streaks. Everything is in-memory;
// nothing survives the process.
package stats

// Tracker accumulates per-turn results. The zero value is ready to use.
// Counters are cumulative across replays within one session.
type Tracker struct {
	Guesses    int
	Matches    int
	Mismatches int
	Streak     int
	BestStreak int
}

// RecordMatch counts a resolved turn whose two cards matched.
func (t *Tracker) RecordMatch() {
	t.Guesses++
	t.Matches++
	t.Streak++
	if t.Streak > t.BestStreak {
		t.BestStreak = t.Streak
	}
}

// RecordMismatch counts a resolved turn whose two cards did not match.
func (t *Tracker) RecordMismatch() {
	t.Guesses++
	t.Mismatches++
	t.Streak = 0
}

// Accuracy returns the fraction of turns that ended in a match.
func (t *Tracker) Accuracy() float64 {
	if t.Guesses == 0 {
		return 0
	}
	return float64(t.Matches) / float64(t.Guesses)
}
