package models

import "sort"

type MatchOutcome string

const (
	OutcomeWon   MatchOutcome = "won"
	OutcomeLost  MatchOutcome = "lost"
	OutcomeDrawn MatchOutcome = "drawn"
)

/*
 * 'LeaderboardEntry' holds the cumulative cross-session statistics for one
 * display name. Entries are created lazily on the first recorded result and
 * never deleted (the whole store is volatile anyway).
 */
type LeaderboardEntry struct {
	Name         string `json:"name"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	GamesPlayed  int    `json:"gamesPlayed"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

func (e *LeaderboardEntry) GoalDiff() int {
	return e.GoalsFor - e.GoalsAgainst
}

// Apply folds one match result into the entry. A draw increments neither
// wins nor losses.
func (e *LeaderboardEntry) Apply(goalsFor, goalsAgainst int, outcome MatchOutcome) {
	e.GamesPlayed++
	e.GoalsFor += goalsFor
	e.GoalsAgainst += goalsAgainst
	switch outcome {
	case OutcomeWon:
		e.Wins++
	case OutcomeLost:
		e.Losses++
	}
}

// SortEntries orders entries for presentation: wins descending, then goal
// differential descending, then goals-for descending.
func SortEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.GoalDiff() != b.GoalDiff() {
			return a.GoalDiff() > b.GoalDiff()
		}
		return a.GoalsFor > b.GoalsFor
	})
}
