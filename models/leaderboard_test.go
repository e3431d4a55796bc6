package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDrawCountsNeitherWinNorLoss(t *testing.T) {
	e := LeaderboardEntry{Name: "alice"}
	e.Apply(2, 2, OutcomeDrawn)
	e.Apply(3, 1, OutcomeWon)
	e.Apply(0, 1, OutcomeLost)

	assert.Equal(t, 3, e.GamesPlayed)
	assert.Equal(t, 1, e.Wins)
	assert.Equal(t, 1, e.Losses)
	assert.Equal(t, 5, e.GoalsFor)
	assert.Equal(t, 4, e.GoalsAgainst)
	assert.Equal(t, 1, e.GoalDiff())
}

func TestSortEntriesTieBreakChain(t *testing.T) {
	entries := []LeaderboardEntry{
		{Name: "fewWins", Wins: 1, GoalsFor: 9, GoalsAgainst: 0},
		{Name: "bestDiff", Wins: 3, GoalsFor: 8, GoalsAgainst: 2},
		{Name: "sameDiffMoreGoals", Wins: 3, GoalsFor: 5, GoalsAgainst: 1},
		{Name: "sameDiffFewerGoals", Wins: 3, GoalsFor: 4, GoalsAgainst: 0},
	}
	SortEntries(entries)

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Name
	}
	assert.Equal(t, []string{"bestDiff", "sameDiffMoreGoals", "sameDiffFewerGoals", "fewWins"}, got)
}
