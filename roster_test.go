package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTeamCreatesEmptyDefault(t *testing.T) {
	storage := newMemoryStorage()
	roster := newRoster(storage)

	team := roster.getTeam(teamRed)
	assert.Equal(t, teamRed, team.Color)
	assert.Empty(t, team.Players)

	// The default is persisted, not just returned.
	_, ok := storage.Get(keyTeamRed)
	assert.True(t, ok)

	again := roster.getTeam(teamRed)
	assert.Equal(t, team, again)
}

func TestAddAndFindPlayer(t *testing.T) {
	roster := newRoster(newMemoryStorage())

	roster.addPlayer(teamBlue, Player{ID: "c1", Name: "swift-otter", Team: teamBlue})

	player, ok := roster.findPlayer("c1")
	require.True(t, ok)
	assert.Equal(t, "swift-otter", player.Name)
	assert.Equal(t, teamBlue, player.Team)

	_, ok = roster.findPlayer("nobody")
	assert.False(t, ok)
}

func TestApplyScore(t *testing.T) {
	roster := newRoster(newMemoryStorage())
	roster.addPlayer(teamRed, Player{ID: "c1", Team: teamRed})
	roster.addPlayer(teamBlue, Player{ID: "c2", Team: teamBlue})

	player, ok := roster.applyScore("c1", 100)
	require.True(t, ok)
	assert.Equal(t, 100, player.CumulativeScore)
	assert.Equal(t, 100, player.MostRecentScore)

	player, ok = roster.applyScore("c1", 250)
	require.True(t, ok)
	assert.Equal(t, 350, player.CumulativeScore)
	assert.Equal(t, 250, player.MostRecentScore)

	_, ok = roster.applyScore("nobody", 10)
	assert.False(t, ok)

	scores := roster.teamCumulativeScores()
	assert.Equal(t, 350, scores.RedScore)
	assert.Equal(t, 0, scores.BlueScore)
	assert.Equal(t, 1, scores.RedCount)
	assert.Equal(t, 1, scores.BlueCount)
}

func TestTopNPlayers(t *testing.T) {
	roster := newRoster(newMemoryStorage())
	roster.addPlayer(teamRed, Player{ID: "c1", Name: "first", Team: teamRed, CumulativeScore: 200})
	roster.addPlayer(teamRed, Player{ID: "c2", Name: "second", Team: teamRed, CumulativeScore: 500})
	roster.addPlayer(teamBlue, Player{ID: "c3", Name: "third", Team: teamBlue, CumulativeScore: 200})

	top := roster.topNPlayers(2)
	require.Len(t, top, 2)
	assert.Equal(t, "second", top[0].Name)
	assert.Equal(t, 500, top[0].Score)

	// Ties keep insertion order: red roster precedes blue in the merge.
	assert.Equal(t, "first", top[1].Name)

	all := roster.topNPlayers(10)
	assert.Len(t, all, 3)
	assert.Equal(t, teamBlue, all[2].Team)
}
