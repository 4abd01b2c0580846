package main

import "sort"

const (
	teamRed  = "red"
	teamBlue = "blue"
)

// Player is one roster entry. Players are created when a JOIN_TEAM message
// is accepted and are never removed for the lifetime of the room.
type Player struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Team            string `json:"team"`
	CumulativeScore int    `json:"cumulativeScore"`
	MostRecentScore int    `json:"mostRecentScore"`
	IsHost          bool   `json:"isHost"`
}

// Team holds one team's players in insertion order. The team score is
// always derived by summing player scores, never stored on its own.
type Team struct {
	Color   string   `json:"color"`
	Players []Player `json:"players"`
}

// PublicPlayer is the projection of a player that is safe to broadcast.
type PublicPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Score int    `json:"score"`
}

// TeamScores is the authoritative aggregate over both rosters.
type TeamScores struct {
	RedScore  int
	BlueScore int
	RedCount  int
	BlueCount int
}

// Roster reads and writes the two team rosters through room storage.
type Roster struct {
	storage RoomStorage
}

func newRoster(storage RoomStorage) *Roster {
	return &Roster{storage: storage}
}

func teamKey(color string) string {
	if color == teamRed {
		return keyTeamRed
	}
	return keyTeamBlue
}

// getTeam returns the team for color, creating and persisting an empty one
// the first time it is asked for.
func (r *Roster) getTeam(color string) Team {
	var team Team
	if getJSON(r.storage, teamKey(color), &team) {
		return team
	}

	team = Team{Color: color}
	putJSON(r.storage, teamKey(color), team)
	return team
}

func (r *Roster) putTeam(team Team) {
	putJSON(r.storage, teamKey(team.Color), team)
}

// addPlayer appends player to the given team's roster and persists it.
func (r *Roster) addPlayer(color string, player Player) {
	team := r.getTeam(color)
	team.Players = append(team.Players, player)
	r.putTeam(team)
}

// findPlayer looks up a player by connection identity across both teams.
func (r *Roster) findPlayer(id string) (Player, bool) {
	for _, color := range []string{teamRed, teamBlue} {
		team := r.getTeam(color)
		for _, p := range team.Players {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Player{}, false
}

// applyScore adds delta to the player's cumulative score, records it as the
// most recent round score, and persists the owning team. It returns the
// updated player and whether the player was found.
func (r *Roster) applyScore(id string, delta int) (Player, bool) {
	for _, color := range []string{teamRed, teamBlue} {
		team := r.getTeam(color)
		for i := range team.Players {
			if team.Players[i].ID != id {
				continue
			}
			team.Players[i].CumulativeScore += delta
			team.Players[i].MostRecentScore = delta
			r.putTeam(team)
			return team.Players[i], true
		}
	}
	return Player{}, false
}

// teamCumulativeScores sums player cumulative scores per team. This is the
// single source of truth for team totals.
func (r *Roster) teamCumulativeScores() TeamScores {
	var scores TeamScores

	red := r.getTeam(teamRed)
	for _, p := range red.Players {
		scores.RedScore += p.CumulativeScore
	}
	scores.RedCount = len(red.Players)

	blue := r.getTeam(teamBlue)
	for _, p := range blue.Players {
		scores.BlueScore += p.CumulativeScore
	}
	scores.BlueCount = len(blue.Players)

	return scores
}

// topNPlayers merges both rosters and returns up to n players ordered by
// cumulative score, highest first. The sort is stable, so ties keep
// insertion order.
func (r *Roster) topNPlayers(n int) []PublicPlayer {
	var merged []Player
	merged = append(merged, r.getTeam(teamRed).Players...)
	merged = append(merged, r.getTeam(teamBlue).Players...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CumulativeScore > merged[j].CumulativeScore
	})

	if n > len(merged) {
		n = len(merged)
	}

	top := make([]PublicPlayer, 0, n)
	for _, p := range merged[:n] {
		top = append(top, PublicPlayer{
			ID:    p.ID,
			Name:  p.Name,
			Team:  p.Team,
			Score: p.CumulativeScore,
		})
	}
	return top
}
