package model

type Matchup struct {
	Week   int
	Home   MatchupSide
	Away   MatchupSide
	Winner string // "HOME", "AWAY", "TIE" or "UNDECIDED"
}

type MatchupSide struct {
	TeamID   int
	TeamName string
	Score    float64
	Lineup   []LineupPlayer
}

// LineupPlayer is a player as slotted in a single week's lineup, with the
// points scored in that week rather than season totals.
type LineupPlayer struct {
	PlayerID  int
	Name      string
	Slot      string
	Position  Position
	Points    float64
	Projected float64
}
