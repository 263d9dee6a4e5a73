package model

import "fmt"

type LeagueSettings struct {
	Name               string
	TeamCount          int
	RegularSeasonWeeks int
	PlayoffTeamCount   int
	ScoringType        string
	ScoringItems       []ScoringItem
	PositionSlots      []PositionSlot
	AcquisitionType    string
	AcquisitionBudget  int // FAAB budget, 0 when the league uses waiver priority
}

type ScoringItem struct {
	StatID int
	Abbr   string
	Label  string
	Points float64
}

type PositionSlot struct {
	Slot  string
	Count int
}

// The scoring stat ids ESPN uses for the common offensive categories.
// Ids outside this table still round-trip, they just get a generic label.
var scoringStats = map[int][2]string{
	3:  {"PY", "Passing Yards"},
	4:  {"PTD", "Passing Touchdowns"},
	19: {"2PC", "Two Point Conversions"},
	20: {"INT", "Interceptions Thrown"},
	24: {"RY", "Rushing Yards"},
	25: {"RTD", "Rushing Touchdowns"},
	42: {"REY", "Receiving Yards"},
	43: {"RETD", "Receiving Touchdowns"},
	53: {"REC", "Receptions"},
	72: {"FUML", "Fumbles Lost"},
	74: {"FG", "Field Goals Made"},
	77: {"PAT", "Extra Points Made"},
}

func ScoringStatAbbr(id int) string {
	if s, found := scoringStats[id]; found {
		return s[0]
	}
	return fmt.Sprintf("STAT_%d", id)
}

func ScoringStatLabel(id int) string {
	if s, found := scoringStats[id]; found {
		return s[1]
	}
	return fmt.Sprintf("Stat %d", id)
}
