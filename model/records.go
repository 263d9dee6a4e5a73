package model

// The flat JSON records the API serves. Each is produced by a pure
// projection over a league snapshot; back-references are denormalized to
// id + name pairs.

// TeamSummary is the basic fidelity tier: record plus roster names only.
// It is what league-wide listings serve to avoid paying full-stat
// serialization for every team.
type TeamSummary struct {
	TeamID        int      `json:"team_id"`
	TeamName      string   `json:"team_name"`
	Abbrev        string   `json:"abbrev"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	FinalStanding int      `json:"final_standing"`
	Roster        []string `json:"roster"`
}

// TeamDetail is the superset tier requested per-entity.
type TeamDetail struct {
	TeamID        int              `json:"team_id"`
	TeamName      string           `json:"team_name"`
	Abbrev        string           `json:"abbrev"`
	DivisionID    int              `json:"division_id"`
	DivisionName  string           `json:"division_name"`
	Wins          int              `json:"wins"`
	Losses        int              `json:"losses"`
	Ties          int              `json:"ties"`
	PointsFor     float64          `json:"points_for"`
	PointsAgainst float64          `json:"points_against"`
	Standing      int              `json:"standing"`
	FinalStanding int              `json:"final_standing"`
	Streak        string           `json:"streak"`
	Roster        []PlayerSummary  `json:"roster"`
	Schedule      []OpponentRecord `json:"schedule"`
}

type OpponentRecord struct {
	Week     int    `json:"week"`
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
}

type PlayerSummary struct {
	PlayerID        int      `json:"player_id"`
	Name            string   `json:"name"`
	Position        Position `json:"position"`
	PosRank         int      `json:"pos_rank"`
	ProTeam         string   `json:"pro_team"`
	EligibleSlots   []string `json:"eligible_slots"`
	AcquisitionType string   `json:"acquisition_type"`
	TeamID          int      `json:"team_id"`
	TeamName        string   `json:"team_name"`
}

type PlayerDetail struct {
	PlayerID        int          `json:"player_id"`
	Name            string       `json:"name"`
	Position        Position     `json:"position"`
	PosRank         int          `json:"pos_rank"`
	ProTeam         string       `json:"pro_team"`
	EligibleSlots   []string     `json:"eligible_slots"`
	AcquisitionType string       `json:"acquisition_type"`
	InjuryStatus    string       `json:"injury_status"`
	TotalPoints     float64      `json:"total_points"`
	ProjectedPoints float64      `json:"projected_total_points"`
	AvgPoints       float64      `json:"avg_points"`
	ProjectedAvg    float64      `json:"projected_avg_points"`
	PercentOwned    float64      `json:"percent_owned"`
	PercentStarted  float64      `json:"percent_started"`
	Weekly          []WeekRecord `json:"weekly"`
	TeamID          int          `json:"team_id"`
	TeamName        string       `json:"team_name"`
}

type WeekRecord struct {
	Week      int     `json:"week"`
	Points    float64 `json:"points"`
	Projected float64 `json:"projected_points"`
}

type DraftPickRecord struct {
	Round      int    `json:"round"`
	RoundPick  int    `json:"round_pick"`
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
	Keeper     bool   `json:"keeper"`
	BidAmount  int    `json:"bid_amount"`
}

type SettingsRecord struct {
	Name               string               `json:"name"`
	TeamCount          int                  `json:"team_count"`
	RegularSeasonWeeks int                  `json:"regular_season_weeks"`
	PlayoffTeamCount   int                  `json:"playoff_team_count"`
	ScoringType        string               `json:"scoring_type"`
	ScoringItems       []ScoringItemRecord  `json:"scoring_items"`
	PositionSlots      []PositionSlotRecord `json:"position_slots"`
	AcquisitionType    string               `json:"acquisition_type"`
	AcquisitionBudget  int                  `json:"acquisition_budget"`
}

type ScoringItemRecord struct {
	StatID int     `json:"stat_id"`
	Abbr   string  `json:"abbr"`
	Label  string  `json:"label"`
	Points float64 `json:"points"`
}

type PositionSlotRecord struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

type MatchupScore struct {
	Week         int     `json:"week"`
	HomeTeamID   int     `json:"home_team_id"`
	HomeTeamName string  `json:"home_team_name"`
	HomeScore    float64 `json:"home_score"`
	AwayTeamID   int     `json:"away_team_id"`
	AwayTeamName string  `json:"away_team_name"`
	AwayScore    float64 `json:"away_score"`
	Winner       string  `json:"winner"`
}

type BoxScoreMatchup struct {
	Week int          `json:"week"`
	Home BoxScoreSide `json:"home"`
	Away BoxScoreSide `json:"away"`
}

type BoxScoreSide struct {
	TeamID   int           `json:"team_id"`
	TeamName string        `json:"team_name"`
	Score    float64       `json:"score"`
	Lineup   []LineupEntry `json:"lineup"`
}

type LineupEntry struct {
	PlayerID  int      `json:"player_id"`
	Name      string   `json:"name"`
	Slot      string   `json:"slot"`
	Position  Position `json:"position"`
	Points    float64  `json:"points"`
	Projected float64  `json:"projected_points"`
}

// ActivityRecord is one team/action/player group. A trade yields two
// records sharing a date and type, one per side. Raw records carry the
// unrecognized tuple in Raw with the other fields empty.
type ActivityRecord struct {
	Date   int64  `json:"date"`
	Type   string `json:"type"`
	Team   string `json:"team"`
	Action string `json:"action"`
	Player string `json:"player"`
	Raw    string `json:"raw,omitempty"`
}

type FreeAgentRecord struct {
	PlayerID        int      `json:"player_id"`
	Name            string   `json:"name"`
	Position        Position `json:"position"`
	ProTeam         string   `json:"pro_team"`
	InjuryStatus    string   `json:"injury_status"`
	TotalPoints     float64  `json:"total_points"`
	ProjectedPoints float64  `json:"projected_total_points"`
	PercentOwned    float64  `json:"percent_owned"`
}

// ScorerRecord backs the top_scorer, lowest_scorer and point_order views.
type ScorerRecord struct {
	TeamID   int     `json:"team_id"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
}

type PowerRankingEntry struct {
	Rank     int     `json:"rank"`
	Score    float64 `json:"score"`
	TeamID   int     `json:"team_id"`
	TeamName string  `json:"team_name"`
}
