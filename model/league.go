package model

// League is a one-shot snapshot of a season-scoped ESPN league. It is
// reconstructed fresh on every request and never cached or mutated.
type League struct {
	ID       int
	Year     int
	Name     string
	Teams    []Team
	Settings *LeagueSettings
}

// Team holds the fields the projections need, denormalized from the
// upstream response. Roster and Schedule reflect live upstream state at
// the time of the snapshot.
type Team struct {
	ID            int
	Name          string
	Abbrev        string
	DivisionID    int
	DivisionName  string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	Standing      int
	FinalStanding int
	StreakType    string // "WIN" or "LOSS"
	StreakLength  int
	Roster        []Player
	Schedule      []Opponent
}

// Opponent is a denormalized schedule entry. Holding the id and name
// instead of a *Team reference keeps the snapshot free of cycles.
type Opponent struct {
	Week     int
	TeamID   int
	TeamName string
}

type DraftPick struct {
	Round      int
	RoundPick  int
	PlayerID   int
	PlayerName string
	TeamID     int
	TeamName   string
	Keeper     bool
	BidAmount  int
}
