package model

// Player is the snapshot of one player on a roster or in the free-agent
// pool. Optional upstream fields are populated with zero values by the
// espn adapter so projections never have to re-derive defaults.
type Player struct {
	ID              int
	Name            string
	Position        Position
	PosRank         int
	ProTeam         string
	EligibleSlots   []string
	AcquisitionType string
	InjuryStatus    string
	TotalPoints     float64
	ProjectedPoints float64
	AvgPoints       float64
	ProjectedAvg    float64
	PercentOwned    float64
	PercentStarted  float64
	Weekly          []WeekStats
}

// WeekStats is one per-week stat bucket: actual and projected fantasy
// points for a single scoring period.
type WeekStats struct {
	Week      int
	Points    float64
	Projected float64
}
