package internal

// Wire types for the ESPN fantasy v3 API. Only the slices of the payload
// the app reads are modeled; everything else is ignored by the decoder.

type LeagueResponse struct {
	ID              int            `json:"id"`
	SeasonID        int            `json:"seasonId"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	Teams           []Team         `json:"teams"`
	Schedule        []ScheduleItem `json:"schedule"`
	Settings        *Settings      `json:"settings"`
	DraftDetail     *DraftDetail   `json:"draftDetail"`
	Players         []PlayerEntry  `json:"players"`
}

type Team struct {
	ID                  int     `json:"id"`
	Abbrev              string  `json:"abbrev"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Nickname            string  `json:"nickname"`
	DivisionID          int     `json:"divisionId"`
	PlayoffSeed         int     `json:"playoffSeed"`
	RankCalculatedFinal int     `json:"rankCalculatedFinal"`
	Record              *Record `json:"record"`
	Roster              *Roster `json:"roster"`
}

type Record struct {
	Overall *RecordDetail `json:"overall"`
}

type RecordDetail struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	StreakType    string  `json:"streakType"`
	StreakLength  int     `json:"streakLength"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	LineupSlotID    int              `json:"lineupSlotId"`
	AcquisitionType string           `json:"acquisitionType"`
	PlayerPoolEntry *PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerPoolEntry struct {
	OnTeamID         int     `json:"onTeamId"`
	AppliedStatTotal float64 `json:"appliedStatTotal"`
	Player           *Player `json:"player"`
}

type Player struct {
	ID                int               `json:"id"`
	FullName          string            `json:"fullName"`
	DefaultPositionID int               `json:"defaultPositionId"`
	ProTeamID         int               `json:"proTeamId"`
	EligibleSlots     []int             `json:"eligibleSlots"`
	InjuryStatus      string            `json:"injuryStatus"`
	Stats             []PlayerStats     `json:"stats"`
	Ownership         *Ownership        `json:"ownership"`
	Ratings           map[string]Rating `json:"ratings"`
}

type PlayerStats struct {
	ScoringPeriodID int     `json:"scoringPeriodId"`
	SeasonID        int     `json:"seasonId"`
	StatSourceID    int     `json:"statSourceId"`    // 0 actual, 1 projected
	StatSplitTypeID int     `json:"statSplitTypeId"` // 0 season, 1 single week
	AppliedTotal    float64 `json:"appliedTotal"`
	AppliedAverage  float64 `json:"appliedAverage"`
}

type Ownership struct {
	PercentOwned   float64 `json:"percentOwned"`
	PercentStarted float64 `json:"percentStarted"`
}

type Rating struct {
	PositionalRanking int `json:"positionalRanking"`
}

// PlayerEntry wraps a player in the free-agent listing.
type PlayerEntry struct {
	Status string  `json:"status"`
	Player *Player `json:"player"`
}

type ScheduleItem struct {
	MatchupPeriodID int          `json:"matchupPeriodId"`
	Winner          string       `json:"winner"`
	Home            *MatchupTeam `json:"home"`
	Away            *MatchupTeam `json:"away"`
}

type MatchupTeam struct {
	TeamID                        int     `json:"teamId"`
	TotalPoints                   float64 `json:"totalPoints"`
	RosterForCurrentScoringPeriod *Roster `json:"rosterForCurrentScoringPeriod"`
}

type Settings struct {
	Name                string               `json:"name"`
	Size                int                  `json:"size"`
	ScoringSettings     *ScoringSettings     `json:"scoringSettings"`
	RosterSettings      *RosterSettings      `json:"rosterSettings"`
	ScheduleSettings    *ScheduleSettings    `json:"scheduleSettings"`
	AcquisitionSettings *AcquisitionSettings `json:"acquisitionSettings"`
}

type ScoringSettings struct {
	ScoringType  string        `json:"scoringType"`
	ScoringItems []ScoringItem `json:"scoringItems"`
}

type ScoringItem struct {
	StatID int     `json:"statId"`
	Points float64 `json:"points"`
}

type RosterSettings struct {
	LineupSlotCounts map[string]int `json:"lineupSlotCounts"`
}

type ScheduleSettings struct {
	MatchupPeriodCount int        `json:"matchupPeriodCount"`
	PlayoffTeamCount   int        `json:"playoffTeamCount"`
	Divisions          []Division `json:"divisions"`
}

type Division struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AcquisitionSettings struct {
	AcquisitionType   string `json:"acquisitionType"`
	AcquisitionBudget int    `json:"acquisitionBudget"`
}

type DraftDetail struct {
	Drafted bool        `json:"drafted"`
	Picks   []DraftPick `json:"picks"`
}

type DraftPick struct {
	RoundID         int  `json:"roundId"`
	RoundPickNumber int  `json:"roundPickNumber"`
	PlayerID        int  `json:"playerId"`
	TeamID          int  `json:"teamId"`
	Keeper          bool `json:"keeper"`
	BidAmount       int  `json:"bidAmount"`
}

type CommunicationResponse struct {
	Topics []Topic `json:"topics"`
}

type Topic struct {
	Date     int64     `json:"date"`
	Type     string    `json:"type"`
	Messages []Message `json:"messages"`
}

type Message struct {
	MessageTypeID int `json:"messageTypeId"`
	To            int `json:"to"`
	From          int `json:"from"`
	TargetID      int `json:"targetId"` // the player the message is about
}
