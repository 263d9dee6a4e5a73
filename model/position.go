package model

import (
	"fmt"
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DEF     Position = "D/ST"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k":
		return POS_K
	case "d/st", "dst", "def":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

// ESPN identifies a player's primary position with a numeric id
// rather than a string.
func PositionFromID(id int) Position {
	switch id {
	case 1:
		return POS_QB
	case 2:
		return POS_RB
	case 3:
		return POS_WR
	case 4:
		return POS_TE
	case 5:
		return POS_K
	case 16:
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

// Lineup slot ids used in rosters, box score lineups, and the free-agent filter.
var slotNames = map[int]string{
	0:  "QB",
	2:  "RB",
	3:  "RB/WR",
	4:  "WR",
	5:  "WR/TE",
	6:  "TE",
	7:  "OP",
	16: "D/ST",
	17: "K",
	20: "BE",
	21: "IR",
	23: "FLEX",
}

func SlotName(id int) string {
	if n, found := slotNames[id]; found {
		return n
	}
	return fmt.Sprintf("SLOT_%d", id)
}

// SlotIDForPosition returns the lineup slot id that selects players of the
// given position, used when asking the upstream API for free agents.
func SlotIDForPosition(pos Position) (int, bool) {
	switch pos {
	case POS_QB:
		return 0, true
	case POS_RB:
		return 2, true
	case POS_WR:
		return 4, true
	case POS_TE:
		return 6, true
	case POS_DEF:
		return 16, true
	case POS_K:
		return 17, true
	default:
		return 0, false
	}
}
