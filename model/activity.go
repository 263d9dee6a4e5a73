package model

import "strings"

// ActivityEntry is one transaction-log topic: a timestamp, the topic type,
// and the actions it contained.
type ActivityEntry struct {
	Date    int64 // epoch milliseconds, as reported upstream
	Type    string
	Actions []Action
}

// Action is the tagged form of the variable-shape action tuples the
// upstream feed produces. A 3-field group is a SingleAction, a 5-field
// trade group is a TradeAction, and anything else is preserved verbatim
// as a RawAction so schema drift degrades instead of failing a request.
type Action interface {
	isAction()
}

type SingleAction struct {
	Team   string
	Kind   string // e.g. "FA ADDED", "WAIVER ADDED", "DROPPED"
	Player string
}

// TradeAction is one logical trade event covering both sides.
type TradeAction struct {
	TeamA   string
	PlayerA string
	TeamB   string
	PlayerB string
}

type RawAction struct {
	Text string
}

func (SingleAction) isAction() {}
func (TradeAction) isAction()  {}
func (RawAction) isAction()    {}

// ActionsFromTuple decides an action's shape at the adapter boundary. The
// fields of a trade tuple are interleaved as
// (teamA, kind, playerA, teamB, playerB).
func ActionsFromTuple(fields []string) []Action {
	switch len(fields) {
	case 3:
		return []Action{SingleAction{Team: fields[0], Kind: fields[1], Player: fields[2]}}
	case 5:
		return []Action{TradeAction{
			TeamA:   fields[0],
			PlayerA: fields[2],
			TeamB:   fields[3],
			PlayerB: fields[4],
		}}
	default:
		return []Action{RawAction{Text: strings.Join(fields, "|")}}
	}
}
