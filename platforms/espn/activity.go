package espn

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn/internal"
)

// The transaction message type ids ESPN uses in its communication feed.
var activityKinds = map[int]string{
	178: "FA ADDED",
	179: "DROPPED",
	180: "WAIVER ADDED",
	181: "DROPPED",
	239: "DROPPED",
	244: "TRADED",
}

// msgTypeFilters maps the msg_type query parameter to the message type
// ids sent in the topic filter. Unrecognized values fall through to an
// unfiltered request, matching upstream behavior.
var msgTypeFilters = map[string][]int{
	"FA":     {178, 179},
	"WAIVER": {180, 181, 239},
	"TRADED": {244},
}

func (c *client) GetActivity(ctx context.Context, leagueID, year, size int, msgType string) ([]model.ActivityEntry, error) {
	// The feed references teams and players only by id.
	league, err := c.getLeagueViews(ctx, leagueID, year, nil, "mTeam")
	if err != nil {
		return nil, err
	}
	if len(league.Teams) == 0 {
		return nil, ErrLeagueNotFound
	}
	teamNames := make(map[int]string, len(league.Teams))
	for _, t := range league.Teams {
		teamNames[t.ID] = teamName(&t)
	}

	playerNames, err := c.playerNames(ctx, year)
	if err != nil {
		return nil, err
	}

	topicFilter := map[string]any{
		"filterType": map[string]any{"value": []string{"ACTIVITY_TRANSACTIONS"}},
		"limit":      size,
	}
	if ids, found := msgTypeFilters[msgType]; found {
		topicFilter["filterIncludeMessageTypeIds"] = map[string]any{"value": ids}
	}
	filter := map[string]any{"topics": topicFilter}

	query := url.Values{}
	query.Add("view", "kona_league_communication")

	var resp internal.CommunicationResponse
	path := fmt.Sprintf("%s/communication/", leaguePath(leagueID, year))
	if err := c.get(ctx, path, query, filter, &resp); err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, 0, len(resp.Topics))
	for _, topic := range resp.Topics {
		entries = append(entries, model.ActivityEntry{
			Date:    topic.Date,
			Type:    topic.Type,
			Actions: topicActions(&topic, teamNames, playerNames),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

// topicActions flattens a topic's messages into field tuples and lets the
// model decide each tuple's shape. Trade messages within one topic are a
// single logical event, so their sides merge into one interleaved tuple.
func topicActions(topic *internal.Topic, teamNames map[int]string, playerNames map[int]string) []model.Action {
	var actions []model.Action
	var tradeFields []string

	for _, msg := range topic.Messages {
		kind, known := activityKinds[msg.MessageTypeID]
		if !known {
			kind = fmt.Sprintf("UNKNOWN (%d)", msg.MessageTypeID)
		}
		team := teamNames[messageTeam(&msg)]
		player := playerNames[msg.TargetID]

		if msg.MessageTypeID == 244 {
			if len(tradeFields) == 0 {
				tradeFields = append(tradeFields, team, kind, player)
			} else {
				tradeFields = append(tradeFields, team, player)
			}
			continue
		}

		actions = append(actions, model.ActionsFromTuple([]string{team, kind, player})...)
	}

	if len(tradeFields) > 0 {
		actions = append(actions, model.ActionsFromTuple(tradeFields)...)
	}

	return actions
}

// Adds credit the receiving roster, drops the releasing one.
func messageTeam(msg *internal.Message) int {
	switch msg.MessageTypeID {
	case 179, 181, 239:
		return msg.From
	default:
		return msg.To
	}
}
