package model

import "testing"

func TestProTeamName(t *testing.T) {
	tests := []struct {
		id       int
		expected string
	}{
		{id: 0, expected: "FA"},
		{id: 2, expected: "BUF"},
		{id: 8, expected: "DET"},
		{id: 24, expected: "LAC"},
		{id: 25, expected: "SF"},
		{id: 33, expected: "BAL"},
		{id: 34, expected: "HOU"},

		// Ids ESPN has never assigned fall back to the free-agent label.
		{id: 31, expected: "FA"},
		{id: 99, expected: "FA"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := ProTeamName(tc.id); got != tc.expected {
				t.Errorf("ProTeamName(%d) = %s, expected %s", tc.id, got, tc.expected)
			}
		})
	}
}
