package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "QB", expected: POS_QB},
		{input: "qb", expected: POS_QB},
		{input: "WR", expected: POS_WR},
		{input: "wr", expected: POS_WR},
		{input: "RB", expected: POS_RB},
		{input: "TE", expected: POS_TE},
		{input: "K", expected: POS_K},
		{input: "D/ST", expected: POS_DEF},
		{input: "DST", expected: POS_DEF},
		{input: "def", expected: POS_DEF},
		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestPositionFromID(t *testing.T) {
	tests := []struct {
		input    int
		expected Position
	}{
		{input: 1, expected: POS_QB},
		{input: 2, expected: POS_RB},
		{input: 3, expected: POS_WR},
		{input: 4, expected: POS_TE},
		{input: 5, expected: POS_K},
		{input: 16, expected: POS_DEF},
		{input: 99, expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := PositionFromID(tc.input)
		if a != tc.expected {
			t.Errorf("input: %d, expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestSlotName(t *testing.T) {
	if n := SlotName(23); n != "FLEX" {
		t.Errorf("expected FLEX, got %s", n)
	}
	if n := SlotName(20); n != "BE" {
		t.Errorf("expected BE, got %s", n)
	}
	if n := SlotName(99); n != "SLOT_99" {
		t.Errorf("expected SLOT_99, got %s", n)
	}
}

func TestSlotIDForPosition(t *testing.T) {
	id, found := SlotIDForPosition(POS_QB)
	if !found || id != 0 {
		t.Errorf("expected slot 0 for QB, got %d (found=%t)", id, found)
	}
	id, found = SlotIDForPosition(POS_DEF)
	if !found || id != 16 {
		t.Errorf("expected slot 16 for D/ST, got %d (found=%t)", id, found)
	}
	if _, found := SlotIDForPosition(POS_UNKNOWN); found {
		t.Error("expected no slot for UNK")
	}
}

func TestProTeamNameBasics(t *testing.T) {
	if n := ProTeamName(26); n != "SEA" {
		t.Errorf("expected SEA, got %s", n)
	}
	if n := ProTeamName(0); n != "FA" {
		t.Errorf("expected FA, got %s", n)
	}
	if n := ProTeamName(255); n != "FA" {
		t.Errorf("expected FA for unknown id, got %s", n)
	}
}
