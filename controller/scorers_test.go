package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/danieloyasodun/fantasy-gm/model"
	"github.com/danieloyasodun/fantasy-gm/platforms/espn/mockespn"
	"github.com/itbasis/go-clock"
)

func TestGetTopScorer(t *testing.T) {
	espnMock := &mockespn.Client{}
	espnMock.On("GetLeague", 42, 2025).Return(testLeague(), nil)

	ctrl, err := New(clock.New(), espnMock)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	r, err := ctrl.GetTopScorer(context.Background(), 42, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	// Teams 1 and 3 are tied on points; the first in upstream order wins.
	if r.TeamID != 1 || r.Points != 812.5 {
		t.Errorf("unexpected top scorer: %+v", r)
	}
	if r.Wins != 5 || r.Losses != 2 || r.Ties != 0 {
		t.Errorf("unexpected record on top scorer: %+v", r)
	}
	espnMock.AssertExpectations(t)
}

func TestGetLowestScorer(t *testing.T) {
	espnMock := &mockespn.Client{}
	espnMock.On("GetLeague", 42, 2025).Return(testLeague(), nil)

	ctrl, err := New(clock.New(), espnMock)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	r, err := ctrl.GetLowestScorer(context.Background(), 42, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if r.TeamID != 4 || r.Points != 640.25 {
		t.Errorf("unexpected lowest scorer: %+v", r)
	}
	espnMock.AssertExpectations(t)
}

func TestGetTopScorer_emptyLeague(t *testing.T) {
	espnMock := &mockespn.Client{}
	espnMock.On("GetLeague", 42, 2025).Return(&model.League{ID: 42, Year: 2025}, nil)

	ctrl, err := New(clock.New(), espnMock)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	r, err := ctrl.GetTopScorer(context.Background(), 42, 2025)
	if !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got %v", err)
	}
	if r != nil {
		t.Errorf("record should have been nil, was %+v", r)
	}
}

func TestGetPointOrder(t *testing.T) {
	espnMock := &mockespn.Client{}
	espnMock.On("GetLeague", 42, 2025).Return(testLeague(), nil)

	ctrl, err := New(clock.New(), espnMock)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	records, err := ctrl.GetPointOrder(context.Background(), 42, 2025)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	// The tied teams 1 and 3 keep their upstream order.
	expectedIDs := []int{1, 3, 2, 4}
	for i, id := range expectedIDs {
		if records[i].TeamID != id {
			t.Errorf("position %d: expected team %d, got %d", i, id, records[i].TeamID)
		}
	}
	for i := 1; i < len(records); i++ {
		if records[i].Points > records[i-1].Points {
			t.Errorf("records are not sorted by points: %f after %f",
				records[i].Points, records[i-1].Points)
		}
	}
	espnMock.AssertExpectations(t)
}
