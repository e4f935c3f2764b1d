package store

import (
	"testing"

	"github.com/samir-kerkar/nba-pmi-engine/internal/domain"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	players := []domain.Player{
		{ID: "1", Name: "First Player"},
		{ID: "2", Name: "Second Player"},
	}
	summaries := []domain.CareerSummary{
		{PlayerID: "1", Competition: domain.CompetitionRegular, PMI: 4.2},
		{PlayerID: "1", Competition: domain.CompetitionPlayoffs, PMI: 3.8},
	}

	s.SetResults(players, summaries)

	if got := len(s.ListPlayers()); got != 2 {
		t.Fatalf("expected 2 players, got %d", got)
	}

	p, ok := s.GetPlayer("1")
	if !ok {
		t.Fatalf("expected to find player with id 1")
	}
	if p.Name != "First Player" {
		t.Fatalf("unexpected name %s", p.Name)
	}

	if got := len(s.Summaries("1")); got != 2 {
		t.Fatalf("expected 2 summaries for player 1, got %d", got)
	}
	if got := len(s.AllSummaries()); got != 2 {
		t.Fatalf("expected 2 summaries total, got %d", got)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetPlayer("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
	if got := len(s.Summaries("missing")); got != 0 {
		t.Fatalf("expected no summaries for missing player, got %d", got)
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetResults([]domain.Player{{ID: "old"}}, []domain.CareerSummary{{PlayerID: "old"}})

	s.SetResults([]domain.Player{{ID: "new"}}, nil)

	if _, ok := s.GetPlayer("old"); ok {
		t.Fatalf("expected old player to be removed after replace")
	}
	if _, ok := s.GetPlayer("new"); !ok {
		t.Fatalf("expected new player to be present")
	}
	if got := len(s.Summaries("old")); got != 0 {
		t.Fatalf("expected old summaries to be removed, got %d", got)
	}
}

func TestMemoryStoreSummariesReturnCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetResults(
		[]domain.Player{{ID: "copy"}},
		[]domain.CareerSummary{{PlayerID: "copy", PMI: 5.0}},
	)

	list := s.Summaries("copy")
	if len(list) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(list))
	}

	list[0].PMI = -1

	if got := s.Summaries("copy")[0].PMI; got != 5.0 {
		t.Fatalf("expected store to remain unchanged, got %v", got)
	}
}
