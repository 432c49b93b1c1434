package leaderboard

import "testing"

func TestRank_OrdersByPointsThenUserID(t *testing.T) {
	t.Parallel()

	totals := map[string]int{
		"usr-b": 40,
		"usr-a": 40,
		"usr-c": 90,
		"usr-d": 10,
	}

	entries := Rank(totals, nil)
	wantOrder := []string{"usr-c", "usr-a", "usr-b", "usr-d"}
	for idx, want := range wantOrder {
		if entries[idx].UserID != want {
			t.Fatalf("position %d: got %s, want %s", idx+1, entries[idx].UserID, want)
		}
		if entries[idx].Rank != idx+1 {
			t.Fatalf("position %d: rank %d", idx+1, entries[idx].Rank)
		}
	}

	// Tied users hold distinct ranks.
	if entries[1].Rank == entries[2].Rank {
		t.Fatal("tied users must not share a rank")
	}
}

func TestRank_NilPreviousMarksEveryoneNew(t *testing.T) {
	t.Parallel()

	entries := Rank(map[string]int{"usr-a": 10, "usr-b": 5}, nil)
	for _, entry := range entries {
		if entry.Movement != MovementNew {
			t.Fatalf("user %s: movement %q, want new", entry.UserID, entry.Movement)
		}
		if entry.PreviousRank != 0 || entry.MovementAmount != 0 {
			t.Fatalf("user %s: unexpected previous rank data: %+v", entry.UserID, entry)
		}
	}
}

func TestRank_Movement(t *testing.T) {
	t.Parallel()

	previous := map[string]int{
		"usr-a": 50, // rank 1
		"usr-b": 30, // rank 2
		"usr-c": 10, // rank 3
	}
	current := map[string]int{
		"usr-a": 50, // rank 2 now, down 1
		"usr-b": 80, // rank 1 now, up 1
		"usr-c": 10, // rank 4 now, down 1
		"usr-d": 20, // new entrant at rank 3
	}

	entries := Rank(current, previous)
	byUser := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		byUser[entry.UserID] = entry
	}

	if e := byUser["usr-b"]; e.Movement != MovementUp || e.MovementAmount != 1 || e.PreviousRank != 2 {
		t.Fatalf("usr-b: %+v", e)
	}
	if e := byUser["usr-a"]; e.Movement != MovementDown || e.MovementAmount != 1 || e.PreviousRank != 1 {
		t.Fatalf("usr-a: %+v", e)
	}
	if e := byUser["usr-c"]; e.Movement != MovementDown || e.MovementAmount != 1 {
		t.Fatalf("usr-c: %+v", e)
	}
	if e := byUser["usr-d"]; e.Movement != MovementNew {
		t.Fatalf("usr-d: %+v", e)
	}
}

func TestRank_SameRankIsStable(t *testing.T) {
	t.Parallel()

	totals := map[string]int{"usr-a": 50, "usr-b": 30}
	entries := Rank(totals, totals)
	for _, entry := range entries {
		if entry.Movement != MovementSame {
			t.Fatalf("user %s: movement %q, want same", entry.UserID, entry.Movement)
		}
		if entry.MovementAmount != 0 {
			t.Fatalf("user %s: movement amount %d", entry.UserID, entry.MovementAmount)
		}
	}
}

func TestRank_EmptyTotals(t *testing.T) {
	t.Parallel()

	entries := Rank(nil, nil)
	if len(entries) != 0 {
		t.Fatalf("expected empty board, got %d entries", len(entries))
	}
}
