package leaderboard

import "sort"

// Rank orders aggregated totals into leaderboard rows. Points sort descending
// with user id ascending as the tiebreak, so equal-point users always appear
// in the same order across requests and across periods. Rank is the 1-based
// position in that order; tied users do not share a rank.
//
// previousTotals is the same aggregation one period earlier and drives the
// movement columns; pass nil when no prior period exists (season boards) and
// every row is marked new.
func Rank(totals, previousTotals map[string]int) []Entry {
	entries := make([]Entry, 0, len(totals))
	for userID, points := range totals {
		entries = append(entries, Entry{UserID: userID, Points: points})
	}
	sortByPoints(entries)
	for idx := range entries {
		entries[idx].Rank = idx + 1
	}

	previousRank := rankPositions(previousTotals)
	for idx := range entries {
		entry := &entries[idx]
		oldRank, present := previousRank[entry.UserID]
		if !present {
			entry.Movement = MovementNew
			continue
		}

		entry.PreviousRank = oldRank
		switch {
		case entry.Rank < oldRank:
			entry.Movement = MovementUp
			entry.MovementAmount = oldRank - entry.Rank
		case entry.Rank > oldRank:
			entry.Movement = MovementDown
			entry.MovementAmount = entry.Rank - oldRank
		default:
			entry.Movement = MovementSame
		}
	}

	return entries
}

// rankPositions computes userID -> rank for a totals snapshot, using the same
// ordering as Rank so movement compares like with like.
func rankPositions(totals map[string]int) map[string]int {
	if len(totals) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(totals))
	for userID, points := range totals {
		entries = append(entries, Entry{UserID: userID, Points: points})
	}
	sortByPoints(entries)

	out := make(map[string]int, len(entries))
	for idx, entry := range entries {
		out[entry.UserID] = idx + 1
	}
	return out
}

func sortByPoints(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
}
