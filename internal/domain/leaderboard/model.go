package leaderboard

const (
	MovementUp   = "up"
	MovementDown = "down"
	MovementSame = "same"
	MovementNew  = "new"
)

// Entry is one leaderboard row. Entries are recomputed from source data on
// every request and never persisted, so they can never go stale.
type Entry struct {
	UserID         string
	Points         int
	Rank           int
	PreviousRank   int
	Movement       string
	MovementAmount int
}
