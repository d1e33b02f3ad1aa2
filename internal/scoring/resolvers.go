package scoring

import (
	"fmt"
	"time"
)

// ComputeRunRate returns runs per over. Zero or negative overs give 0.
func ComputeRunRate(score, overs float64) float64 {
	if overs > 0 {
		return score / overs
	}
	return 0
}

// ResolveStatus compares the match date with now. Started only holds when the two
// instants are exactly equal.
func ResolveStatus(matchDate, now time.Time) MatchStatus {
	switch {
	case now.Before(matchDate):
		return StatusUpcoming
	case now.After(matchDate):
		return StatusCompleted
	default:
		return StatusStarted
	}
}

// FindScore returns the first entry recorded for teamID.
func FindScore(scores []ScoreEntry, teamID uint) (ScoreEntry, bool) {
	for _, s := range scores {
		if s.TeamID == teamID {
			return s, true
		}
	}
	return ScoreEntry{}, false
}

// ResolveWinner compares the first entry of each team. Equal totals return a nil winner
// and no error; no tie-break is applied.
func ResolveWinner(scores []ScoreEntry, teamA, teamB uint) (*uint, error) {
	a, ok := FindScore(scores, teamA)
	if !ok {
		return nil, fmt.Errorf("%w: team %d has not recorded a score yet", ErrMissingScoreData, teamA)
	}
	b, ok := FindScore(scores, teamB)
	if !ok {
		return nil, fmt.Errorf("%w: team %d has not recorded a score yet", ErrMissingScoreData, teamB)
	}

	switch {
	case a.Score > b.Score:
		return &teamA, nil
	case b.Score > a.Score:
		return &teamB, nil
	default:
		return nil, nil
	}
}
