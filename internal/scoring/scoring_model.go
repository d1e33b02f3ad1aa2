package scoring

import (
	"errors"
	"time"
)

type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusStarted   MatchStatus = "started"
	StatusCompleted MatchStatus = "completed"
)

// DismissalType for cricket wickets
type DismissalType string

const (
	DismissalTypeBowled      DismissalType = "bowled"
	DismissalTypeCaught      DismissalType = "caught"
	DismissalTypeLBW         DismissalType = "lbw"
	DismissalTypeRunOut      DismissalType = "run out"
	DismissalTypeStumped     DismissalType = "stumped"
	DismissalTypeHitWicket   DismissalType = "hit wicket"
	DismissalTypeRetiredHurt DismissalType = "retired hurt"
	DismissalTypeObstructing DismissalType = "obstructing the field"
)

var dismissalTypes = map[DismissalType]struct{}{
	DismissalTypeBowled:      {},
	DismissalTypeCaught:      {},
	DismissalTypeLBW:         {},
	DismissalTypeRunOut:      {},
	DismissalTypeStumped:     {},
	DismissalTypeHitWicket:   {},
	DismissalTypeRetiredHurt: {},
	DismissalTypeObstructing: {},
}

func (d DismissalType) Valid() bool {
	_, ok := dismissalTypes[d]
	return ok
}

var (
	// ErrInvalidScoreData is returned when a submission has a missing or non-numeric field.
	ErrInvalidScoreData = errors.New("invalid score data")
	// ErrMissingScoreData is returned when a winner is requested before both teams have a score.
	ErrMissingScoreData = errors.New("missing score data")
	ErrMatchNotFound    = errors.New("match not found")
)

type Wicket struct {
	Type     DismissalType `json:"type"`
	PlayerID uint          `json:"player_id"`
}

// ScoreEntry is one team's innings total for a match.
type ScoreEntry struct {
	ID      uint     `json:"id"`
	MatchID uint     `json:"match_id"`
	TeamID  uint     `json:"team_id"`
	Score   float64  `json:"score"`
	Overs   float64  `json:"overs"`
	RunRate float64  `json:"run_rate"`
	Wickets []Wicket `json:"wickets"`
}

// Match is the engine's view of a match: its two teams, date, score history and derived fields.
type Match struct {
	ID          uint
	TeamA       uint
	TeamB       uint
	Date        time.Time
	Scores      []ScoreEntry // insertion order
	Winner      *uint
	MatchStatus MatchStatus
}

// State is the derived pair written after a score submission. Winner nil means a tie.
type State struct {
	Winner      *uint       `json:"winner"`
	MatchStatus MatchStatus `json:"match_status"`
}
