package match

import (
	"time"

	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"gorm.io/gorm"
)

// Match is a fixture between two distinct teams. Winner and MatchStatus are derived
// from the score history and are only written by the scoring engine.
type Match struct {
	gorm.Model
	TournamentID uint                  `json:"tournament_id" gorm:"index;not null"`
	Tournament   tournament.Tournament `json:"tournament,omitempty" gorm:"foreignKey:TournamentID"`
	TeamOneID    uint                  `json:"team_one_id" gorm:"index;not null"`
	TeamOne      team.Team             `json:"team_one,omitempty" gorm:"foreignKey:TeamOneID"`
	TeamTwoID    uint                  `json:"team_two_id" gorm:"index;not null"`
	TeamTwo      team.Team             `json:"team_two,omitempty" gorm:"foreignKey:TeamTwoID"`
	Date         time.Time             `json:"date" gorm:"index"`
	Scores       []ScoreEntry          `json:"scores" gorm:"foreignKey:MatchID"`
	MatchStatus  scoring.MatchStatus   `json:"match_status" gorm:"type:varchar(20);default:'upcoming'"`
	WinnerID     *uint                 `json:"winner_id"`
	Winner       *team.Team            `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
}

// ScoreEntry is one innings total. Entries are append-only.
type ScoreEntry struct {
	gorm.Model
	MatchID uint     `json:"match_id" gorm:"index;not null"`
	TeamID  uint     `json:"team_id" gorm:"index;not null"`
	Score   float64  `json:"score"`
	Overs   float64  `json:"overs"`
	RunRate float64  `json:"run_rate"`
	Wickets []Wicket `json:"wickets" gorm:"foreignKey:ScoreEntryID"`
}

type Wicket struct {
	gorm.Model
	ScoreEntryID uint                  `json:"score_entry_id" gorm:"index;not null"`
	Type         scoring.DismissalType `json:"type" gorm:"type:varchar(32)"`
	PlayerID     uint                  `json:"player_id" gorm:"index"`
}

func (m *Match) toScoring() *scoring.Match {
	out := &scoring.Match{
		ID:          m.ID,
		TeamA:       m.TeamOneID,
		TeamB:       m.TeamTwoID,
		Date:        m.Date,
		Winner:      m.WinnerID,
		MatchStatus: m.MatchStatus,
		Scores:      make([]scoring.ScoreEntry, 0, len(m.Scores)),
	}
	for _, s := range m.Scores {
		out.Scores = append(out.Scores, s.toScoring())
	}
	return out
}

func (s *ScoreEntry) toScoring() scoring.ScoreEntry {
	out := scoring.ScoreEntry{
		ID:      s.ID,
		MatchID: s.MatchID,
		TeamID:  s.TeamID,
		Score:   s.Score,
		Overs:   s.Overs,
		RunRate: s.RunRate,
		Wickets: make([]scoring.Wicket, 0, len(s.Wickets)),
	}
	for _, w := range s.Wickets {
		out.Wickets = append(out.Wickets, scoring.Wicket{Type: w.Type, PlayerID: w.PlayerID})
	}
	return out
}

func scoreEntryFromScoring(e *scoring.ScoreEntry) ScoreEntry {
	row := ScoreEntry{
		MatchID: e.MatchID,
		TeamID:  e.TeamID,
		Score:   e.Score,
		Overs:   e.Overs,
		RunRate: e.RunRate,
	}
	for _, w := range e.Wickets {
		row.Wickets = append(row.Wickets, Wicket{Type: w.Type, PlayerID: w.PlayerID})
	}
	return row
}
