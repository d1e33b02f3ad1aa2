package player

import (
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"gorm.io/gorm"
)

type Player struct {
	gorm.Model
	Name   string        `json:"name" gorm:"not null"`
	Age    int           `json:"age"`
	TeamID uint          `json:"team_id" gorm:"index;not null"`
	Team   *team.Team    `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Mobile string        `json:"mobile"`
	Image  string        `json:"image"`
	Scores []PlayerScore `json:"scores" gorm:"foreignKey:PlayerID"`
}

// PlayerScore is the runs a player made in one match. One row per (player, match).
type PlayerScore struct {
	gorm.Model
	PlayerID uint `json:"player_id" gorm:"uniqueIndex:idx_player_match;not null"`
	MatchID  uint `json:"match_id" gorm:"uniqueIndex:idx_player_match;not null"`
	Score    int  `json:"score"`
}
