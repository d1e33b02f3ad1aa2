// Package models lists every persisted type so main and tests migrate the same schema.
package models

import (
	"fmt"

	"github.com/DhavalSuthar-24/crickscore/internal/match"
	"github.com/DhavalSuthar-24/crickscore/internal/player"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"gorm.io/gorm"
)

// All returns the models in dependency order.
func All() []interface{} {
	return []interface{}{
		&tournament.Tournament{},
		&team.Team{},
		&match.Match{},
		&match.ScoreEntry{},
		&match.Wicket{},
		&player.Player{},
		&player.PlayerScore{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
