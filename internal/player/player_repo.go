package player

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository defines methods to interact with player data
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayers(filters map[string]interface{}, page, pageSize int) ([]Player, int64, error)
	UpsertScore(score *PlayerScore) error
}

type GormPlayerRepository struct {
	db *gorm.DB
}

func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

func (r *GormPlayerRepository) CreatePlayer(player *Player) error {
	return r.db.Omit(clause.Associations).Create(player).Error
}

func (r *GormPlayerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	if err := r.db.Preload("Team").Preload("Scores").First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *GormPlayerRepository) GetPlayers(filters map[string]interface{}, page, pageSize int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_id = ?", teamID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Scores").Order("id asc").Offset(offset).Limit(pageSize).Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// UpsertScore inserts the (player, match) score or overwrites the existing one.
func (r *GormPlayerRepository) UpsertScore(score *PlayerScore) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(score).Error
}
