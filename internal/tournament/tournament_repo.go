package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// TournamentRepository defines methods to interact with tournament data
type TournamentRepository interface {
	CreateTournament(tournament *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournaments(page, pageSize int) ([]Tournament, int64, error)
}

// GormTournamentRepository implements TournamentRepository using GORM
type GormTournamentRepository struct {
	db *gorm.DB
}

func NewGormTournamentRepository(db *gorm.DB) *GormTournamentRepository {
	return &GormTournamentRepository{db: db}
}

func (r *GormTournamentRepository) CreateTournament(tournament *Tournament) error {
	return r.db.Create(tournament).Error
}

// GetTournamentByID returns nil, nil when the tournament does not exist.
func (r *GormTournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var tournament Tournament
	if err := r.db.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *GormTournamentRepository) GetTournaments(page, pageSize int) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("date asc, id asc").Offset(offset).Limit(pageSize).Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}
