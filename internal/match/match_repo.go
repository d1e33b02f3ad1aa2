package match

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository defines methods to interact with match and score data.
// It also serves as the scoring engine's Store.
type MatchRepository interface {
	scoring.Store

	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error)
	MatchExists(id uint) (bool, error)

	GetScores(filters map[string]interface{}, page, pageSize int) ([]ScoreEntry, int64, error)
	GetFirstScore(matchID, teamID uint) (*ScoreEntry, error)

	// LockMatch fails with scoring.ErrMatchNotFound when the match does not exist.
	LockMatch(ctx context.Context, matchID uint) error

	WithTransaction(txFunc func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(txFunc func(MatchRepository) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txRepo := &GormMatchRepository{db: tx}
	err := txFunc(txRepo)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func scoresInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("score_entries.id asc")
}

// --- scoring.Store ---

func (r *GormMatchRepository) WithinMatch(ctx context.Context, matchID uint, fn func(scoring.Store) error) error {
	scoped := &GormMatchRepository{db: r.db.WithContext(ctx)}
	return scoped.WithTransaction(func(txRepo MatchRepository) error {
		if err := txRepo.LockMatch(ctx, matchID); err != nil {
			return err
		}
		return fn(txRepo)
	})
}

// LockMatch takes a row lock on postgres. SQLite serializes writers on its own.
func (r *GormMatchRepository) LockMatch(ctx context.Context, matchID uint) error {
	query := r.db.WithContext(ctx).Select("id")
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m Match
	if err := query.First(&m, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scoring.ErrMatchNotFound
		}
		return err
	}
	return nil
}

func (r *GormMatchRepository) LoadMatch(ctx context.Context, matchID uint) (*scoring.Match, error) {
	var m Match
	err := r.db.WithContext(ctx).
		Preload("Scores", scoresInOrder).
		Preload("Scores.Wickets").
		First(&m, matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scoring.ErrMatchNotFound
		}
		return nil, err
	}
	return m.toScoring(), nil
}

func (r *GormMatchRepository) AppendScore(ctx context.Context, entry *scoring.ScoreEntry) error {
	row := scoreEntryFromScoring(entry)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	entry.ID = row.ID
	return nil
}

// UpdateDerivedFields writes winner and status in a single statement.
func (r *GormMatchRepository) UpdateDerivedFields(ctx context.Context, matchID uint, winner *uint, status scoring.MatchStatus) error {
	result := r.db.WithContext(ctx).Model(&Match{}).Where("id = ?", matchID).Updates(map[string]interface{}{
		"winner_id":    winner,
		"match_status": status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return scoring.ErrMatchNotFound
	}
	return nil
}

// --- Match operations ---

func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Omit(clause.Associations).Create(match).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var match Match
	err := r.db.Preload("Tournament").
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Winner").
		Preload("Scores", scoresInOrder).
		Preload("Scores.Wickets").
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) MatchExists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Match{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormMatchRepository) GetMatches(filters map[string]interface{}, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if tournamentID, ok := filters["tournament_id"]; ok {
		query = query.Where("tournament_id = ?", tournamentID)
	}
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_one_id = ? OR team_two_id = ?", teamID, teamID)
	}
	if status, ok := filters["match_status"]; ok {
		query = query.Where("match_status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Tournament").
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Winner").
		Order("date asc, id asc").
		Offset(offset).
		Limit(pageSize).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// --- Score operations ---

func (r *GormMatchRepository) GetScores(filters map[string]interface{}, page, pageSize int) ([]ScoreEntry, int64, error) {
	var scores []ScoreEntry
	var total int64

	query := r.db.Model(&ScoreEntry{})
	if matchID, ok := filters["match_id"]; ok {
		query = query.Where("match_id = ?", matchID)
	}
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_id = ?", teamID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Wickets").Order("id asc").Offset(offset).Limit(pageSize).Find(&scores).Error; err != nil {
		return nil, 0, err
	}
	return scores, total, nil
}

// GetFirstScore returns the earliest entry a team recorded in a match, or nil, nil.
func (r *GormMatchRepository) GetFirstScore(matchID, teamID uint) (*ScoreEntry, error) {
	var score ScoreEntry
	err := r.db.Preload("Wickets").
		Where("match_id = ? AND team_id = ?", matchID, teamID).
		Order("id asc").
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}
