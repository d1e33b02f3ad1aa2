package scoring

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"
)

// Store is the persistence collaborator used by the Engine. Every method is expected to be
// atomic at single-match granularity.
type Store interface {
	LoadMatch(ctx context.Context, matchID uint) (*Match, error)
	AppendScore(ctx context.Context, entry *ScoreEntry) error
	UpdateDerivedFields(ctx context.Context, matchID uint, winner *uint, status MatchStatus) error

	// WithinMatch runs fn against a Store scoped to a single match. Implementations must
	// serialize concurrent scopes for the same match and roll back when fn returns an error.
	WithinMatch(ctx context.Context, matchID uint, fn func(Store) error) error
}

// Submission is a score as received from a client. Score and Overs are pointers so a
// missing value can be told apart from zero.
type Submission struct {
	TeamID  uint
	Score   *float64
	Overs   *float64
	Wickets []Wicket
}

// Result carries the recorded entry and the derived state written for the match.
type Result struct {
	Entry ScoreEntry `json:"entry"`
	State State      `json:"state"`
}

type Engine struct {
	store Store
	now   func() time.Time
	locks *matchLocks
}

type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		locks: newMatchLocks(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now exposes the engine clock so query endpoints resolve status against the same time source.
func (e *Engine) Now() time.Time {
	return e.now()
}

// OnScoreSubmitted records a score for a match and re-derives its winner and status.
//
// When only one team has scored so far the entry is still recorded, but the derived fields
// are left untouched and the returned error wraps ErrMissingScoreData. Result is non-nil in
// that case so callers can report what was stored.
func (e *Engine) OnScoreSubmitted(ctx context.Context, matchID uint, sub Submission) (*Result, error) {
	entry, err := sub.toEntry(matchID)
	if err != nil {
		return nil, err
	}

	unlock := e.locks.lock(matchID)
	defer unlock()

	var (
		res     Result
		pending error
	)
	err = e.store.WithinMatch(ctx, matchID, func(tx Store) error {
		m, err := tx.LoadMatch(ctx, matchID)
		if err != nil {
			return err
		}
		if entry.TeamID != m.TeamA && entry.TeamID != m.TeamB {
			return fmt.Errorf("%w: team_id %d is not playing in match %d", ErrInvalidScoreData, entry.TeamID, matchID)
		}

		if err := tx.AppendScore(ctx, &entry); err != nil {
			return fmt.Errorf("append score: %w", err)
		}
		res.Entry = entry

		m, err = tx.LoadMatch(ctx, matchID)
		if err != nil {
			return err
		}

		winner, err := ResolveWinner(m.Scores, m.TeamA, m.TeamB)
		if errors.Is(err, ErrMissingScoreData) {
			// keep the appended entry, skip the derived pair
			pending = err
			res.State = State{Winner: m.Winner, MatchStatus: m.MatchStatus}
			return nil
		}
		if err != nil {
			return err
		}
		status := ResolveStatus(m.Date, e.now())

		if err := tx.UpdateDerivedFields(ctx, matchID, winner, status); err != nil {
			return fmt.Errorf("update derived fields: %w", err)
		}
		res.State = State{Winner: winner, MatchStatus: status}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidScoreData) && !errors.Is(err, ErrMatchNotFound) {
			log.Printf("scoring: submission for match %d failed: %v", matchID, err)
		}
		return nil, err
	}
	if pending != nil {
		return &res, pending
	}
	return &res, nil
}

func (s Submission) toEntry(matchID uint) (ScoreEntry, error) {
	if s.TeamID == 0 {
		return ScoreEntry{}, fmt.Errorf("%w: team_id is required", ErrInvalidScoreData)
	}
	if err := checkNumber("score", s.Score); err != nil {
		return ScoreEntry{}, err
	}
	if err := checkNumber("overs", s.Overs); err != nil {
		return ScoreEntry{}, err
	}
	for i, w := range s.Wickets {
		if !w.Type.Valid() {
			return ScoreEntry{}, fmt.Errorf("%w: wickets[%d].type %q is not a dismissal kind", ErrInvalidScoreData, i, w.Type)
		}
		if w.PlayerID == 0 {
			return ScoreEntry{}, fmt.Errorf("%w: wickets[%d].player is required", ErrInvalidScoreData, i)
		}
	}

	return ScoreEntry{
		MatchID: matchID,
		TeamID:  s.TeamID,
		Score:   *s.Score,
		Overs:   *s.Overs,
		RunRate: ComputeRunRate(*s.Score, *s.Overs),
		Wickets: s.Wickets,
	}, nil
}

func checkNumber(field string, v *float64) error {
	if v == nil {
		return fmt.Errorf("%w: %s is required", ErrInvalidScoreData, field)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidScoreData, field)
	}
	return nil
}

// matchLocks hands out one mutex per match id and forgets it once nobody holds it.
type matchLocks struct {
	mu    sync.Mutex
	locks map[uint]*matchLock
}

type matchLock struct {
	mu   sync.Mutex
	refs int
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[uint]*matchLock)}
}

func (l *matchLocks) lock(matchID uint) func() {
	l.mu.Lock()
	ml, ok := l.locks[matchID]
	if !ok {
		ml = &matchLock{}
		l.locks[matchID] = ml
	}
	ml.refs++
	l.mu.Unlock()

	ml.mu.Lock()
	return func() {
		ml.mu.Unlock()
		l.mu.Lock()
		ml.refs--
		if ml.refs == 0 {
			delete(l.locks, matchID)
		}
		l.mu.Unlock()
	}
}
