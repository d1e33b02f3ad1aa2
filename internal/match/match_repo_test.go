package match

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&tournament.Tournament{}, &team.Team{}, &Match{}, &ScoreEntry{}, &Wicket{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	tournament tournament.Tournament
	teamA      team.Team
	teamB      team.Team
	match      Match
}

func seed(t *testing.T, db *gorm.DB, date time.Time) fixture {
	t.Helper()
	f := fixture{
		tournament: tournament.Tournament{Name: "Summer Cup", Date: date},
		teamA:      team.Team{Name: "Lions", Address: "North Stand"},
		teamB:      team.Team{Name: "Tigers", Address: "South Stand"},
	}
	for _, v := range []interface{}{&f.tournament, &f.teamA, &f.teamB} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	f.match = Match{
		TournamentID: f.tournament.ID,
		TeamOneID:    f.teamA.ID,
		TeamTwoID:    f.teamB.ID,
		Date:         date,
		MatchStatus:  scoring.ResolveStatus(date, fixedNow),
	}
	if err := NewGormMatchRepository(db).CreateMatch(&f.match); err != nil {
		t.Fatalf("create match: %v", err)
	}
	return f
}

func ptr(v float64) *float64 { return &v }

func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadMatchNotFound(t *testing.T) {
	repo := NewGormMatchRepository(newTestDB(t))

	_, err := repo.LoadMatch(context.Background(), 42)
	if !errors.Is(err, scoring.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
	err = repo.WithinMatch(context.Background(), 42, func(scoring.Store) error { return nil })
	if !errors.Is(err, scoring.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound from WithinMatch, got %v", err)
	}
}

func TestEngineWithGormStore(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow.Add(-3*time.Hour))
	repo := NewGormMatchRepository(db)
	engine := scoring.NewEngine(repo, scoring.WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	before, err := repo.GetMatchByID(f.match.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	assertEq(t, before.MatchStatus, scoring.StatusCompleted)

	res, err := engine.OnScoreSubmitted(ctx, f.match.ID, scoring.Submission{
		TeamID:  f.teamA.ID,
		Score:   ptr(180),
		Overs:   ptr(20),
		Wickets: []scoring.Wicket{{Type: scoring.DismissalTypeCaught, PlayerID: 11}},
	})
	if !errors.Is(err, scoring.ErrMissingScoreData) {
		t.Fatalf("expected ErrMissingScoreData, got %v", err)
	}
	if res == nil || res.Entry.ID == 0 {
		t.Fatalf("expected the entry to be recorded, got %+v", res)
	}
	assertEq(t, res.Entry.RunRate, 9.0)

	stored, err := repo.GetMatchByID(f.match.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.WinnerID != nil {
		t.Fatalf("winner must stay unset, got %d", *stored.WinnerID)
	}
	assertEq(t, stored.MatchStatus, before.MatchStatus)
	assertEq(t, res.State.MatchStatus, before.MatchStatus)

	res, err = engine.OnScoreSubmitted(ctx, f.match.ID, scoring.Submission{TeamID: f.teamB.ID, Score: ptr(150), Overs: ptr(20)})
	if err != nil {
		t.Fatalf("second submission: %v", err)
	}
	if res.State.Winner == nil || *res.State.Winner != f.teamA.ID {
		t.Fatalf("expected team A to win, got %v", res.State.Winner)
	}
	assertEq(t, res.State.MatchStatus, scoring.StatusCompleted)

	stored, err = repo.GetMatchByID(f.match.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.WinnerID == nil || *stored.WinnerID != f.teamA.ID {
		t.Fatalf("expected stored winner %d, got %v", f.teamA.ID, stored.WinnerID)
	}
	if stored.Winner == nil || stored.Winner.Name != "Lions" {
		t.Fatalf("expected winner preloaded, got %+v", stored.Winner)
	}
	assertEq(t, stored.MatchStatus, scoring.StatusCompleted)
	assertEq(t, len(stored.Scores), 2)
	assertEq(t, stored.Scores[0].TeamID, f.teamA.ID)
	assertEq(t, len(stored.Scores[0].Wickets), 1)
	assertEq(t, stored.Scores[0].Wickets[0].Type, scoring.DismissalTypeCaught)
}

func TestTieClearsWinner(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow.Add(24*time.Hour))
	repo := NewGormMatchRepository(db)
	ctx := context.Background()

	if err := repo.UpdateDerivedFields(ctx, f.match.ID, &f.teamB.ID, scoring.StatusStarted); err != nil {
		t.Fatalf("update: %v", err)
	}

	engine := scoring.NewEngine(repo, scoring.WithClock(func() time.Time { return fixedNow }))
	_, _ = engine.OnScoreSubmitted(ctx, f.match.ID, scoring.Submission{TeamID: f.teamA.ID, Score: ptr(120), Overs: ptr(20)})
	res, err := engine.OnScoreSubmitted(ctx, f.match.ID, scoring.Submission{TeamID: f.teamB.ID, Score: ptr(120), Overs: ptr(18)})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State.Winner != nil {
		t.Fatalf("expected no winner on tie, got %d", *res.State.Winner)
	}

	stored, _ := repo.GetMatchByID(f.match.ID)
	if stored.WinnerID != nil {
		t.Fatalf("expected winner cleared, got %d", *stored.WinnerID)
	}
	assertEq(t, stored.MatchStatus, scoring.StatusUpcoming)
}

func TestWithinMatchRollsBack(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow)
	repo := NewGormMatchRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.WithinMatch(ctx, f.match.ID, func(tx scoring.Store) error {
		entry := scoring.ScoreEntry{MatchID: f.match.ID, TeamID: f.teamA.ID, Score: 10, Overs: 2}
		if err := tx.AppendScore(ctx, &entry); err != nil {
			return err
		}
		if err := tx.UpdateDerivedFields(ctx, f.match.ID, &f.teamA.ID, scoring.StatusCompleted); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	m, err := repo.LoadMatch(ctx, f.match.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertEq(t, len(m.Scores), 0)
	if m.Winner != nil {
		t.Fatalf("winner should have been rolled back, got %d", *m.Winner)
	}
	assertEq(t, m.MatchStatus, scoring.StatusStarted)
}

func TestConcurrentSubmissionsKeepBothEntries(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow.Add(-time.Hour))
	repo := NewGormMatchRepository(db)
	engine := scoring.NewEngine(repo, scoring.WithClock(func() time.Time { return fixedNow }))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, sub := range []scoring.Submission{
		{TeamID: f.teamA.ID, Score: ptr(200), Overs: ptr(20)},
		{TeamID: f.teamB.ID, Score: ptr(190), Overs: ptr(20)},
	} {
		wg.Add(1)
		go func(i int, sub scoring.Submission) {
			defer wg.Done()
			_, errs[i] = engine.OnScoreSubmitted(context.Background(), f.match.ID, sub)
		}(i, sub)
	}
	wg.Wait()

	missing := 0
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, scoring.ErrMissingScoreData):
			missing++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assertEq(t, missing, 1)

	m, err := repo.LoadMatch(context.Background(), f.match.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertEq(t, len(m.Scores), 2)
	if m.Winner == nil || *m.Winner != f.teamA.ID {
		t.Fatalf("expected team A to win, got %v", m.Winner)
	}
}

func TestScoreQueries(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow)
	repo := NewGormMatchRepository(db)
	ctx := context.Background()

	for _, e := range []scoring.ScoreEntry{
		{MatchID: f.match.ID, TeamID: f.teamA.ID, Score: 100, Overs: 20, RunRate: 5},
		{MatchID: f.match.ID, TeamID: f.teamB.ID, Score: 90, Overs: 15, RunRate: 6},
		{MatchID: f.match.ID, TeamID: f.teamA.ID, Score: 40, Overs: 8, RunRate: 5},
	} {
		e := e
		if err := repo.AppendScore(ctx, &e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	first, err := repo.GetFirstScore(f.match.ID, f.teamA.ID)
	if err != nil || first == nil {
		t.Fatalf("first score: %v, %v", first, err)
	}
	assertEq(t, first.Score, 100.0)

	none, err := repo.GetFirstScore(f.match.ID, 999)
	if err != nil || none != nil {
		t.Fatalf("expected nil, nil for unknown team, got %v, %v", none, err)
	}

	scores, total, err := repo.GetScores(map[string]interface{}{"team_id": f.teamA.ID}, 1, 10)
	if err != nil {
		t.Fatalf("get scores: %v", err)
	}
	assertEq(t, total, int64(2))
	assertEq(t, len(scores), 2)

	exists, err := repo.MatchExists(f.match.ID)
	if err != nil || !exists {
		t.Fatalf("expected match to exist: %v", err)
	}
	exists, _ = repo.MatchExists(f.match.ID + 100)
	if exists {
		t.Fatal("unexpected match")
	}
}

func TestGetMatchesFilters(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow)
	repo := NewGormMatchRepository(db)

	other := team.Team{Name: "Eagles"}
	db.Create(&other)
	second := Match{TournamentID: f.tournament.ID, TeamOneID: f.teamB.ID, TeamTwoID: other.ID, Date: fixedNow.Add(time.Hour), MatchStatus: scoring.StatusUpcoming}
	if err := repo.CreateMatch(&second); err != nil {
		t.Fatalf("create: %v", err)
	}

	matches, total, err := repo.GetMatches(map[string]interface{}{"team_id": f.teamA.ID}, 1, 10)
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}
	assertEq(t, total, int64(1))
	assertEq(t, matches[0].TeamOne.Name, "Lions")

	_, total, _ = repo.GetMatches(map[string]interface{}{"team_id": f.teamB.ID}, 1, 10)
	assertEq(t, total, int64(2))

	_, total, _ = repo.GetMatches(map[string]interface{}{"match_status": "upcoming"}, 1, 10)
	assertEq(t, total, int64(1))
}
