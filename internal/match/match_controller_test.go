package match

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/chat"
	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []chat.Envelope
}

func (r *recordingBroadcaster) Broadcast(env chat.Envelope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, env)
}

func (r *recordingBroadcaster) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *recordingBroadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	repo := NewGormMatchRepository(db)
	events := &recordingBroadcaster{}
	engine := scoring.NewEngine(repo, scoring.WithClock(func() time.Time { return fixedNow }))
	MatchRoutes(r.Group("/api"), repo, team.NewTeamRepository(db), tournament.NewGormTournamentRepository(db), engine, events, &config.Config{})
	return r, events
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return env
}

func TestCreateMatch(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow)
	r, _ := newTestRouter(t, db)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"same team twice", map[string]any{"tournament_id": f.tournament.ID, "team_ids": []uint{f.teamA.ID, f.teamA.ID}, "date": fixedNow}, http.StatusBadRequest},
		{"one team", map[string]any{"tournament_id": f.tournament.ID, "team_ids": []uint{f.teamA.ID}, "date": fixedNow}, http.StatusBadRequest},
		{"missing date", map[string]any{"tournament_id": f.tournament.ID, "team_ids": []uint{f.teamA.ID, f.teamB.ID}}, http.StatusBadRequest},
		{"unknown tournament", map[string]any{"tournament_id": 999, "team_ids": []uint{f.teamA.ID, f.teamB.ID}, "date": fixedNow}, http.StatusNotFound},
		{"unknown team", map[string]any{"tournament_id": f.tournament.ID, "team_ids": []uint{f.teamA.ID, 999}, "date": fixedNow}, http.StatusNotFound},
		{"ok", map[string]any{"tournament_id": f.tournament.ID, "team_ids": []uint{f.teamB.ID, f.teamA.ID}, "date": fixedNow.Add(48 * time.Hour)}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/matches", tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}

	w := doJSON(r, http.MethodPost, "/api/matches", map[string]any{
		"tournament_id": f.tournament.ID,
		"team_ids":      []uint{f.teamA.ID, f.teamB.ID},
		"date":          fixedNow,
		"winner_id":     f.teamA.ID,
		"match_status":  "completed",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var data struct {
		Match Match `json:"match"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &data); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if data.Match.WinnerID != nil {
		t.Fatal("winner must not be taken from input")
	}
	assertEq(t, data.Match.MatchStatus, scoring.StatusStarted)
	assertEq(t, data.Match.TeamOne.Name, "Lions")
}

func TestScoreSubmissionFlow(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow.Add(-2*time.Hour))
	r, events := newTestRouter(t, db)
	base := "/api/matches/" + itoa(f.match.ID)

	w := doJSON(r, http.MethodPost, "/api/scores", map[string]any{
		"match_id": f.match.ID, "team_id": f.teamA.ID, "score": 150, "overs": 20,
		"wickets": []map[string]any{{"type": "bowled", "player_id": 3}},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var pending struct {
		Entry scoring.ScoreEntry `json:"entry"`
	}
	if err := json.Unmarshal(decode(t, w).Errors, &pending); err != nil {
		t.Fatalf("decode pending entry: %v", err)
	}
	if pending.Entry.ID == 0 || pending.Entry.RunRate != 7.5 {
		t.Fatalf("expected recorded entry with run rate 7.5, got %+v", pending.Entry)
	}

	w = doJSON(r, http.MethodGet, base+"/winner", nil)
	assertEq(t, w.Code, http.StatusOK)
	assertEq(t, string(decode(t, w).Data), `{"winner":null}`)

	w = doJSON(r, http.MethodPost, "/api/scores", map[string]any{
		"match_id": f.match.ID, "team_id": f.teamB.ID, "score": 151, "overs": 19.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var done struct {
		State scoring.State `json:"state"`
	}
	if err := json.Unmarshal(decode(t, w).Data, &done); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if done.State.Winner == nil || *done.State.Winner != f.teamB.ID {
		t.Fatalf("expected team B to win, got %v", done.State.Winner)
	}
	assertEq(t, done.State.MatchStatus, scoring.StatusCompleted)

	w = doJSON(r, http.MethodGet, base+"/winner", nil)
	var winner struct {
		Winner *team.Team `json:"winner"`
	}
	_ = json.Unmarshal(decode(t, w).Data, &winner)
	if winner.Winner == nil || winner.Winner.Name != "Tigers" {
		t.Fatalf("expected Tigers, got %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, base+"/runrate/"+itoa(f.teamA.ID), nil)
	assertEq(t, w.Code, http.StatusOK)
	var rr struct {
		RunRate float64 `json:"run_rate"`
	}
	_ = json.Unmarshal(decode(t, w).Data, &rr)
	assertEq(t, rr.RunRate, 7.5)

	w = doJSON(r, http.MethodGet, base+"/runrate/999", nil)
	assertEq(t, w.Code, http.StatusNotFound)

	w = doJSON(r, http.MethodGet, base+"/status", nil)
	var status struct {
		MatchStatus scoring.MatchStatus `json:"match_status"`
	}
	_ = json.Unmarshal(decode(t, w).Data, &status)
	assertEq(t, status.MatchStatus, scoring.StatusCompleted)

	w = doJSON(r, http.MethodGet, "/api/scores?match_id="+itoa(f.match.ID)+"&team_id="+itoa(f.teamB.ID), nil)
	assertEq(t, w.Code, http.StatusOK)
	var list []ScoreEntry
	_ = json.Unmarshal(decode(t, w).Data, &list)
	assertEq(t, len(list), 1)
	assertEq(t, list[0].Score, 151.0)

	w = doJSON(r, http.MethodGet, base, nil)
	var m Match
	_ = json.Unmarshal(decode(t, w).Data, &m)
	assertEq(t, len(m.Scores), 2)
	assertEq(t, len(m.Scores[0].Wickets), 1)

	got := events.types()
	if len(got) != 2 || got[0] != chat.TypeScoreRecorded || got[1] != chat.TypeMatchUpdated {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestSubmitScoreErrors(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, fixedNow)
	r, events := newTestRouter(t, db)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing match", map[string]any{"team_id": f.teamA.ID, "score": 1, "overs": 1}, http.StatusBadRequest},
		{"unknown match", map[string]any{"match_id": 999, "team_id": f.teamA.ID, "score": 1, "overs": 1}, http.StatusNotFound},
		{"missing overs", map[string]any{"match_id": f.match.ID, "team_id": f.teamA.ID, "score": 1}, http.StatusBadRequest},
		{"non-numeric score", map[string]any{"match_id": f.match.ID, "team_id": f.teamA.ID, "score": "lots", "overs": 1}, http.StatusBadRequest},
		{"team not in match", map[string]any{"match_id": f.match.ID, "team_id": 999, "score": 1, "overs": 1}, http.StatusBadRequest},
		{"bad dismissal", map[string]any{"match_id": f.match.ID, "team_id": f.teamA.ID, "score": 1, "overs": 1, "wickets": []map[string]any{{"type": "timed out", "player_id": 1}}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/scores", tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}

	var count int64
	db.Model(&ScoreEntry{}).Count(&count)
	assertEq(t, count, int64(0))
	assertEq(t, len(events.types()), 0)
}

func TestMatchLookupErrors(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	for _, path := range []string{"/api/matches/0", "/api/matches/abc/winner"} {
		if w := doJSON(r, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
	for _, path := range []string{"/api/matches/7", "/api/matches/7/winner", "/api/matches/7/status"} {
		if w := doJSON(r, http.MethodGet, path, nil); w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}
	}
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
