package match

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/crickscore/internal/chat"
	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"github.com/DhavalSuthar-24/crickscore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match and score HTTP requests
type MatchController struct {
	repo           MatchRepository
	teamRepo       team.TeamRepository
	tournamentRepo tournament.TournamentRepository
	engine         *scoring.Engine
	events         chat.Broadcaster
}

func NewMatchController(
	repo MatchRepository,
	teamRepo team.TeamRepository,
	tournamentRepo tournament.TournamentRepository,
	engine *scoring.Engine,
	events chat.Broadcaster,
) *MatchController {
	if events == nil {
		events = chat.Nop{}
	}
	return &MatchController{
		repo:           repo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		engine:         engine,
		events:         events,
	}
}

// CreateMatchRequest defines the request payload for scheduling a match
type CreateMatchRequest struct {
	TournamentID uint      `json:"tournament_id" binding:"required" example:"1"`
	TeamIDs      []uint    `json:"team_ids" binding:"required,len=2,dive,required" example:"1,2"`
	Date         time.Time `json:"date" binding:"required" example:"2024-06-01T14:00:00Z"`
}

type WicketRequest struct {
	Type     scoring.DismissalType `json:"type" example:"bowled"`
	PlayerID uint                  `json:"player_id" example:"7"`
}

// SubmitScoreRequest is a team's innings total. Score and overs are checked by the scoring engine.
type SubmitScoreRequest struct {
	MatchID uint            `json:"match_id" binding:"required" example:"1"`
	TeamID  uint            `json:"team_id" example:"1"`
	Score   *float64        `json:"score" example:"180"`
	Overs   *float64        `json:"overs" example:"20"`
	Wickets []WicketRequest `json:"wickets"`
}

func (r SubmitScoreRequest) submission() scoring.Submission {
	sub := scoring.Submission{TeamID: r.TeamID, Score: r.Score, Overs: r.Overs}
	for _, w := range r.Wickets {
		sub.Wickets = append(sub.Wickets, scoring.Wicket{Type: w.Type, PlayerID: w.PlayerID})
	}
	return sub
}

// CreateMatch godoc
// @Summary      Schedule a match
// @Description  Schedules a match between two distinct teams of a tournament. Status is derived from the date; there is no winner yet.
// @Tags         Matches
// @Accept       json
// @Produce      json
// @Param        match  body  CreateMatchRequest  true  "Match details"
// @Success      201  {object}  Match
// @Failure      400  {object}  map[string]string "Validation error"
// @Failure      404  {object}  map[string]string "Tournament or team not found"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Security     ApiKeyAuth
// @Router       /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}
	if req.TeamIDs[0] == req.TeamIDs[1] {
		responses.ErrorResponse(c, http.StatusBadRequest, "A match needs two distinct teams")
		return
	}

	t, err := mc.tournamentRepo.GetTournamentByID(req.TournamentID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tournament: "+err.Error())
		return
	}
	if t == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Tournament not found")
		return
	}

	for _, id := range req.TeamIDs {
		tm, err := mc.teamRepo.GetTeamByID(id)
		if err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
			return
		}
		if tm == nil {
			responses.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("Team %d not found", id))
			return
		}
	}

	match := Match{
		TournamentID: req.TournamentID,
		TeamOneID:    req.TeamIDs[0],
		TeamTwoID:    req.TeamIDs[1],
		Date:         req.Date,
		MatchStatus:  scoring.ResolveStatus(req.Date, mc.engine.Now()),
	}
	if err := mc.repo.CreateMatch(&match); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	created, err := mc.repo.GetMatchByID(match.ID)
	if err != nil || created == nil {
		created = &match
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Match created successfully",
		"match":   created,
	})
}

// GetMatches godoc
// @Summary      List matches
// @Tags         Matches
// @Produce      json
// @Param        tournament_id  query  int     false  "Filter by tournament"
// @Param        team_id        query  int     false  "Filter by participating team"
// @Param        match_status   query  string  false  "Filter by stored status"
// @Param        page           query  int     false  "Page number"
// @Param        page_size      query  int     false  "Page size"
// @Success      200  {array}   Match
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, pageSize := responses.PageParams(c)

	filters := make(map[string]interface{})
	if id, ok := queryUint(c, "tournament_id"); ok {
		filters["tournament_id"] = id
	}
	if id, ok := queryUint(c, "team_id"); ok {
		filters["team_id"] = id
	}
	if status := c.Query("match_status"); status != "" {
		filters["match_status"] = status
	}

	matches, total, err := mc.repo.GetMatches(filters, page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, matches, page, pageSize, total)
}

// GetMatchByID godoc
// @Summary      Get a match with its score history
// @Tags         Matches
// @Produce      json
// @Param        matchId  path  int  true  "Match ID"
// @Success      200  {object}  Match
// @Failure      400  {object}  map[string]string "Invalid match ID"
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{matchId} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, match)
}

// SubmitScore godoc
// @Summary      Record a score
// @Description  Appends a team's score to the match and re-derives winner and status. Returns 409 with the recorded entry while the other team has no score yet.
// @Tags         Scores
// @Accept       json
// @Produce      json
// @Param        score  body  SubmitScoreRequest  true  "Score details"
// @Success      201  {object}  scoring.Result
// @Failure      400  {object}  map[string]string "Invalid score data"
// @Failure      404  {object}  map[string]string "Match not found"
// @Failure      409  {object}  map[string]string "Recorded, but the other team has no score yet"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Security     ApiKeyAuth
// @Router       /scores [post]
func (mc *MatchController) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	res, err := mc.engine.OnScoreSubmitted(c.Request.Context(), req.MatchID, req.submission())
	switch {
	case errors.Is(err, scoring.ErrMatchNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
		return
	case errors.Is(err, scoring.ErrInvalidScoreData):
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, scoring.ErrMissingScoreData):
		mc.publish(chat.TypeScoreRecorded, req.MatchID, res.Entry)
		responses.ErrorResponseWithDetails(c, http.StatusConflict, err.Error(), gin.H{
			"entry": res.Entry,
			"state": res.State,
		})
		return
	case err != nil:
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to record score")
		return
	}

	mc.publish(chat.TypeMatchUpdated, req.MatchID, gin.H{
		"match_id":     req.MatchID,
		"winner":       res.State.Winner,
		"match_status": res.State.MatchStatus,
	})
	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Score recorded successfully",
		"entry":   res.Entry,
		"state":   res.State,
	})
}

// GetScores godoc
// @Summary      List score entries
// @Tags         Scores
// @Produce      json
// @Param        match_id   query  int  false  "Filter by match"
// @Param        team_id    query  int  false  "Filter by team"
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {array}   ScoreEntry
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /scores [get]
func (mc *MatchController) GetScores(c *gin.Context) {
	page, pageSize := responses.PageParams(c)

	filters := make(map[string]interface{})
	if id, ok := queryUint(c, "match_id"); ok {
		filters["match_id"] = id
	}
	if id, ok := queryUint(c, "team_id"); ok {
		filters["team_id"] = id
	}

	scores, total, err := mc.repo.GetScores(filters, page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch scores: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, scores, page, pageSize, total)
}

// GetWinner godoc
// @Summary      Get the match winner
// @Description  Winner is null while a team has not scored, and on a tie.
// @Tags         Matches
// @Produce      json
// @Param        matchId  path  int  true  "Match ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{matchId}/winner [get]
func (mc *MatchController) GetWinner(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"winner": match.Winner})
}

// GetRunRate godoc
// @Summary      Get a team's run rate in a match
// @Description  Uses the team's first recorded entry.
// @Tags         Matches
// @Produce      json
// @Param        matchId  path  int  true  "Match ID"
// @Param        teamId   path  int  true  "Team ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string "Invalid ID"
// @Failure      404  {object}  map[string]string "No score for this team"
// @Router       /matches/{matchId}/runrate/{teamId} [get]
func (mc *MatchController) GetRunRate(c *gin.Context) {
	matchID, ok := responses.ParseID(c, "matchId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	teamID, ok := responses.ParseID(c, "teamId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	score, err := mc.repo.GetFirstScore(matchID, teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch score: "+err.Error())
		return
	}
	if score == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "No score recorded for this team in this match")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"match_id": matchID,
		"team_id":  teamID,
		"run_rate": scoring.ComputeRunRate(score.Score, score.Overs),
	})
}

// GetStatus godoc
// @Summary      Get the match status
// @Description  Resolved against the current time on every call.
// @Tags         Matches
// @Produce      json
// @Param        matchId  path  int  true  "Match ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string "Match not found"
// @Router       /matches/{matchId}/status [get]
func (mc *MatchController) GetStatus(c *gin.Context) {
	match, ok := mc.loadMatch(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"match_id":     match.ID,
		"match_status": scoring.ResolveStatus(match.Date, mc.engine.Now()),
	})
}

// loadMatch resolves :matchId and writes the error response itself.
func (mc *MatchController) loadMatch(c *gin.Context) (*Match, bool) {
	matchID, ok := responses.ParseID(c, "matchId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return nil, false
	}
	match, err := mc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch match: "+err.Error())
		return nil, false
	}
	if match == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
		return nil, false
	}
	return match, true
}

func (mc *MatchController) publish(typ string, matchID uint, payload any) {
	env, err := chat.NewEnvelope(typ, matchID, payload)
	if err != nil {
		log.Printf("match: %v", err)
		return
	}
	mc.events.Broadcast(env)
}

func queryUint(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
