package player

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchLookup reports whether a match exists.
type MatchLookup interface {
	MatchExists(id uint) (bool, error)
}

type PlayerController struct {
	repo     PlayerRepository
	teamRepo team.TeamRepository
	matches  MatchLookup
}

func NewPlayerController(repo PlayerRepository, teamRepo team.TeamRepository, matches MatchLookup) *PlayerController {
	return &PlayerController{repo: repo, teamRepo: teamRepo, matches: matches}
}

type CreatePlayerRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100" example:"Rohit"`
	Age    int    `json:"age" binding:"omitempty,gte=0,lte=100" example:"29"`
	TeamID uint   `json:"team_id" binding:"required" example:"1"`
	Mobile string `json:"mobile" binding:"omitempty,max=20" example:"+91 98765 43210"`
	Image  string `json:"image" binding:"omitempty,max=500" example:"https://example.com/rohit.png"`
}

type UpdateScoreRequest struct {
	NewScore *int `json:"new_score" binding:"required,gte=0" example:"54"`
}

// CreatePlayer godoc
// @Summary      Create a player
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        player  body  CreatePlayerRequest  true  "Player details"
// @Success      201  {object}  Player
// @Failure      400  {object}  map[string]string "Validation error"
// @Failure      404  {object}  map[string]string "Team not found"
// @Security     ApiKeyAuth
// @Router       /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	t, err := pc.teamRepo.GetTeamByID(req.TeamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if t == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	player := Player{
		Name:   req.Name,
		Age:    req.Age,
		TeamID: req.TeamID,
		Mobile: req.Mobile,
		Image:  req.Image,
	}
	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create player: "+err.Error())
		return
	}
	player.Team = t
	player.Scores = []PlayerScore{}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Player created successfully",
		"player":  player,
	})
}

// GetPlayers godoc
// @Summary      List players
// @Tags         Players
// @Produce      json
// @Param        team_id    query  int  false  "Filter by team"
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {array}   Player
// @Router       /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	page, pageSize := responses.PageParams(c)

	filters := make(map[string]interface{})
	if raw := c.Query("team_id"); raw != "" {
		teamID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team_id")
			return
		}
		filters["team_id"] = uint(teamID)
	}

	players, total, err := pc.repo.GetPlayers(filters, page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch players: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, players, page, pageSize, total)
}

// UpdatePlayerScore godoc
// @Summary      Set a player's score for a match
// @Description  Creates the record on first call and overwrites it afterwards.
// @Tags         Players
// @Accept       json
// @Produce      json
// @Param        playerId  path  int                 true  "Player ID"
// @Param        matchId   path  int                 true  "Match ID"
// @Param        score     body  UpdateScoreRequest  true  "New score"
// @Success      200  {object}  Player
// @Failure      400  {object}  map[string]string "Validation error"
// @Failure      404  {object}  map[string]string "Player or match not found"
// @Security     ApiKeyAuth
// @Router       /players/{playerId}/score/{matchId} [put]
func (pc *PlayerController) UpdatePlayerScore(c *gin.Context) {
	playerID, ok := responses.ParseID(c, "playerId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid player ID")
		return
	}
	matchID, ok := responses.ParseID(c, "matchId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	player, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch player: "+err.Error())
		return
	}
	if player == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Player not found")
		return
	}

	exists, err := pc.matches.MatchExists(matchID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch match: "+err.Error())
		return
	}
	if !exists {
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
		return
	}

	score := PlayerScore{PlayerID: playerID, MatchID: matchID, Score: *req.NewScore}
	if err := pc.repo.UpsertScore(&score); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to update score: "+err.Error())
		return
	}

	updated, err := pc.repo.GetPlayerByID(playerID)
	if err != nil || updated == nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to reload player")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Player score updated successfully",
		"player":  updated,
	})
}
