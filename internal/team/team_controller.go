package team

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/crickscore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

type CreateTeamRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Mumbai Lions"`
	Address string `json:"address" binding:"max=255" example:"Wankhede Road, Mumbai"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} Team "Team created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Team name already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	existingTeam, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check team name: "+err.Error())
		return
	}
	if existingTeam != nil {
		responses.ErrorResponse(c, http.StatusConflict, "Team name already exists")
		return
	}

	team := Team{Name: req.Name, Address: req.Address}
	if err := tc.repo.CreateTeam(&team); err != nil {
		if errors.Is(err, ErrTeamNameTaken) {
			responses.ErrorResponse(c, http.StatusConflict, "Team name already exists")
			return
		}
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}
	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param teamId path uint true "Team ID"
// @Success 200 {object} Team "Team details"
// @Failure 404 {object} map[string]string "Team not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /teams/{teamId} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := responses.ParseID(c, "teamId")
	if !ok {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SuccessResponse(c, http.StatusOK, team)
}

// GetAllTeams godoc
// @Summary Get all teams
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(10)
// @Param name query string false "Search by team name (case-insensitive, partial match)"
// @Success 200 {array} Team "List of teams"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, limit := responses.PageParams(c)

	filters := make(map[string]interface{})
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit, filters)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, teams, page, limit, total)
}
