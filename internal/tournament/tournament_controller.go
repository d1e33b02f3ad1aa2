package tournament

import (
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/crickscore/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TournamentController handles tournament HTTP requests
type TournamentController struct {
	repo TournamentRepository
}

func NewTournamentController(repo TournamentRepository) *TournamentController {
	return &TournamentController{repo: repo}
}

// CreateTournamentRequest defines the request payload for creating a tournament
type CreateTournamentRequest struct {
	Name string    `json:"name" binding:"required,min=2,max=200" example:"Summer Cup"`
	Date time.Time `json:"date" binding:"required" example:"2024-06-01T09:00:00Z"`
}

// CreateTournament godoc
// @Summary      Create a tournament
// @Tags         Tournaments
// @Accept       json
// @Produce      json
// @Param        tournament  body  CreateTournamentRequest  true  "Tournament details"
// @Success      201  {object}  Tournament
// @Failure      400  {object}  map[string]string "Validation error"
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /tournaments [post]
func (tc *TournamentController) CreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	tournament := Tournament{Name: req.Name, Date: req.Date}
	if err := tc.repo.CreateTournament(&tournament); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create tournament: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message":    "Tournament created successfully",
		"tournament": tournament,
	})
}

// GetTournaments godoc
// @Summary      List tournaments
// @Tags         Tournaments
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {array}   Tournament
// @Failure      500  {object}  map[string]string "Internal server error"
// @Router       /tournaments [get]
func (tc *TournamentController) GetTournaments(c *gin.Context) {
	page, pageSize := responses.PageParams(c)
	tournaments, total, err := tc.repo.GetTournaments(page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch tournaments: "+err.Error())
		return
	}
	responses.PaginatedResponse(c, http.StatusOK, tournaments, page, pageSize, total)
}
