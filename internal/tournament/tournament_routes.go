package tournament

import (
	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// TournamentRoutes sets up tournament routes. Writes go through the scorer guard when auth is enabled.
func TournamentRoutes(router *gin.RouterGroup, repo TournamentRepository, appConfig *config.Config) {
	tc := NewTournamentController(repo)

	router.GET("/tournaments", tc.GetTournaments)
	router.POST("/tournaments", append(rmiddleware.WriteGuard(appConfig), tc.CreateTournament)...)
}
