package player

import (
	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

func PlayerRoutes(router *gin.RouterGroup, repo PlayerRepository, teamRepo team.TeamRepository, matches MatchLookup, appConfig *config.Config) {
	pc := NewPlayerController(repo, teamRepo, matches)
	guard := rmiddleware.WriteGuard(appConfig)

	router.GET("/players", pc.GetPlayers)
	router.POST("/players", append(guard, pc.CreatePlayer)...)
	router.PUT("/players/:playerId/score/:matchId", append(guard, pc.UpdatePlayerScore)...)
}
