package team

import (
	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, teamRepo TeamRepository, appConfig *config.Config) {
	teamController := NewTeamController(teamRepo)

	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:teamId", teamController.GetTeamByID)
	router.POST("/teams", append(rmiddleware.WriteGuard(appConfig), teamController.CreateTeam)...)
}
