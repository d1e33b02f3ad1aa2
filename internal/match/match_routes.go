package match

import (
	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/chat"
	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
	"github.com/DhavalSuthar-24/crickscore/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
)

// MatchRoutes sets up match and score routes
func MatchRoutes(
	router *gin.RouterGroup,
	repo MatchRepository,
	teamRepo team.TeamRepository,
	tournamentRepo tournament.TournamentRepository,
	engine *scoring.Engine,
	events chat.Broadcaster,
	appConfig *config.Config,
) {
	mc := NewMatchController(repo, teamRepo, tournamentRepo, engine, events)
	guard := rmiddleware.WriteGuard(appConfig)

	router.GET("/matches", mc.GetMatches)
	router.POST("/matches", append(guard, mc.CreateMatch)...)
	router.GET("/matches/:matchId", mc.GetMatchByID)
	router.GET("/matches/:matchId/winner", mc.GetWinner)
	router.GET("/matches/:matchId/runrate/:teamId", mc.GetRunRate)
	router.GET("/matches/:matchId/status", mc.GetStatus)

	router.GET("/scores", mc.GetScores)
	router.POST("/scores", append(guard, mc.SubmitScore)...)
}
