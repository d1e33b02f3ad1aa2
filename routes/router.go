package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/crickscore/config"
	"github.com/DhavalSuthar-24/crickscore/internal/chat"
	"github.com/DhavalSuthar-24/crickscore/internal/match"
	"github.com/DhavalSuthar-24/crickscore/internal/player"
	"github.com/DhavalSuthar-24/crickscore/internal/scoring"
	"github.com/DhavalSuthar-24/crickscore/internal/team"
	"github.com/DhavalSuthar-24/crickscore/internal/tournament"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config, opts ...scoring.Option) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.App.FrontendURL)))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>CrickScore</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>CrickScore 🏏</h1>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	teamRepo := team.NewTeamRepository(db)
	tournamentRepo := tournament.NewGormTournamentRepository(db)
	matchRepo := match.NewGormMatchRepository(db)
	playerRepo := player.NewGormPlayerRepository(db)
	engine := scoring.NewEngine(matchRepo, opts...)

	// API routes
	api := r.Group("/api")

	var events chat.Broadcaster = chat.Nop{}
	if cfg.Chat.Enabled {
		hub := chat.NewHub(cfg.App.FrontendURL)
		chat.ChatRoutes(api, hub)
		events = hub
	}

	tournament.TournamentRoutes(api, tournamentRepo, cfg)
	team.TeamRoutes(api, teamRepo, cfg)
	player.PlayerRoutes(api, playerRepo, teamRepo, matchRepo, cfg)
	match.MatchRoutes(api, matchRepo, teamRepo, tournamentRepo, engine, events, cfg)

	return r
}

func corsConfig(frontendURL string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if frontendURL == "" || frontendURL == "*" {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}
	c.AllowOrigins = []string{frontendURL}
	return c
}
