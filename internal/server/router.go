package server

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/ramorim1998/gerador-times-back/internal/config"
	"github.com/ramorim1998/gerador-times-back/internal/handlers"
	authmw "github.com/ramorim1998/gerador-times-back/internal/middleware"
)

type Deps struct {
	Identity authmw.IdentityDecoderInterface
	Groups   handlers.GroupServiceInterface
	Matches  handlers.MatchServiceInterface
	Stats    handlers.StatsServiceInterface
}

func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	groupHandler := handlers.NewGroupHandler(deps.Groups)
	matchHandler := handlers.NewMatchHandler(deps.Matches)
	statsHandler := handlers.NewStatsHandler(deps.Stats)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(deps.Identity))

	protected.Get("/groups", groupHandler.List)
	protected.Post("/groups", groupHandler.Create)
	protected.Get("/groups/:id", groupHandler.Get)
	protected.Patch("/groups/:id", groupHandler.Update)
	protected.Delete("/groups/:id", groupHandler.Delete)
	protected.Post("/groups/:id/draw", groupHandler.Draw)

	protected.Get("/matches", matchHandler.List)
	protected.Post("/matches", matchHandler.Create)
	protected.Get("/matches/:id", matchHandler.Get)
	protected.Delete("/matches/:id", matchHandler.Delete)

	protected.Get("/stats", statsHandler.Get)

	return app
}
