package routes

import (
	"movia-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Catalog         *handlers.CatalogHandler
	Sync            *handlers.SyncHandler
	Recommendations *handlers.RecommendationHandler
}

func Setup(app *fiber.App, h Handlers) {
	v1 := app.Group("/api").Group("/v1")

	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Catalog.ListMovies)
		movies.Get("/:id", h.Catalog.GetMovie)
	}

	series := v1.Group("/series")
	{
		series.Get("/", h.Catalog.ListSeries)
		series.Get("/:id", h.Catalog.GetSeries)
	}

	v1.Get("/genres", h.Catalog.ListGenres)
	v1.Get("/stats", h.Catalog.GetStats)

	sync := v1.Group("/sync")
	{
		sync.Post("/", h.Sync.RunSync)
		sync.Get("/last-log", h.Sync.GetLastSyncLog)
	}

	v1.Post("/recommendations", h.Recommendations.CreateRecommendation)
	v1.Get("/users/:userId/recommendations", h.Recommendations.GetUserRecommendations)
}
