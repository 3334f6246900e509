package handlers

import (
	"strconv"

	"movia-backend/internal/services"
	"movia-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

func pageParams(c *fiber.Ctx) (int, int, error) {
	page, err := utils.QueryInt(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err := utils.QueryInt(c, "limit", 20)
	if err != nil {
		return 0, 0, err
	}
	page, limit = services.NormalizePage(page, limit)
	return page, limit, nil
}

// ListMovies godoc
// @Summary List movies
// @Description List synced movies ordered by popularity, optionally filtered by title
// @Tags catalog
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param search query string false "Search by title or original title"
// @Success 200 {object} utils.StandardResponse{data=[]models.Movie,meta=utils.PaginationMeta} "List of movies"
// @Failure 400 {object} utils.StandardResponse "Invalid pagination"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *CatalogHandler) ListMovies(c *fiber.Ctx) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid pagination parameters")
	}

	movies, total, err := h.service.ListMovies(c.Context(), page, limit, c.Query("search"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovie godoc
// @Summary Get movie by TMDB id
// @Description Get one movie with its genres, companies, countries and languages
// @Tags catalog
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} utils.StandardResponse{data=models.Movie} "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie id"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *CatalogHandler) GetMovie(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovie(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// ListSeries godoc
// @Summary List series
// @Description List synced TV series ordered by popularity, optionally filtered by name
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param search query string false "Search by name or original name"
// @Success 200 {object} utils.StandardResponse{data=[]models.Series,meta=utils.PaginationMeta} "List of series"
// @Failure 400 {object} utils.StandardResponse "Invalid pagination"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /series [get]
func (h *CatalogHandler) ListSeries(c *fiber.Ctx) error {
	page, limit, err := pageParams(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid pagination parameters")
	}

	series, total, err := h.service.ListSeries(c.Context(), page, limit, c.Query("search"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list series")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve series")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Series retrieved successfully", series, meta)
}

// GetSeries godoc
// @Summary Get series by TMDB id
// @Tags catalog
// @Produce json
// @Param id path int true "TMDB series id"
// @Success 200 {object} utils.StandardResponse{data=models.Series} "Series details"
// @Failure 400 {object} utils.StandardResponse "Invalid series id"
// @Failure 404 {object} utils.StandardResponse "Series not found"
// @Router /series/{id} [get]
func (h *CatalogHandler) GetSeries(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid series ID")
	}

	series, err := h.service.GetSeries(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get series")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve series")
	}
	if series == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Series not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Series retrieved successfully", series)
}

// ListGenres godoc
// @Summary List genres
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre} "Genres"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /genres [get]
func (h *CatalogHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// GetStats godoc
// @Summary Catalog statistics
// @Description Row counts per table and the genres with the most movies
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.CatalogStats} "Catalog statistics"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve statistics"
// @Router /stats [get]
func (h *CatalogHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get catalog stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve catalog statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Catalog statistics retrieved successfully", stats)
}
