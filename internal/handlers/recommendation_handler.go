package handlers

import (
	"errors"
	"strconv"

	"movia-backend/internal/services"
	"movia-backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	service  services.RecommendationService
	validate *validator.Validate
	logger   *logrus.Logger
}

func NewRecommendationHandler(service services.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateRecommendation godoc
// @Summary Recommend a movie to a user
// @Tags recommendations
// @Accept json
// @Produce json
// @Param recommendation body RecommendationRequest true "Recommendation"
// @Success 201 {object} utils.StandardResponse{data=models.Recommendation} "Recommendation created"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /recommendations [post]
func (h *RecommendationHandler) CreateRecommendation(c *fiber.Ctx) error {
	var req RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "user_id and movie_id are required")
	}

	rec, err := h.service.Recommend(c.Context(), req.UserID, req.MovieID)
	if errors.Is(err, services.ErrMovieNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  req.UserID,
			"movie_id": req.MovieID,
		}).Error("Failed to create recommendation")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create recommendation")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Recommendation created successfully", rec)
}

// GetUserRecommendations godoc
// @Summary List a user's recommendations
// @Tags recommendations
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} utils.StandardResponse{data=[]models.Recommendation} "Recommendations"
// @Failure 400 {object} utils.StandardResponse "Invalid user id"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/{userId}/recommendations [get]
func (h *RecommendationHandler) GetUserRecommendations(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil || userID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	recs, err := h.service.ForUser(c.Context(), uint(userID))
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get recommendations")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve recommendations")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations retrieved successfully", recs)
}
