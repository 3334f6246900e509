package handlers

import (
	"errors"

	"movia-backend/internal/config"
	"movia-backend/internal/services"
	"movia-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	service  services.SyncService
	defaults config.SyncConfig
	logger   *logrus.Logger
}

func NewSyncHandler(service services.SyncService, defaults config.SyncConfig, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		service:  service,
		defaults: defaults,
		logger:   logger,
	}
}

// RunSync godoc
// @Summary Run a TMDB sync pass
// @Description Fetch and store the movie and the TV series of every TMDB id in [from, to]. The first error ends the pass.
// @Tags sync
// @Produce json
// @Param from query int false "First TMDB id (inclusive)" default(1)
// @Param to query int false "Last TMDB id (inclusive)" default(99)
// @Success 200 {object} utils.StandardResponse{data=models.SyncLog} "Sync completed successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid id range"
// @Failure 409 {object} utils.StandardResponse "A sync pass is already running"
// @Failure 500 {object} utils.StandardResponse{data=models.SyncLog} "Sync failed"
// @Router /sync [post]
func (h *SyncHandler) RunSync(c *fiber.Ctx) error {
	from, err := utils.QueryInt(c, "from", h.defaults.FromID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid from parameter")
	}
	to, err := utils.QueryInt(c, "to", h.defaults.ToID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid to parameter")
	}

	h.logger.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Info("Starting TMDB sync")

	syncLog, err := h.service.Run(c.Context(), from, to)
	switch {
	case errors.Is(err, services.ErrInvalidRange):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSyncInProgress):
		return utils.ErrorResponse(c, fiber.StatusConflict, "A sync is already running")
	case err != nil:
		h.logger.WithError(err).Error("Sync from TMDB failed")
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError, "Sync failed", syncLog)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Sync completed successfully", syncLog)
}

// GetLastSyncLog godoc
// @Summary Get last sync log
// @Description Get the most recent sync pass, successful or not
// @Tags sync
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.SyncLog} "Last sync log"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve sync log"
// @Router /sync/last-log [get]
func (h *SyncHandler) GetLastSyncLog(c *fiber.Ctx) error {
	syncLog, err := h.service.LastLog(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get last sync log")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve last sync log")
	}

	if syncLog == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No sync log found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Last sync log retrieved successfully", syncLog)
}
