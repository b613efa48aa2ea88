package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fileorg/internal/service"
)

func historyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrHistoryDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "HISTORY_DISABLED", "run history is not configured")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "run not found")
	case errors.Is(err, service.ErrReportUnavailable):
		return writeError(c, fiber.StatusNotFound, "REPORT_NOT_FOUND", "report is not archived")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ListRuns godoc
// @Summary List organization runs
// @Tags runs
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.RunListResult
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /runs [get]
func ListRuns(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "offset must be a non-negative integer")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return historyError(c, err)
		}
		return c.JSON(res)
	}
}

// GetRun godoc
// @Summary Get one organization run with its per-file outcomes
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} model.Run
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /runs/{id} [get]
func GetRun(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid run id")
		}
		run, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return historyError(c, err)
		}
		return c.JSON(run)
	}
}

// GetRunReport godoc
// @Summary Get a download link for the archived audit report of a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /runs/{id}/report [get]
func GetRunReport(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid run id")
		}
		url, err := svc.ReportURL(c.UserContext(), id)
		if err != nil {
			return historyError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
