package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse is the envelope of every API response.
type StandardResponse struct {
	Status  string `json:"status" example:"success"`
	Code    int    `json:"code" example:"200"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

type PaginationMeta struct {
	Page        int   `json:"page" example:"1"`
	Limit       int   `json:"limit" example:"20"`
	Total       int64 `json:"total" example:"98"`
	TotalPages  int   `json:"total_pages" example:"5"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func send(c *fiber.Ctx, code int, message string, data, meta any) error {
	status := "success"
	switch {
	case code >= 500:
		status = "fail"
	case code >= 400:
		status = "error"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data any) error {
	return send(c, code, message, data, nil)
}

func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data any, meta any) error {
	return send(c, code, message, data, meta)
}

// ErrorResponse reports status "error" for 4xx codes and "fail" for 5xx.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return send(c, code, message, nil, nil)
}

func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data any) error {
	return send(c, code, message, data, nil)
}

func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := 1
	if limit > 0 && total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// QueryInt returns the integer query parameter key, def when it is absent,
// or an error when it is present but not a number.
func QueryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
