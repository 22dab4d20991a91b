package util

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/config"
	"github.com/jobnexus/backend/internal/response"
	"gorm.io/gorm"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	if params.Code == 0 {
		params.Code = fiber.StatusOK
	}
	return c.Status(params.Code).JSON(OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
	})
}

// ErrorResponse writes the standard error envelope. Stack traces and developer
// messages are only included outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	resp := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
		Details: params.Details,
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			resp.DevMessage = errs[0].Error()
			resp.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			resp.DevMessage = params.DevMessage
		}
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(resp)
}

// FromError maps usecase/repository errors onto the HTTP error taxonomy:
// validation 400, unauthorized 401, forbidden 403, not-found 404, conflict 409,
// anything else 500.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	if ve, ok := apperror.IsValidation(err); ok {
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: ve.Message,
			Details: ve.Fields,
		})
	}
	switch {
	case errors.Is(err, apperror.ErrUnauthorized):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusUnauthorized, Message: err.Error()})
	case errors.Is(err, apperror.ErrForbidden):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusForbidden, Message: err.Error()})
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusNotFound, Message: err.Error()})
	case errors.Is(err, apperror.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrorResponse(c, ErrorResponseFormat{Code: fiber.StatusConflict, Message: err.Error()})
	default:
		return ErrorResponse(c, ErrorResponseFormat{Message: fallback}, err)
	}
}
