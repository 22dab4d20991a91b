package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type EventHandler struct {
	uc   *usecase.EventUsecase
	auth *middleware.AuthMiddleware
}

func NewEventHandler(uc *usecase.EventUsecase, auth *middleware.AuthMiddleware) *EventHandler {
	return &EventHandler{uc: uc, auth: auth}
}

func (h *EventHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/events", h.auth.Required())
	group.Get("/", h.List)
	group.Post("/", h.auth.RequireRole(model.RoleHR, model.RoleAdmin), h.Schedule)
	group.Put("/:id/status", h.auth.RequireRole(model.RoleHR, model.RoleAdmin), h.SetStatus)
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	events, err := h.uc.ListMine(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to list events")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"events": events},
	})
}

func (h *EventHandler) Schedule(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	event, err := h.uc.ScheduleInterview(principal, req.ToModel())
	if err != nil {
		return util.FromError(c, err, "failed to schedule interview")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Interview scheduled",
		Data:    event,
	})
}

func (h *EventHandler) SetStatus(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid event id",
		}, err)
	}
	var req dto.EventStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	event, err := h.uc.UpdateStatus(principal, id, model.EventStatus(req.Status))
	if err != nil {
		return util.FromError(c, err, "failed to update event")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Event updated",
		Data:    event,
	})
}
