package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type SavedJobHandler struct {
	uc   *usecase.SavedJobUsecase
	auth *middleware.AuthMiddleware
}

func NewSavedJobHandler(uc *usecase.SavedJobUsecase, auth *middleware.AuthMiddleware) *SavedJobHandler {
	return &SavedJobHandler{uc: uc, auth: auth}
}

func (h *SavedJobHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/saved-jobs", h.auth.Required(), h.auth.RequireRole(model.RoleSeeker))
	group.Get("/", h.List)
	group.Post("/:jobID", h.Save)
	group.Post("/:jobID/toggle", h.Toggle)
	group.Delete("/:jobID", h.Unsave)
}

func (h *SavedJobHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	saved, err := h.uc.List(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to list saved jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"saved_jobs": saved},
	})
}

func (h *SavedJobHandler) Save(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	if err := h.uc.Save(principal.UserID, jobID); err != nil {
		return util.FromError(c, err, "failed to save job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job saved",
		Data:    fiber.Map{"saved": true},
	})
}

func (h *SavedJobHandler) Toggle(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	saved, err := h.uc.Toggle(principal.UserID, jobID)
	if err != nil {
		return util.FromError(c, err, "failed to toggle saved job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"saved": saved},
	})
}

func (h *SavedJobHandler) Unsave(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("jobID"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	if err := h.uc.Unsave(principal.UserID, jobID); err != nil {
		return util.FromError(c, err, "failed to unsave job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job removed from saved",
		Data:    fiber.Map{"saved": false},
	})
}
