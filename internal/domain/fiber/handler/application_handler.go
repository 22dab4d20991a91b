package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/config"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type ApplicationHandler struct {
	uc   *usecase.ApplicationUsecase
	auth *middleware.AuthMiddleware
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase, auth *middleware.AuthMiddleware) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, auth: auth}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/applications", h.auth.Required())
	group.Get("/", h.List)
	group.Post("/", h.auth.RequireRole(model.RoleSeeker), h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id/status", h.auth.RequireRole(model.RoleHR, model.RoleAdmin), h.SetStatus)
	group.Post("/:id/withdraw", h.auth.RequireRole(model.RoleSeeker), h.Withdraw)
}

// List is role-scoped: seekers see their own applications, HR their
// company's, optionally narrowed to one job.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	var jobID *uuid.UUID
	if raw := c.Query("job_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code: fiber.StatusBadRequest, Message: "invalid job_id",
			}, err)
		}
		jobID = &id
	}
	apps, err := h.uc.List(principal, jobID)
	if err != nil {
		return util.FromError(c, err, "failed to list applications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"applications": dto.NewApplicationDTOs(apps)},
	})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid application id",
		}, err)
	}
	app, err := h.uc.Get(principal, id)
	if err != nil {
		return util.FromError(c, err, "failed to load application")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    dto.NewApplicationDTO(app),
	})
}

// Create accepts a multipart form: job_id, cover_letter and an optional
// resume file. Duplicate applications come back as 409.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "job_id is required",
		}, err)
	}

	resumeFile := ""
	if file, err := c.FormFile("resume"); err == nil {
		resumeFile, err = util.SaveResume(c, file, config.LoadAppConfig().UploadDir)
		if err != nil {
			return util.FromError(c, err, "failed to save resume")
		}
	}

	app, err := h.uc.Apply(principal.UserID, jobID, c.FormValue("cover_letter"), resumeFile)
	if err != nil {
		return util.FromError(c, err, "failed to apply")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data:    fiber.Map{"id": app.ID, "status": app.Status},
	})
}

func (h *ApplicationHandler) SetStatus(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid application id",
		}, err)
	}
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	app, err := h.uc.SetStatus(principal, id, model.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		return util.FromError(c, err, "failed to update status")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Status updated",
		Data:    dto.NewApplicationDTO(app),
	})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid application id",
		}, err)
	}
	if err := h.uc.Withdraw(id, principal.UserID); err != nil {
		return util.FromError(c, err, "failed to withdraw")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Application withdrawn"})
}
