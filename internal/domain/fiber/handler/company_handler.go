package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobnexus/backend/internal/config"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type CompanyHandler struct {
	uc   *usecase.CompanyUsecase
	auth *middleware.AuthMiddleware
}

func NewCompanyHandler(uc *usecase.CompanyUsecase, auth *middleware.AuthMiddleware) *CompanyHandler {
	return &CompanyHandler{uc: uc, auth: auth}
}

func (h *CompanyHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/companies")
	group.Get("/mine", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.GetOwn)
	group.Put("/mine", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.Update)
	group.Post("/mine/logo", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.UploadLogo)
	group.Get("/:slug", h.Get)
}

// Get serves the public company profile.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return util.FromError(c, err, "failed to load company")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) GetOwn(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	company, err := h.uc.GetOwn(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to load company")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	var req dto.CompanyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	company, err := h.uc.UpdateProfile(principal.UserID, req.Apply)
	if err != nil {
		return util.FromError(c, err, "failed to update company")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company updated",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	file, err := c.FormFile("logo")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "logo file is required",
		}, err)
	}
	name, err := util.SaveImage(c, file, config.LoadAppConfig().UploadDir, "logos")
	if err != nil {
		return util.FromError(c, err, "failed to save logo")
	}
	company, err := h.uc.UpdateLogo(principal.UserID, name)
	if err != nil {
		return util.FromError(c, err, "failed to update logo")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Logo updated",
		Data:    dto.NewCompanyDTO(company),
	})
}
