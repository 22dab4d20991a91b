package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/response"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

// AdminHandler exposes the company-verification workflow.
type AdminHandler struct {
	uc   *usecase.CompanyUsecase
	auth *middleware.AuthMiddleware
}

func NewAdminHandler(uc *usecase.CompanyUsecase, auth *middleware.AuthMiddleware) *AdminHandler {
	return &AdminHandler{uc: uc, auth: auth}
}

func (h *AdminHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/admin", h.auth.Required(), h.auth.RequireRole(model.RoleAdmin))
	group.Get("/companies", h.ListCompanies)
	group.Post("/companies/:id/verify", h.Verify)
	group.Post("/companies/:id/reject", h.Reject)
}

func (h *AdminHandler) ListCompanies(c *fiber.Ctx) error {
	status := model.VerificationStatus(c.Query("status"))
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	companies, total, err := h.uc.ListByStatus(status, page, perPage)
	if err != nil {
		return util.FromError(c, err, "failed to list companies")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success",
		Data:       fiber.Map{"companies": dto.NewCompanyDTOs(companies)},
		Pagination: response.NewPagination(page, perPage, total),
	})
}

// Verify triggers the transactional cascade: company verified, HR user
// verified, draft jobs activated.
func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid company id",
		}, err)
	}
	company, err := h.uc.Verify(id)
	if err != nil {
		return util.FromError(c, err, "failed to verify company")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company verified",
		Data:    dto.NewCompanyDTO(company),
	})
}

func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid company id",
		}, err)
	}
	var req dto.CompanyRejectRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	company, err := h.uc.Reject(id, req.Reason)
	if err != nil {
		return util.FromError(c, err, "failed to reject company")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Company rejected",
		Data:    dto.NewCompanyDTO(company),
	})
}
