package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/jobnexus/backend/internal/response"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type JobHandler struct {
	uc   *usecase.JobUsecase
	auth *middleware.AuthMiddleware
}

func NewJobHandler(uc *usecase.JobUsecase, auth *middleware.AuthMiddleware) *JobHandler {
	return &JobHandler{uc: uc, auth: auth}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/jobs")
	group.Get("/", h.Search)
	group.Get("/mine", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.ListOwn)
	group.Post("/", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.Create)
	group.Get("/:slug", h.Get)
	group.Put("/:id", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.Update)
	group.Post("/:id/publish", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.Publish)
	group.Post("/:id/close", h.auth.Required(), h.auth.RequireRole(model.RoleHR), h.Close)
}

// Search serves the public listing: active jobs of verified companies with
// optional filters and offset/limit pagination.
func (h *JobHandler) Search(c *fiber.Ctx) error {
	params := repository.JobSearchParams{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		JobType:         c.Query("job_type"),
		LocationType:    c.Query("location_type"),
		ExperienceLevel: c.Query("experience_level"),
		SalaryMin:       c.QueryInt("salary_min"),
		SalaryMax:       c.QueryInt("salary_max"),
		Sort:            c.Query("sort"),
	}
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)

	jobs, total, err := h.uc.Search(params, page, perPage)
	if err != nil {
		return util.FromError(c, err, "failed to search jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success",
		Data:       fiber.Map{"jobs": dto.NewJobDTOs(jobs)},
		Pagination: response.NewJobPagination(page, perPage, total),
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.GetPublic(c.Params("slug"))
	if err != nil {
		return util.FromError(c, err, "failed to load job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) ListOwn(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobs, err := h.uc.ListOwn(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to list jobs")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"jobs": dto.NewJobDTOs(jobs)},
	})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	var req dto.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	job, err := h.uc.Create(principal.UserID, req.ToModel(), req.Publish)
	if err != nil {
		return util.FromError(c, err, "failed to create job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	job, err := h.uc.Update(principal.UserID, jobID, req.Apply)
	if err != nil {
		return util.FromError(c, err, "failed to update job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job updated",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Publish(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	job, err := h.uc.Publish(principal.UserID, jobID)
	if err != nil {
		return util.FromError(c, err, "failed to publish job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job published",
		Data:    dto.NewJobDTO(job),
	})
}

func (h *JobHandler) Close(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid job id",
		}, err)
	}
	job, err := h.uc.Close(principal.UserID, jobID)
	if err != nil {
		return util.FromError(c, err, "failed to close job")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job closed",
		Data:    dto.NewJobDTO(job),
	})
}
