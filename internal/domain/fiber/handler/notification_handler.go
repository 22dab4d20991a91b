package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/response"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type NotificationHandler struct {
	uc   *usecase.NotificationUsecase
	auth *middleware.AuthMiddleware
}

func NewNotificationHandler(uc *usecase.NotificationUsecase, auth *middleware.AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{uc: uc, auth: auth}
}

func (h *NotificationHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/notifications", h.auth.Required())
	group.Get("/", h.List)
	group.Get("/unread-count", h.UnreadCount)
	group.Put("/read-all", h.MarkAllRead)
	group.Put("/:id/read", h.MarkRead)
	group.Delete("/:id", h.Delete)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	unreadOnly := c.QueryBool("unread")
	notifications, total, err := h.uc.List(principal.UserID, unreadOnly, page, perPage)
	if err != nil {
		return util.FromError(c, err, "failed to list notifications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success",
		Data:       fiber.Map{"notifications": notifications},
		Pagination: response.NewPagination(page, perPage, total),
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	count, err := h.uc.UnreadCount(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to count notifications")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    fiber.Map{"unread": count},
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid notification id",
		}, err)
	}
	if err := h.uc.MarkRead(id, principal.UserID); err != nil {
		return util.FromError(c, err, "failed to mark notification read")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Notification marked read"})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	updated, err := h.uc.MarkAllRead(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to mark notifications read")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Notifications marked read",
		Data:    fiber.Map{"updated": updated},
	})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid notification id",
		}, err)
	}
	if err := h.uc.Delete(id, principal.UserID); err != nil {
		return util.FromError(c, err, "failed to delete notification")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Notification deleted"})
}
