package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobnexus/backend/internal/config"
	"github.com/jobnexus/backend/internal/dto"
	"github.com/jobnexus/backend/internal/middleware"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/usecase"
	"github.com/jobnexus/backend/internal/util"
)

type AuthHandler struct {
	uc   *usecase.AuthUsecase
	auth *middleware.AuthMiddleware
}

func NewAuthHandler(uc *usecase.AuthUsecase, auth *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{uc: uc, auth: auth}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/auth")
	group.Post("/register", middleware.RateLimiter(10, time.Minute), h.Register)
	group.Post("/login", middleware.RateLimiter(10, time.Minute), h.Login)
	group.Post("/logout", h.auth.Required(), h.Logout)
	group.Get("/me", h.auth.Required(), h.Me)
	group.Post("/avatar", h.auth.Required(), h.UploadAvatar)
	group.Delete("/account", h.auth.Required(), h.DeleteAccount)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	user, err := h.uc.Register(req.Email, req.Password, req.Name, model.Role(req.Role), req.CompanyName)
	if err != nil {
		return util.FromError(c, err, "failed to register")
	}
	if err := h.auth.SignIn(c, user); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to start session"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Registration successful",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&req); err != nil {
		return util.FromError(c, err, "validation failed")
	}
	user, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		return util.FromError(c, err, "failed to log in")
	}
	if err := h.auth.SignIn(c, user); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to start session"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Login successful",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.SignOut(c); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to log out"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	user, err := h.uc.Get(principal.UserID)
	if err != nil {
		return util.FromError(c, err, "failed to load profile")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success",
		Data:    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	file, err := c.FormFile("avatar")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "avatar file is required",
		}, err)
	}
	name, err := util.SaveImage(c, file, config.LoadAppConfig().UploadDir, "avatars")
	if err != nil {
		return util.FromError(c, err, "failed to save avatar")
	}
	if err := h.uc.UpdateAvatar(principal.UserID, name); err != nil {
		return util.FromError(c, err, "failed to update avatar")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Avatar updated",
		Data:    fiber.Map{"avatar": name},
	})
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	principal, _ := middleware.Principal(c)
	if err := h.uc.DeleteAccount(principal.UserID); err != nil {
		return util.FromError(c, err, "failed to delete account")
	}
	if err := h.auth.SignOut(c); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "failed to end session"}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Message: "Account deleted"})
}
