package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/jobnexus/backend/internal/util"
	"go.uber.org/zap"
)

type AuthUsecase struct {
	userRepo  *repository.UserRepository
	companies *CompanyUsecase
	logger    *zap.Logger
}

func NewAuthUsecase(userRepo *repository.UserRepository, companies *CompanyUsecase, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, companies: companies, logger: logger}
}

// Register creates a seeker or an HR account. An HR registration also creates
// the pending company; the HR user stays unverified until an admin verifies
// the company, while seekers start verified.
func (uc *AuthUsecase) Register(email, password, name string, role model.Role, companyName string) (*model.User, error) {
	if role != model.RoleSeeker && role != model.RoleHR {
		return nil, apperror.NewValidationError("invalid role",
			map[string]string{"role": "role must be seeker or hr"})
	}
	if role == model.RoleHR && companyName == "" {
		return nil, apperror.NewValidationError("company name is required",
			map[string]string{"company_name": "company_name is required for hr accounts"})
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		IsVerified:   role == model.RoleSeeker,
		IsActive:     true,
	}
	if role == model.RoleHR {
		slug, err := uc.companies.UniqueSlug(companyName)
		if err != nil {
			return nil, err
		}
		company := &model.Company{
			Name:               companyName,
			Slug:               slug,
			VerificationStatus: model.VerificationPending,
		}
		if err := uc.userRepo.CreateWithCompany(user, company); err != nil {
			if errors.Is(err, apperror.ErrConflict) {
				return nil, fmt.Errorf("%w: email or company is already registered", apperror.ErrConflict)
			}
			return nil, err
		}
	} else if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, fmt.Errorf("%w: email is already registered", apperror.ErrConflict)
		}
		return nil, err
	}

	uc.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)))
	return user, nil
}

// Login checks credentials and the active flag, then stamps last_login.
func (uc *AuthUsecase) Login(email, password string) (*model.User, error) {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}
	if !util.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", apperror.ErrForbidden)
	}
	if err := uc.userRepo.UpdateLastLogin(user.ID); err != nil {
		uc.logger.Warn("failed to stamp last login", zap.Error(err))
	}
	return user, nil
}

func (uc *AuthUsecase) Get(id uuid.UUID) (*model.User, error) {
	return uc.userRepo.FindByID(id)
}

func (uc *AuthUsecase) UpdateAvatar(id uuid.UUID, avatar string) error {
	return uc.userRepo.UpdateAvatar(id, avatar)
}

func (uc *AuthUsecase) DeleteAccount(id uuid.UUID) error {
	if err := uc.userRepo.DeleteAccount(id); err != nil {
		return err
	}
	uc.logger.Info("account deleted", zap.String("user_id", id.String()))
	return nil
}

// EnsureAdmin seeds the admin account from the environment on startup.
func (uc *AuthUsecase) EnsureAdmin(email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := uc.userRepo.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         model.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return err
	}
	uc.logger.Info("admin account seeded", zap.String("email", email))
	return nil
}
