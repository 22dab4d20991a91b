package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/jobnexus/backend/internal/util"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type CompanyUsecase struct {
	companyRepo      *repository.CompanyRepository
	notificationRepo *repository.NotificationRepository
	logger           *zap.Logger
}

func NewCompanyUsecase(companyRepo *repository.CompanyRepository, notificationRepo *repository.NotificationRepository, logger *zap.Logger) *CompanyUsecase {
	return &CompanyUsecase{companyRepo: companyRepo, notificationRepo: notificationRepo, logger: logger}
}

// UniqueSlug deduplicates a company slug by appending a numeric suffix on
// collision: acme, acme-2, acme-3, ...
func (uc *CompanyUsecase) UniqueSlug(name string) (string, error) {
	base := util.Slugify(name)
	if base == "" {
		base = "company"
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := uc.companyRepo.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (uc *CompanyUsecase) GetBySlug(slug string) (*model.Company, error) {
	return uc.companyRepo.FindBySlug(slug)
}

func (uc *CompanyUsecase) GetOwn(hrUserID uuid.UUID) (*model.Company, error) {
	return uc.companyRepo.FindByHRUser(hrUserID)
}

// UpdateProfile lets the owning HR user edit company details. Verification
// state is not touchable through this path.
func (uc *CompanyUsecase) UpdateProfile(hrUserID uuid.UUID, apply func(*model.Company)) (*model.Company, error) {
	company, err := uc.companyRepo.FindByHRUser(hrUserID)
	if err != nil {
		return nil, err
	}
	apply(company)
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (uc *CompanyUsecase) UpdateLogo(hrUserID uuid.UUID, logo string) (*model.Company, error) {
	return uc.UpdateProfile(hrUserID, func(c *model.Company) { c.Logo = logo })
}

func (uc *CompanyUsecase) ListByStatus(status model.VerificationStatus, page, perPage int) ([]model.Company, int64, error) {
	return uc.companyRepo.ListByStatus(status, (page-1)*perPage, perPage)
}

// Verify runs the admin verification cascade and notifies the HR user. The
// cascade itself is transactional in the repository.
func (uc *CompanyUsecase) Verify(id uuid.UUID) (*model.Company, error) {
	company, err := uc.companyRepo.Verify(id)
	if err != nil {
		return nil, err
	}
	uc.notify(company.HRUserID, model.NotificationCompanyVerified,
		"Company verified",
		fmt.Sprintf("%s has been verified. Your job postings are now public.", company.Name),
		"/company",
		map[string]any{"company_id": company.ID, "status": company.VerificationStatus})
	uc.logger.Info("company verified", zap.String("company_id", company.ID.String()))
	return company, nil
}

func (uc *CompanyUsecase) Reject(id uuid.UUID, reason string) (*model.Company, error) {
	if reason == "" {
		return nil, apperror.NewValidationError("rejection reason is required",
			map[string]string{"reason": "reason is required"})
	}
	company, err := uc.companyRepo.Reject(id, reason)
	if err != nil {
		return nil, err
	}
	uc.notify(company.HRUserID, model.NotificationCompanyRejected,
		"Company verification rejected", reason, "/company",
		map[string]any{"company_id": company.ID, "status": company.VerificationStatus, "reason": reason})
	uc.logger.Info("company rejected", zap.String("company_id", company.ID.String()))
	return company, nil
}

func (uc *CompanyUsecase) notify(userID uuid.UUID, kind, title, message, link string, data map[string]any) {
	payload, err := json.Marshal(data)
	if err != nil {
		uc.logger.Warn("failed to encode notification payload", zap.Error(err))
	}
	n := &model.Notification{
		UserID: userID, Type: kind, Title: title, Message: message, Link: link,
		Data: datatypes.JSON(payload),
	}
	if err := uc.notificationRepo.Create(n); err != nil {
		uc.logger.Warn("failed to create notification", zap.Error(err))
	}
}
