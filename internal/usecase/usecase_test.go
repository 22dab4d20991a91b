package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Notification{},
		&model.Event{},
		&model.SavedJob{},
	)
	require.NoError(t, err, "failed to migrate test database")
	return db
}

type testEnv struct {
	db           *gorm.DB
	applications *ApplicationUsecase
	companies    *CompanyUsecase
	jobs         *JobUsecase
	saved        *SavedJobUsecase
	events       *EventUsecase
	auth         *AuthUsecase

	notificationRepo *repository.NotificationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	logger := zap.NewNop()

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	savedJobRepo := repository.NewSavedJobRepository(db)
	eventRepo := repository.NewEventRepository(db)

	companies := NewCompanyUsecase(companyRepo, notificationRepo, logger)
	applications := NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, notificationRepo, logger)

	return &testEnv{
		db:               db,
		applications:     applications,
		companies:        companies,
		jobs:             NewJobUsecase(jobRepo, companyRepo, logger),
		saved:            NewSavedJobUsecase(savedJobRepo, jobRepo),
		events:           NewEventUsecase(eventRepo, notificationRepo, applications, logger),
		auth:             NewAuthUsecase(userRepo, companies, logger),
		notificationRepo: notificationRepo,
	}
}

func (e *testEnv) seedUser(t *testing.T, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
		IsVerified:   role == model.RoleSeeker,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedCompany(t *testing.T, hr *model.User, status model.VerificationStatus) *model.Company {
	t.Helper()
	company := &model.Company{
		HRUserID:           hr.ID,
		Name:               "Acme " + uuid.NewString()[:8],
		Slug:               "acme-" + uuid.NewString()[:8],
		VerificationStatus: status,
	}
	require.NoError(t, e.db.Create(company).Error)
	return company
}

func (e *testEnv) seedJob(t *testing.T, company *model.Company, status model.JobStatus) *model.Job {
	t.Helper()
	now := time.Now()
	job := &model.Job{
		CompanyID:   company.ID,
		PostedBy:    company.HRUserID,
		Title:       "Backend Engineer",
		Slug:        "backend-engineer-" + uuid.NewString()[:8],
		Description: "Build things",
		Status:      status,
	}
	if status == model.JobStatusActive {
		job.PublishedAt = &now
	}
	require.NoError(t, e.db.Create(job).Error)
	return job
}

// seedVerifiedJob is the common fixture: verified company with an active job.
func (e *testEnv) seedVerifiedJob(t *testing.T) (*model.User, *model.Company, *model.Job) {
	t.Helper()
	hr := e.seedUser(t, model.RoleHR)
	company := e.seedCompany(t, hr, model.VerificationVerified)
	job := e.seedJob(t, company, model.JobStatusActive)
	return hr, company, job
}
