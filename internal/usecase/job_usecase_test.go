package usecase

import (
	"testing"

	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOnlyReturnsVisibleJobs(t *testing.T) {
	env := newTestEnv(t)

	_, _, visible := env.seedVerifiedJob(t)

	hrVerified := env.seedUser(t, model.RoleHR)
	verifiedCompany := env.seedCompany(t, hrVerified, model.VerificationVerified)
	env.seedJob(t, verifiedCompany, model.JobStatusDraft)
	env.seedJob(t, verifiedCompany, model.JobStatusClosed)

	hrPending := env.seedUser(t, model.RoleHR)
	pendingCompany := env.seedCompany(t, hrPending, model.VerificationPending)
	env.seedJob(t, pendingCompany, model.JobStatusActive)

	jobs, total, err := env.jobs.Search(repository.JobSearchParams{}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, visible.ID, jobs[0].ID,
		"only active jobs of verified companies are public")
}

func TestSearchFilters(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationVerified)

	golang := env.seedJob(t, company, model.JobStatusActive)
	require.NoError(t, env.db.Model(golang).Updates(map[string]any{
		"title": "Go Developer", "category": "engineering",
		"location_type": "remote", "salary_min": 50000, "salary_max": 90000,
	}).Error)

	sales := env.seedJob(t, company, model.JobStatusActive)
	require.NoError(t, env.db.Model(sales).Updates(map[string]any{
		"title": "Sales Manager", "category": "sales",
		"location_type": "onsite", "salary_min": 30000, "salary_max": 45000,
	}).Error)

	jobs, _, err := env.jobs.Search(repository.JobSearchParams{Category: "engineering"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, golang.ID, jobs[0].ID)

	jobs, _, err = env.jobs.Search(repository.JobSearchParams{Search: "Sales"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, sales.ID, jobs[0].ID)

	jobs, _, err = env.jobs.Search(repository.JobSearchParams{SalaryMin: 60000}, 1, 20)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, golang.ID, jobs[0].ID, "salary floor matches jobs whose range reaches it")

	jobs, _, err = env.jobs.Search(repository.JobSearchParams{LocationType: "onsite"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, sales.ID, jobs[0].ID)
}

func TestSearchFeaturedFirstAndPagination(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationVerified)

	for i := 0; i < 5; i++ {
		env.seedJob(t, company, model.JobStatusActive)
	}
	featured := env.seedJob(t, company, model.JobStatusActive)
	require.NoError(t, env.db.Model(featured).Update("is_featured", true).Error)

	jobs, total, err := env.jobs.Search(repository.JobSearchParams{}, 1, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	require.Len(t, jobs, 4)
	assert.Equal(t, featured.ID, jobs[0].ID, "featured jobs sort first")

	jobs, _, err = env.jobs.Search(repository.JobSearchParams{}, 2, 4)
	require.NoError(t, err)
	assert.Len(t, jobs, 2, "second page holds the remainder")
}

func TestCreateJobStartsAsDraftForUnverifiedCompany(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	env.seedCompany(t, hr, model.VerificationPending)

	job, err := env.jobs.Create(hr.ID, &model.Job{Title: "Designer", Description: "d"}, true)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusDraft, job.Status,
		"publish is ignored while the company is unverified")
	assert.Nil(t, job.PublishedAt)
	assert.NotEmpty(t, job.Slug)
}

func TestCreateJobPublishesForVerifiedCompany(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	env.seedCompany(t, hr, model.VerificationVerified)

	job, err := env.jobs.Create(hr.ID, &model.Job{Title: "Designer", Description: "d"}, true)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusActive, job.Status)
	assert.NotNil(t, job.PublishedAt)
}

func TestPublishRequiresVerifiedCompany(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)
	job := env.seedJob(t, company, model.JobStatusDraft)

	_, err := env.jobs.Publish(hr.ID, job.ID)
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok)
}

func TestUpdateForeignJobIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)

	otherHR := env.seedUser(t, model.RoleHR)
	env.seedCompany(t, otherHR, model.VerificationVerified)

	_, err := env.jobs.Close(otherHR.ID, job.ID)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestGetPublicHidesNonPublicJobs(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)
	job := env.seedJob(t, company, model.JobStatusActive)

	_, err := env.jobs.GetPublic(job.Slug)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetPublicCountsViews(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)

	_, err := env.jobs.GetPublic(job.Slug)
	require.NoError(t, err)
	_, err = env.jobs.GetPublic(job.Slug)
	require.NoError(t, err)

	var stored model.Job
	require.NoError(t, env.db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, 2, stored.ViewsCount)
}
