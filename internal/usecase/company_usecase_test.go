package usecase

import (
	"encoding/json"
	"testing"

	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueSlugDeduplicates(t *testing.T) {
	env := newTestEnv(t)

	slug, err := env.companies.UniqueSlug("Acme Inc")
	require.NoError(t, err)
	assert.Equal(t, "acme-inc", slug)

	hr := env.seedUser(t, model.RoleHR)
	require.NoError(t, env.db.Create(&model.Company{
		HRUserID: hr.ID, Name: "Acme Inc", Slug: "acme-inc",
	}).Error)

	slug, err = env.companies.UniqueSlug("Acme Inc")
	require.NoError(t, err)
	assert.Equal(t, "acme-inc-2", slug)

	hr2 := env.seedUser(t, model.RoleHR)
	require.NoError(t, env.db.Create(&model.Company{
		HRUserID: hr2.ID, Name: "Acme Inc", Slug: "acme-inc-2",
	}).Error)

	slug, err = env.companies.UniqueSlug("Acme Inc")
	require.NoError(t, err)
	assert.Equal(t, "acme-inc-3", slug)
}

func TestVerifyCascade(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)

	drafts := make([]*model.Job, 0, 3)
	for i := 0; i < 3; i++ {
		drafts = append(drafts, env.seedJob(t, company, model.JobStatusDraft))
	}
	closed := env.seedJob(t, company, model.JobStatusClosed)

	verified, err := env.companies.Verify(company.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VerificationVerified, verified.VerificationStatus)
	assert.NotNil(t, verified.VerifiedAt)

	var user model.User
	require.NoError(t, env.db.First(&user, "id = ?", hr.ID).Error)
	assert.True(t, user.IsVerified, "owning HR user must be verified by the cascade")

	for _, draft := range drafts {
		var job model.Job
		require.NoError(t, env.db.First(&job, "id = ?", draft.ID).Error)
		assert.Equal(t, model.JobStatusActive, job.Status, "every draft job must go active")
		assert.NotNil(t, job.PublishedAt, "activated jobs must get published_at")
	}

	var stillClosed model.Job
	require.NoError(t, env.db.First(&stillClosed, "id = ?", closed.ID).Error)
	assert.Equal(t, model.JobStatusClosed, stillClosed.Status, "closed jobs are not resurrected")

	count, err := env.notificationRepo.UnreadCount(hr.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "verification must notify the HR user")
}

func TestVerifyNotificationCarriesPayload(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)

	_, err := env.companies.Verify(company.ID)
	require.NoError(t, err)

	var n model.Notification
	require.NoError(t, env.db.First(&n, "user_id = ?", hr.ID).Error)
	require.NotEmpty(t, n.Data)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(n.Data, &payload))
	assert.Equal(t, company.ID.String(), payload["company_id"])
	assert.Equal(t, "verified", payload["status"])
}

func TestVerifyUnknownCompany(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)
	require.NoError(t, env.db.Delete(&model.Company{}, "id = ?", company.ID).Error)

	_, err := env.companies.Verify(company.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRejectKeepsJobsPrivate(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)
	draft := env.seedJob(t, company, model.JobStatusDraft)

	rejected, err := env.companies.Reject(company.ID, "missing registration documents")
	require.NoError(t, err)
	assert.Equal(t, model.VerificationRejected, rejected.VerificationStatus)
	assert.Equal(t, "missing registration documents", rejected.RejectionReason)

	var job model.Job
	require.NoError(t, env.db.First(&job, "id = ?", draft.ID).Error)
	assert.Equal(t, model.JobStatusDraft, job.Status, "rejection has no job cascade")

	var user model.User
	require.NoError(t, env.db.First(&user, "id = ?", hr.ID).Error)
	assert.False(t, user.IsVerified)
}

func TestRejectRequiresReason(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	company := env.seedCompany(t, hr, model.VerificationPending)

	_, err := env.companies.Reject(company.ID, "")
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok)
}
