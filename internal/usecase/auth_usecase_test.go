package usecase

import (
	"testing"

	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSeeker(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("jane@example.com", "s3cretpass", "Jane", model.RoleSeeker, "")
	require.NoError(t, err)
	assert.True(t, user.IsVerified, "seekers start verified")
	assert.Equal(t, model.RoleSeeker, user.Role)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)
}

func TestRegisterHRCreatesPendingCompany(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register("hr@example.com", "s3cretpass", "Rae", model.RoleHR, "Globex Corp")
	require.NoError(t, err)
	assert.False(t, user.IsVerified, "HR accounts start unverified")

	company, err := env.companies.GetOwn(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", company.Name)
	assert.Equal(t, "globex-corp", company.Slug)
	assert.Equal(t, model.VerificationPending, company.VerificationStatus)
}

func TestRegisterHRRequiresCompanyName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("hr@example.com", "s3cretpass", "Rae", model.RoleHR, "")
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("a@example.com", "s3cretpass", "A", model.RoleAdmin, "")
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok, "admin accounts are seeded, never self-registered")
}

func TestRegisterLeavesNoOrphanOnCompanyConflict(t *testing.T) {
	env := newTestEnv(t)
	hr := env.seedUser(t, model.RoleHR)
	require.NoError(t, env.db.Create(&model.Company{
		HRUserID: hr.ID, Name: "Globex", Slug: "globex",
	}).Error)

	repo := repository.NewUserRepository(env.db)
	user := &model.User{
		Email:        "orphan@example.com",
		PasswordHash: "x",
		Name:         "Rae",
		Role:         model.RoleHR,
		IsActive:     true,
	}
	err := repo.CreateWithCompany(user, &model.Company{
		Name: "Globex", Slug: "globex", VerificationStatus: model.VerificationPending,
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Where("email = ?", "orphan@example.com").Count(&count).Error)
	assert.Zero(t, count, "the user insert must roll back with the company insert")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register("jane@example.com", "s3cretpass", "Jane", model.RoleSeeker, "")
	require.NoError(t, err)

	_, err = env.auth.Register("jane@example.com", "otherpass1", "Janet", model.RoleSeeker, "")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Register("jane@example.com", "s3cretpass", "Jane", model.RoleSeeker, "")
	require.NoError(t, err)

	user, err := env.auth.Login("jane@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)

	_, err = env.auth.Login("jane@example.com", "wrongpass1")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = env.auth.Login("nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized, "unknown email looks like bad credentials")
}

func TestLoginDeactivatedAccount(t *testing.T) {
	env := newTestEnv(t)
	user, err := env.auth.Register("jane@example.com", "s3cretpass", "Jane", model.RoleSeeker, "")
	require.NoError(t, err)
	require.NoError(t, env.db.Model(user).Update("is_active", false).Error)

	_, err = env.auth.Login("jane@example.com", "s3cretpass")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestDeleteAccountCleansUp(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	_, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)
	require.NoError(t, env.saved.Save(seeker.ID, job.ID))

	require.NoError(t, env.auth.DeleteAccount(seeker.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.Application{}).Where("seeker_id = ?", seeker.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Model(&model.SavedJob{}).Where("user_id = ?", seeker.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", seeker.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.auth.EnsureAdmin("root@example.com", "adminpass1", "Root"))
	require.NoError(t, env.auth.EnsureAdmin("root@example.com", "adminpass1", "Root"))

	var count int64
	require.NoError(t, env.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
