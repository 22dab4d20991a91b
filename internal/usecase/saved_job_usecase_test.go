package usecase

import (
	"testing"

	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	require.NoError(t, env.saved.Save(seeker.ID, job.ID))
	require.NoError(t, env.saved.Save(seeker.ID, job.ID), "saving twice still reports success")

	saved, err := env.saved.List(seeker.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1, "only one row per (user, job)")
}

func TestToggleRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	saved, err := env.saved.Toggle(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = env.saved.Toggle(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, saved, "toggling twice returns to the original state")

	list, err := env.saved.List(seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnsaveMissingRowStillSucceeds(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	assert.NoError(t, env.saved.Unsave(seeker.ID, job.ID))
}

func TestSaveUnknownJob(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	err := env.saved.Save(seeker.ID, seeker.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
