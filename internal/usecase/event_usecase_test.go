package usecase

import (
	"testing"
	"time"

	"github.com/jobnexus/backend/internal/apperror"
	"github.com/jobnexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleInterviewMovesApplication(t *testing.T) {
	env := newTestEnv(t)
	hr, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	app, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)

	actor := model.Principal{UserID: hr.ID, Role: model.RoleHR}
	event, err := env.events.ScheduleInterview(actor, &model.Event{
		ApplicationID: app.ID,
		Title:         "Technical interview",
		Date:          time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.EventScheduled, event.Status)
	assert.Equal(t, seeker.ID, event.SeekerUserID)
	assert.Equal(t, hr.ID, event.HRUserID)
	assert.Equal(t, "interview", event.Type)

	var stored model.Application
	require.NoError(t, env.db.First(&stored, "id = ?", app.ID).Error)
	assert.Equal(t, model.ApplicationInterview, stored.Status,
		"scheduling drives the application into interview")
	assert.NotNil(t, stored.InterviewAt)

	count, err := env.notificationRepo.UnreadCount(seeker.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "status change plus interview event")
}

func TestScheduleInterviewOnTerminalApplicationFails(t *testing.T) {
	env := newTestEnv(t)
	hr, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	app, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)

	actor := model.Principal{UserID: hr.ID, Role: model.RoleHR}
	_, err = env.applications.SetStatus(actor, app.ID, model.ApplicationRejected, "")
	require.NoError(t, err)

	_, err = env.events.ScheduleInterview(actor, &model.Event{
		ApplicationID: app.ID,
		Title:         "Technical interview",
		Date:          time.Now().Add(48 * time.Hour),
	})
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok, "terminal applications cannot re-enter the pipeline")

	events, err := env.events.ListMine(seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, events, "no event row when the status change fails")
}

func TestScheduleInterviewForeignApplicationForbidden(t *testing.T) {
	env := newTestEnv(t)
	_, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	app, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)

	otherHR := env.seedUser(t, model.RoleHR)
	env.seedCompany(t, otherHR, model.VerificationVerified)

	_, err = env.events.ScheduleInterview(model.Principal{UserID: otherHR.ID, Role: model.RoleHR}, &model.Event{
		ApplicationID: app.ID,
		Title:         "Technical interview",
		Date:          time.Now().Add(48 * time.Hour),
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateEventStatus(t *testing.T) {
	env := newTestEnv(t)
	hr, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	app, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)

	actor := model.Principal{UserID: hr.ID, Role: model.RoleHR}
	event, err := env.events.ScheduleInterview(actor, &model.Event{
		ApplicationID: app.ID,
		Title:         "Technical interview",
		Date:          time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	updated, err := env.events.UpdateStatus(actor, event.ID, model.EventConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.EventConfirmed, updated.Status)

	_, err = env.events.UpdateStatus(actor, event.ID, model.EventStatus("postponed"))
	_, ok := apperror.IsValidation(err)
	assert.True(t, ok)

	seekerActor := model.Principal{UserID: seeker.ID, Role: model.RoleSeeker}
	_, err = env.events.UpdateStatus(seekerActor, event.ID, model.EventCancelled)
	assert.ErrorIs(t, err, apperror.ErrForbidden, "seekers cannot move events")
}

func TestListMineCoversBothSides(t *testing.T) {
	env := newTestEnv(t)
	hr, _, job := env.seedVerifiedJob(t)
	seeker := env.seedUser(t, model.RoleSeeker)

	app, err := env.applications.Apply(seeker.ID, job.ID, "", "")
	require.NoError(t, err)

	actor := model.Principal{UserID: hr.ID, Role: model.RoleHR}
	_, err = env.events.ScheduleInterview(actor, &model.Event{
		ApplicationID: app.ID,
		Title:         "Technical interview",
		Date:          time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	forHR, err := env.events.ListMine(hr.ID)
	require.NoError(t, err)
	assert.Len(t, forHR, 1)

	forSeeker, err := env.events.ListMine(seeker.ID)
	require.NoError(t, err)
	assert.Len(t, forSeeker, 1)
}
