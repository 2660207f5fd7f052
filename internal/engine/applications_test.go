package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmatch/internal/common/errors"
	"gigmatch/internal/models"
)

// ==========================
// ApplyToJob
// ==========================

func TestEngine_ApplyToJob_Success(t *testing.T) {
	eng, pub := createTestEngine(t)
	seeker := createTestSeeker()

	app, err := eng.ApplyToJob(context.Background(), seeker, "job-1", "I have two years behind the bar.")
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, "job-1", app.JobID)
	assert.Equal(t, "seeker-1", app.SeekerID)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.Nil(t, app.Notes)
	assert.False(t, app.AppliedAt.IsZero())

	// The seeker lands on the job's applicant list.
	job, _ := eng.JobByID("job-1")
	assert.Equal(t, []string{"seeker-1"}, job.Applicants)

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventApplicationSubmitted, events[0].Type)
	assert.Equal(t, "rec-1", events[0].RecruiterID)
	assert.Equal(t, "Alex Johnson", events[0].SeekerName)
	assert.Equal(t, "Part-time Barista", events[0].JobTitle)
}

func TestEngine_ApplyToJob_Guards(t *testing.T) {
	eng, _ := createTestEngine(t)
	recruiter := createTestRecruiter("rec-1")
	_, err := eng.UpdateJobStatus(context.Background(), createTestRecruiter("rec-2"), "job-2", models.JobClosed)
	require.NoError(t, err)

	tests := []struct {
		name        string
		actor       *models.Actor
		jobID       string
		coverLetter string
		wantCode    errors.ErrorCode
	}{
		{"unauthenticated", nil, "job-1", "letter", errors.ErrCodeNotAuthenticated},
		{"recruiter cannot apply", recruiter, "job-1", "letter", errors.ErrCodeWrongRole},
		{"empty cover letter", createTestSeeker(), "job-1", "   ", errors.ErrCodeValidationFailed},
		{"unknown job", createTestSeeker(), "job-999", "letter", errors.ErrCodeJobNotFound},
		{"closed job", createTestSeeker(), "job-2", "letter", errors.ErrCodeJobNotOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := eng.ApplyToJob(context.Background(), tt.actor, tt.jobID, tt.coverLetter)
			assert.Nil(t, app)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestEngine_ApplyToJob_Duplicate(t *testing.T) {
	eng, _ := createTestEngine(t)
	seeker := createTestSeeker()

	_, err := eng.ApplyToJob(context.Background(), seeker, "job-1", "first")
	require.NoError(t, err)

	app, err := eng.ApplyToJob(context.Background(), seeker, "job-1", "second")
	assert.Nil(t, app)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDuplicateApplication))

	// The first application and applicant entry are unchanged.
	apps := eng.ApplicationsByJob("job-1")
	require.Len(t, apps, 1)
	assert.Equal(t, "first", apps[0].CoverLetter)
	job, _ := eng.JobByID("job-1")
	assert.Equal(t, []string{"seeker-1"}, job.Applicants)
}

func TestEngine_ApplyToJob_SameSeekerDifferentJobs(t *testing.T) {
	eng, _ := createTestEngine(t)
	seeker := createTestSeeker()

	_, err := eng.ApplyToJob(context.Background(), seeker, "job-1", "barista letter")
	require.NoError(t, err)
	_, err = eng.ApplyToJob(context.Background(), seeker, "job-2", "developer letter")
	require.NoError(t, err)

	assert.Len(t, eng.ApplicationsBySeeker("seeker-1"), 2)
}

// ==========================
// UpdateApplicationStatus
// ==========================

func submitTestApplication(t *testing.T, eng *Engine) *models.JobApplication {
	t.Helper()
	app, err := eng.ApplyToJob(context.Background(), createTestSeeker(), "job-1", "letter")
	require.NoError(t, err)
	return app
}

func TestEngine_UpdateApplicationStatus_Viewed(t *testing.T) {
	eng, pub := createTestEngine(t)
	app := submitTestApplication(t, eng)
	recruiter := createTestRecruiter("rec-1")

	updated, err := eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationViewed, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationViewed, updated.Status)
	assert.Nil(t, updated.Notes)

	// Viewing does not touch the job.
	job, _ := eng.JobByID("job-1")
	assert.Equal(t, models.JobOpen, job.Status)

	events := pub.all()
	require.Len(t, events, 2) // submit + status change
	assert.Equal(t, models.EventApplicationStatusChanged, events[1].Type)
	assert.Equal(t, "seeker-1", events[1].SeekerID)
	assert.Equal(t, string(models.ApplicationViewed), events[1].Status)
}

func TestEngine_UpdateApplicationStatus_AcceptFillsJob(t *testing.T) {
	eng, pub := createTestEngine(t)
	app := submitTestApplication(t, eng)
	recruiter := createTestRecruiter("rec-1")

	updated, err := eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationAccepted, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.Status)

	job, _ := eng.JobByID("job-1")
	assert.Equal(t, models.JobFilled, job.Status)

	// Both the application change and the job change are announced.
	events := pub.all()
	require.Len(t, events, 3)
	assert.Equal(t, models.EventApplicationStatusChanged, events[1].Type)
	assert.Equal(t, models.EventJobStatusChanged, events[2].Type)
	assert.Equal(t, string(models.JobFilled), events[2].Status)
}

func TestEngine_UpdateApplicationStatus_AcceptAlreadyFilledJob(t *testing.T) {
	eng, pub := createTestEngine(t)
	app := submitTestApplication(t, eng)
	recruiter := createTestRecruiter("rec-1")

	_, err := eng.UpdateJobStatus(context.Background(), recruiter, "job-1", models.JobFilled)
	require.NoError(t, err)
	before := len(pub.all())

	_, err = eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationAccepted, nil)
	require.NoError(t, err)

	// No redundant job status event when the job was already filled.
	events := pub.all()
	require.Len(t, events, before+1)
	assert.Equal(t, models.EventApplicationStatusChanged, events[len(events)-1].Type)
}

func TestEngine_UpdateApplicationStatus_NotesPointerSemantics(t *testing.T) {
	eng, _ := createTestEngine(t)
	app := submitTestApplication(t, eng)
	recruiter := createTestRecruiter("rec-1")

	// nil notes leave the field absent.
	updated, err := eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationViewed, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.Notes)

	// An empty string is a present value, distinct from absent.
	empty := ""
	updated, err = eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationViewed, &empty)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "", *updated.Notes)

	// nil notes on a later update preserve the stored value.
	notes := "solid interview"
	_, err = eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationRejected, &notes)
	require.NoError(t, err)
	updated, err = eng.UpdateApplicationStatus(context.Background(), recruiter, app.ID, models.ApplicationRejected, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "solid interview", *updated.Notes)
}

func TestEngine_UpdateApplicationStatus_Guards(t *testing.T) {
	eng, _ := createTestEngine(t)
	app := submitTestApplication(t, eng)

	tests := []struct {
		name     string
		actor    *models.Actor
		appID    string
		status   models.ApplicationStatus
		wantCode errors.ErrorCode
	}{
		{"unauthenticated", nil, app.ID, models.ApplicationViewed, errors.ErrCodeNotAuthenticated},
		{"seeker cannot review", createTestSeeker(), app.ID, models.ApplicationViewed, errors.ErrCodeWrongRole},
		{"unknown status", createTestRecruiter("rec-1"), app.ID, models.ApplicationStatus("shortlisted"), errors.ErrCodeValidationFailed},
		{"unknown application", createTestRecruiter("rec-1"), "app-999", models.ApplicationViewed, errors.ErrCodeApplicationNotFound},
		{"not the job owner", createTestRecruiter("rec-2"), app.ID, models.ApplicationViewed, errors.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.UpdateApplicationStatus(context.Background(), tt.actor, tt.appID, tt.status, nil)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}

	// Every rejection left the application pending.
	stored, ok := eng.ApplicationByID(app.ID)
	require.True(t, ok)
	assert.Equal(t, models.ApplicationPending, stored.Status)
}
