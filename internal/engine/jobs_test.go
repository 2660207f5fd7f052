package engine

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmatch/internal/common/errors"
	"gigmatch/internal/common/metrics"
	"gigmatch/internal/models"
)

// ==========================
// PostJob
// ==========================

func TestEngine_PostJob_Success(t *testing.T) {
	eng, _ := createTestEngine(t)
	recruiter := createTestRecruiter("rec-1")

	expires := time.Now().Add(30 * 24 * time.Hour).UTC()
	job, err := eng.PostJob(context.Background(), recruiter, JobDraft{
		Title:        "Night Shift Supervisor",
		Company:      "Coffee Haven",
		Location:     "San Francisco, CA",
		Description:  "Run the closing shift.",
		Requirements: []string{"Supervision experience"},
		Salary:       models.Salary{Min: 25, Max: 30, Period: models.PeriodHourly},
		Type:         models.JobTypePartTime,
		ExpiresAt:    expires,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "rec-1", job.RecruiterID)
	assert.Equal(t, models.JobOpen, job.Status)
	assert.NotNil(t, job.Applicants)
	assert.Empty(t, job.Applicants)
	assert.Equal(t, expires, job.ExpiresAt)
	assert.False(t, job.PostedAt.IsZero())

	// The posting is immediately queryable.
	stored, ok := eng.JobByID(job.ID)
	require.True(t, ok)
	assert.Equal(t, "Night Shift Supervisor", stored.Title)
}

func TestEngine_PostJob_Defaults(t *testing.T) {
	eng, _ := createTestEngine(t)
	recruiter := createTestRecruiter("rec-1")

	before := time.Now().UTC()
	job, err := eng.PostJob(context.Background(), recruiter, JobDraft{
		Title:  "Minimal Posting",
		Salary: models.Salary{Min: 20, Max: 25},
	})
	require.NoError(t, err)

	assert.Equal(t, models.JobTypePartTime, job.Type)
	assert.Equal(t, models.PeriodHourly, job.Salary.Period)
	// Default expiry is two weeks out from posting.
	assert.WithinDuration(t, before.Add(DefaultPostingWindow), job.ExpiresAt, time.Minute)
}

func TestEngine_PostJob_Guards(t *testing.T) {
	eng, _ := createTestEngine(t)

	tests := []struct {
		name     string
		actor    *models.Actor
		draft    JobDraft
		wantCode errors.ErrorCode
	}{
		{
			name:     "unauthenticated",
			actor:    nil,
			draft:    JobDraft{Title: "X"},
			wantCode: errors.ErrCodeNotAuthenticated,
		},
		{
			name:     "seeker cannot post",
			actor:    createTestSeeker(),
			draft:    JobDraft{Title: "X"},
			wantCode: errors.ErrCodeWrongRole,
		},
		{
			name:     "negative salary min",
			actor:    createTestRecruiter("rec-1"),
			draft:    JobDraft{Salary: models.Salary{Min: -1, Max: 10}},
			wantCode: errors.ErrCodeValidationFailed,
		},
		{
			name:     "max below min",
			actor:    createTestRecruiter("rec-1"),
			draft:    JobDraft{Salary: models.Salary{Min: 30, Max: 20}},
			wantCode: errors.ErrCodeValidationFailed,
		},
		{
			name:     "unknown job type",
			actor:    createTestRecruiter("rec-1"),
			draft:    JobDraft{Type: models.JobType("full-time")},
			wantCode: errors.ErrCodeValidationFailed,
		},
		{
			name:     "unknown salary period",
			actor:    createTestRecruiter("rec-1"),
			draft:    JobDraft{Salary: models.Salary{Min: 1, Max: 2, Period: models.SalaryPeriod("yearly")}},
			wantCode: errors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := eng.PostJob(context.Background(), tt.actor, tt.draft)
			assert.Nil(t, job)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}

	// None of the rejected drafts entered the catalog.
	assert.Len(t, eng.JobsByRecruiter("rec-1"), 1)
}

func TestEngine_PostJob_FailureCountsAsFailed(t *testing.T) {
	eng, _ := createTestEngine(t)

	const op = "engine.post_job"
	code := string(errors.ErrCodeNotAuthenticated)
	failedBefore := testutil.ToFloat64(metrics.OperationsFailed.WithLabelValues(op, code))
	completedBefore := testutil.ToFloat64(metrics.OperationsCompleted.WithLabelValues(op))

	_, err := eng.PostJob(context.Background(), nil, JobDraft{Title: "X"})
	require.Error(t, err)

	// The rejection shows up as a failure with its code, never as a
	// completed operation.
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(metrics.OperationsFailed.WithLabelValues(op, code)))
	assert.Equal(t, completedBefore, testutil.ToFloat64(metrics.OperationsCompleted.WithLabelValues(op)))
}

// ==========================
// UpdateJobStatus
// ==========================

func TestEngine_UpdateJobStatus_Success(t *testing.T) {
	eng, pub := createTestEngine(t)
	recruiter := createTestRecruiter("rec-1")

	job, err := eng.UpdateJobStatus(context.Background(), recruiter, "job-1", models.JobClosed)
	require.NoError(t, err)
	assert.Equal(t, models.JobClosed, job.Status)

	stored, _ := eng.JobByID("job-1")
	assert.Equal(t, models.JobClosed, stored.Status)

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventJobStatusChanged, events[0].Type)
	assert.Equal(t, "job-1", events[0].JobID)
	assert.Equal(t, string(models.JobClosed), events[0].Status)
}

func TestEngine_UpdateJobStatus_ReassignmentIsUnrestricted(t *testing.T) {
	eng, _ := createTestEngine(t)
	recruiter := createTestRecruiter("rec-1")

	_, err := eng.UpdateJobStatus(context.Background(), recruiter, "job-1", models.JobClosed)
	require.NoError(t, err)

	// Reopening a closed job is accepted; ownership is the only check.
	job, err := eng.UpdateJobStatus(context.Background(), recruiter, "job-1", models.JobOpen)
	require.NoError(t, err)
	assert.Equal(t, models.JobOpen, job.Status)
}

func TestEngine_UpdateJobStatus_Guards(t *testing.T) {
	eng, pub := createTestEngine(t)

	tests := []struct {
		name     string
		actor    *models.Actor
		jobID    string
		status   models.JobStatus
		wantCode errors.ErrorCode
	}{
		{"unauthenticated", nil, "job-1", models.JobClosed, errors.ErrCodeNotAuthenticated},
		{"seeker cannot update", createTestSeeker(), "job-1", models.JobClosed, errors.ErrCodeWrongRole},
		{"unknown status", createTestRecruiter("rec-1"), "job-1", models.JobStatus("archived"), errors.ErrCodeValidationFailed},
		{"unknown job", createTestRecruiter("rec-1"), "job-999", models.JobClosed, errors.ErrCodeJobNotFound},
		{"not the owner", createTestRecruiter("rec-2"), "job-1", models.JobClosed, errors.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.UpdateJobStatus(context.Background(), tt.actor, tt.jobID, tt.status)
			assert.True(t, errors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}

	// Every rejection left the job untouched and silent.
	stored, _ := eng.JobByID("job-1")
	assert.Equal(t, models.JobOpen, stored.Status)
	assert.Empty(t, pub.all())
}
