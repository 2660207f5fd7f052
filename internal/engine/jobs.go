package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gigmatch/internal/common/errors"
	"gigmatch/internal/common/metrics"
	"gigmatch/internal/models"
)

// DefaultPostingWindow is how long a posting stays up when the recruiter
// gives no expiry.
const DefaultPostingWindow = 14 * 24 * time.Hour

// JobDraft carries the recruiter-supplied fields for a new posting.
// Zero values are defaulted: type part-time, salary period hourly,
// expiry now+14d.
type JobDraft struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements []string
	Salary       models.Salary
	Type         models.JobType
	Remote       bool
	ExpiresAt    time.Time
}

// PostJob creates a new open posting owned by the acting recruiter.
func (e *Engine) PostJob(ctx context.Context, actor *models.Actor, draft JobDraft) (job *models.Job, err error) {
	start := time.Now()
	defer func() { metrics.Observe("engine.post_job", start, err) }()

	if actor == nil {
		return nil, errors.NewNotAuthenticatedError("post_job")
	}
	if !actor.IsRecruiter() {
		return nil, errors.NewWrongRoleError(string(models.RoleRecruiter), string(actor.Role))
	}
	if draft.Salary.Min < 0 {
		return nil, errors.NewValidationError("salary min must not be negative")
	}
	if draft.Salary.Max < draft.Salary.Min {
		return nil, errors.NewValidationError("salary max must not be below min")
	}
	if draft.Type != "" {
		if _, ok := models.ParseJobType(string(draft.Type)); !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown job type %q", draft.Type))
		}
	}
	if draft.Salary.Period != "" {
		if _, ok := models.ParseSalaryPeriod(string(draft.Salary.Period)); !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown salary period %q", draft.Salary.Period))
		}
	}

	if err = e.delay.Wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	postedAt := now()
	fresh := &models.Job{
		ID:           uuid.New().String(),
		Title:        draft.Title,
		Company:      draft.Company,
		RecruiterID:  actor.ID,
		Location:     draft.Location,
		Description:  draft.Description,
		Requirements: append([]string(nil), draft.Requirements...),
		Salary:       draft.Salary,
		Type:         draft.Type,
		Remote:       draft.Remote,
		PostedAt:     postedAt,
		ExpiresAt:    draft.ExpiresAt,
		Status:       models.JobOpen,
		Applicants:   []string{},
	}
	if fresh.Type == "" {
		fresh.Type = models.JobTypePartTime
	}
	if fresh.Salary.Period == "" {
		fresh.Salary.Period = models.PeriodHourly
	}
	if fresh.ExpiresAt.IsZero() {
		fresh.ExpiresAt = postedAt.Add(DefaultPostingWindow)
	}

	e.jobs = append(e.jobs, fresh)
	e.log.Info("job posted", map[string]interface{}{
		"jobId":       fresh.ID,
		"recruiterId": actor.ID,
		"title":       fresh.Title,
	})
	return fresh.Clone(), nil
}

// UpdateJobStatus sets the job's status. Only the owning recruiter may
// call it; beyond ownership there is deliberately no transition-table
// check (see models.JobTransitionAllowed for the documented lifecycle).
func (e *Engine) UpdateJobStatus(ctx context.Context, actor *models.Actor, jobID string, status models.JobStatus) (job *models.Job, err error) {
	start := time.Now()
	defer func() { metrics.Observe("engine.update_job_status", start, err) }()

	if actor == nil {
		return nil, errors.NewNotAuthenticatedError("update_job_status")
	}
	if !actor.IsRecruiter() {
		return nil, errors.NewWrongRoleError(string(models.RoleRecruiter), string(actor.Role))
	}
	if _, ok := models.ParseJobStatus(string(status)); !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown job status %q", status))
	}

	if err = e.delay.Wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	target := e.findJob(jobID)
	if target == nil {
		e.mu.Unlock()
		return nil, errors.NewJobNotFoundError(jobID)
	}
	if target.RecruiterID != actor.ID {
		e.mu.Unlock()
		return nil, errors.NewForbiddenError("job", jobID)
	}

	target.Status = status
	result := target.Clone()
	ev := models.Event{
		Type:        models.EventJobStatusChanged,
		JobID:       target.ID,
		JobTitle:    target.Title,
		RecruiterID: target.RecruiterID,
		Status:      string(status),
		OccurredAt:  now(),
	}
	e.mu.Unlock()

	e.log.Info("job status updated", map[string]interface{}{
		"jobId":  jobID,
		"status": status,
	})
	e.publish(ctx, []models.Event{ev})
	return result, nil
}
