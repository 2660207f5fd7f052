package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gigmatch/internal/common/errors"
	"gigmatch/internal/common/metrics"
	"gigmatch/internal/models"
)

// ApplyToJob records the acting seeker's application to an open job and
// appends the seeker to the job's applicant set.
func (e *Engine) ApplyToJob(ctx context.Context, actor *models.Actor, jobID, coverLetter string) (app *models.JobApplication, err error) {
	start := time.Now()
	defer func() { metrics.Observe("engine.apply_to_job", start, err) }()

	if actor == nil {
		return nil, errors.NewNotAuthenticatedError("apply_to_job")
	}
	if !actor.IsSeeker() {
		return nil, errors.NewWrongRoleError(string(models.RoleSeeker), string(actor.Role))
	}
	if strings.TrimSpace(coverLetter) == "" {
		return nil, errors.NewValidationError("cover letter must not be empty")
	}

	if err = e.delay.Wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	job := e.findJob(jobID)
	if job == nil {
		e.mu.Unlock()
		return nil, errors.NewJobNotFoundError(jobID)
	}
	if job.Status != models.JobOpen {
		e.mu.Unlock()
		return nil, errors.NewJobNotOpenError(jobID, string(job.Status))
	}
	for _, a := range e.apps {
		if a.JobID == jobID && a.SeekerID == actor.ID {
			e.mu.Unlock()
			return nil, errors.NewDuplicateApplicationError(jobID, actor.ID)
		}
	}

	fresh := &models.JobApplication{
		ID:          uuid.New().String(),
		JobID:       jobID,
		SeekerID:    actor.ID,
		AppliedAt:   now(),
		CoverLetter: coverLetter,
		Status:      models.ApplicationPending,
	}
	e.apps = append(e.apps, fresh)
	job.Applicants = append(job.Applicants, actor.ID)

	result := fresh.Clone()
	ev := models.Event{
		Type:          models.EventApplicationSubmitted,
		JobID:         job.ID,
		JobTitle:      job.Title,
		RecruiterID:   job.RecruiterID,
		ApplicationID: fresh.ID,
		SeekerID:      actor.ID,
		SeekerName:    actor.Name,
		Status:        string(fresh.Status),
		OccurredAt:    fresh.AppliedAt,
	}
	e.mu.Unlock()

	e.log.Info("application submitted", map[string]interface{}{
		"applicationId": fresh.ID,
		"jobId":         jobID,
		"seekerId":      actor.ID,
	})
	e.publish(ctx, []models.Event{ev})
	return result, nil
}

// UpdateApplicationStatus sets the application's status, driven only by
// the recruiter owning the application's job (resolved transitively).
// Notes are overwritten only when the pointer is non-nil, so a
// present-but-empty value is preserved as distinct from absent. When the
// new status is accepted, the associated job is forced to filled within
// the same critical section: no caller can observe an accepted
// application against a still-open job.
func (e *Engine) UpdateApplicationStatus(ctx context.Context, actor *models.Actor, appID string, status models.ApplicationStatus, notes *string) (app *models.JobApplication, err error) {
	start := time.Now()
	defer func() { metrics.Observe("engine.update_application_status", start, err) }()

	if actor == nil {
		return nil, errors.NewNotAuthenticatedError("update_application_status")
	}
	if !actor.IsRecruiter() {
		return nil, errors.NewWrongRoleError(string(models.RoleRecruiter), string(actor.Role))
	}
	if _, ok := models.ParseApplicationStatus(string(status)); !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown application status %q", status))
	}

	if err = e.delay.Wait(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	target := e.findApplication(appID)
	if target == nil {
		e.mu.Unlock()
		return nil, errors.NewApplicationNotFoundError(appID)
	}
	job := e.findJob(target.JobID)
	if job == nil {
		e.mu.Unlock()
		return nil, errors.NewJobNotFoundError(target.JobID)
	}
	if job.RecruiterID != actor.ID {
		e.mu.Unlock()
		return nil, errors.NewForbiddenError("application", appID)
	}

	target.Status = status
	if notes != nil {
		n := *notes
		target.Notes = &n
	}

	occurredAt := now()
	events := []models.Event{{
		Type:          models.EventApplicationStatusChanged,
		JobID:         job.ID,
		JobTitle:      job.Title,
		RecruiterID:   job.RecruiterID,
		ApplicationID: target.ID,
		SeekerID:      target.SeekerID,
		Status:        string(status),
		OccurredAt:    occurredAt,
	}}

	if status == models.ApplicationAccepted && job.Status != models.JobFilled {
		job.Status = models.JobFilled
		events = append(events, models.Event{
			Type:        models.EventJobStatusChanged,
			JobID:       job.ID,
			JobTitle:    job.Title,
			RecruiterID: job.RecruiterID,
			Status:      string(models.JobFilled),
			OccurredAt:  occurredAt,
		})
	}

	result := target.Clone()
	e.mu.Unlock()

	e.log.Info("application status updated", map[string]interface{}{
		"applicationId": appID,
		"status":        status,
	})
	e.publish(ctx, events)
	return result, nil
}
