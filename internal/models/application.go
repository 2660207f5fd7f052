package models

import "time"

// ApplicationStatus is the lifecycle state of a job application.
//
//	pending ──► viewed
//	pending/viewed ──► accepted | rejected
//
// accepted and rejected are terminal. Nothing in the engine moves an
// application into viewed automatically; the value is reachable only by
// a recruiter setting it directly, and is kept for compatibility.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationViewed   ApplicationStatus = "viewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus converts a raw string to an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationViewed, ApplicationAccepted, ApplicationRejected:
		return ApplicationStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transitions leave the status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// JobApplication records a seeker applying to a job. At most one
// application exists per (JobID, SeekerID) pair. Notes is nil when never
// set; a present-but-empty value is preserved as distinct from absent.
type JobApplication struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	SeekerID    string            `json:"seekerId"`
	AppliedAt   time.Time         `json:"appliedAt"`
	CoverLetter string            `json:"coverLetter"`
	Status      ApplicationStatus `json:"status"`
	Notes       *string           `json:"notes,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate engine-owned state.
func (a *JobApplication) Clone() *JobApplication {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Notes != nil {
		n := *a.Notes
		cp.Notes = &n
	}
	return &cp
}
