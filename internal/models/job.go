package models

import "time"

// JobStatus is the lifecycle state of a posting.
//
// Valid status graph:
//
//	open ──► filled (recruiter action or application accepted)
//	open ──► closed (recruiter action)
//
// filled and closed are terminal states.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobFilled JobStatus = "filled"
	JobClosed JobStatus = "closed"
)

// ParseJobStatus converts a raw string to a JobStatus.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(s) {
	case JobOpen, JobFilled, JobClosed:
		return JobStatus(s), true
	}
	return "", false
}

// jobTransitions lists every allowed (from → to) pair. UpdateJobStatus
// does not consult this table (status reassignment is unrestricted
// beyond ownership); it exists so a stricter policy can be swapped in
// at one place.
var jobTransitions = map[JobStatus][]JobStatus{
	JobOpen: {JobFilled, JobClosed},
}

// JobTransitionAllowed reports whether from → to is part of the
// documented lifecycle.
func JobTransitionAllowed(from, to JobStatus) bool {
	for _, s := range jobTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// JobType is the engagement type of a posting.
type JobType string

const (
	JobTypePartTime   JobType = "part-time"
	JobTypeTemporary  JobType = "temporary"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// ParseJobType converts a raw string to a JobType.
func ParseJobType(s string) (JobType, bool) {
	switch JobType(s) {
	case JobTypePartTime, JobTypeTemporary, JobTypeContract, JobTypeInternship:
		return JobType(s), true
	}
	return "", false
}

// SalaryPeriod is the unit the salary range is quoted in.
type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodDaily   SalaryPeriod = "daily"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
)

// ParseSalaryPeriod converts a raw string to a SalaryPeriod.
func ParseSalaryPeriod(s string) (SalaryPeriod, bool) {
	switch SalaryPeriod(s) {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly:
		return SalaryPeriod(s), true
	}
	return "", false
}

// Salary is a compensation range. Min must be >= 0 and Max >= Min.
type Salary struct {
	Min    int          `json:"min"`
	Max    int          `json:"max"`
	Period SalaryPeriod `json:"period"`
}

// Job is a posting in the catalog. RecruiterID is immutable after
// creation; only that recruiter may mutate the job. Applicants is
// append-only from the engine's perspective. MatchScore is ephemeral,
// computed per seeker and never persisted with the job.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	RecruiterID  string    `json:"recruiterId"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       Salary    `json:"salary"`
	Type         JobType   `json:"type"`
	Remote       bool      `json:"remote"`
	PostedAt     time.Time `json:"postedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Status       JobStatus `json:"status"`
	Applicants   []string  `json:"applicants"`
	MatchScore   int       `json:"matchScore,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate engine-owned state.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	cp := *j
	if j.Requirements != nil {
		cp.Requirements = append([]string{}, j.Requirements...)
	}
	if j.Applicants != nil {
		cp.Applicants = append([]string{}, j.Applicants...)
	}
	return &cp
}
