// Package engine owns the job catalog and application records, guarding
// every mutation with role/ownership checks before any state is written.
// Actors are passed in explicitly; the engine holds no session state.
package engine

import (
	"context"
	"sync"
	"time"

	"gigmatch/internal/common/latency"
	"gigmatch/internal/common/logger"
	"gigmatch/internal/common/metrics"
	"gigmatch/internal/models"
)

// EventPublisher receives domain events after a successful mutation. The
// engine never builds notification records itself.
type EventPublisher interface {
	Publish(ctx context.Context, ev models.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.Event) {}

// Engine is the job/application service. All mutations take the lock;
// the simulated latency sleeps outside the critical section, so a guard
// check always observes the state left by whichever racing call finished
// first.
type Engine struct {
	mu     sync.Mutex
	jobs   []*models.Job
	apps   []*models.JobApplication
	delay  latency.Strategy
	events EventPublisher
	log    logger.Logger
}

// New seeds the engine with the given catalog. Slices are cloned;
// insertion order is preserved and significant (stable-sort ties in
// recommendations keep it).
func New(jobs []*models.Job, apps []*models.JobApplication, delay latency.Strategy, events EventPublisher, log logger.Logger) *Engine {
	seededJobs := make([]*models.Job, 0, len(jobs))
	for _, j := range jobs {
		seededJobs = append(seededJobs, j.Clone())
	}
	seededApps := make([]*models.JobApplication, 0, len(apps))
	for _, a := range apps {
		seededApps = append(seededApps, a.Clone())
	}
	if delay == nil {
		delay = latency.None()
	}
	if events == nil {
		events = nopPublisher{}
	}
	return &Engine{
		jobs:   seededJobs,
		apps:   seededApps,
		delay:  delay,
		events: events,
		log:    log.WithFields(map[string]interface{}{"component": "engine"}),
	}
}

// JobByID returns a copy of the job, if present.
func (e *Engine) JobByID(id string) (*models.Job, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if j := e.findJob(id); j != nil {
		return j.Clone(), true
	}
	return nil, false
}

// ApplicationByID returns a copy of the application, if present.
func (e *Engine) ApplicationByID(id string) (*models.JobApplication, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a := e.findApplication(id); a != nil {
		return a.Clone(), true
	}
	return nil, false
}

// JobsByRecruiter returns the recruiter's jobs in insertion order.
func (e *Engine) JobsByRecruiter(recruiterID string) []*models.Job {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := []*models.Job{}
	for _, j := range e.jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, j.Clone())
		}
	}
	return out
}

// ApplicationsByJob returns the job's applications in insertion order.
func (e *Engine) ApplicationsByJob(jobID string) []*models.JobApplication {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := []*models.JobApplication{}
	for _, a := range e.apps {
		if a.JobID == jobID {
			out = append(out, a.Clone())
		}
	}
	return out
}

// ApplicationsBySeeker returns the seeker's applications in insertion order.
func (e *Engine) ApplicationsBySeeker(seekerID string) []*models.JobApplication {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := []*models.JobApplication{}
	for _, a := range e.apps {
		if a.SeekerID == seekerID {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (e *Engine) findJob(id string) *models.Job {
	for _, j := range e.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (e *Engine) findApplication(id string) *models.JobApplication {
	for _, a := range e.apps {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (e *Engine) publish(ctx context.Context, events []models.Event) {
	for _, ev := range events {
		metrics.EventsPublished.WithLabelValues(string(ev.Type)).Inc()
		e.events.Publish(ctx, ev)
	}
}

func now() time.Time {
	return time.Now().UTC()
}
