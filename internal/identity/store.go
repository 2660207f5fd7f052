// Package identity holds the actor directory and the current session.
// Authentication is an exact email+role lookup with no password
// verification, preserving the documented demo behavior; this is not
// production-grade credential handling.
package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gigmatch/internal/common/errors"
	"gigmatch/internal/common/latency"
	"gigmatch/internal/common/logger"
	"gigmatch/internal/common/metrics"
	"gigmatch/internal/models"
)

// RegisterInput carries the caller-supplied fields for a new account.
// Role-specific fields are defaulted, not taken from the caller.
type RegisterInput struct {
	Name  string
	Email string
}

// ProfileUpdate is a partial update; nil fields are left untouched.
// Preferences is replaced as a whole object, never merged per key.
type ProfileUpdate struct {
	Name *string

	// Seeker fields.
	Skills      *[]models.Skill
	Experience  *string
	Bio         *string
	Location    *string
	Preferences *models.Preferences

	// Recruiter fields.
	Company            *string
	Position           *string
	CompanyDescription *string
	Industry           *string
}

// Store is a stateful identity service. Multiple independent stores may
// coexist, each with its own session; nothing is process-global.
type Store struct {
	mu        sync.Mutex
	directory []*models.Actor
	current   *models.Actor
	sessions  SessionStore
	delay     latency.Strategy
	log       logger.Logger
}

// NewStore seeds the directory with the given actors. The session store
// must not be nil; use NewMemorySessionStore for tests.
func NewStore(directory []*models.Actor, sessions SessionStore, delay latency.Strategy, log logger.Logger) *Store {
	seeded := make([]*models.Actor, 0, len(directory))
	for _, a := range directory {
		seeded = append(seeded, a.Clone())
	}
	if delay == nil {
		delay = latency.None()
	}
	return &Store{
		directory: seeded,
		sessions:  sessions,
		delay:     delay,
		log:       log.WithFields(map[string]interface{}{"component": "identity"}),
	}
}

// Restore loads a previously persisted session snapshot and reinstates
// it as the current actor. Returns nil without error when no session
// exists.
func (s *Store) Restore(ctx context.Context) (*models.Actor, error) {
	actor, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, errors.NewSessionStoreError(err)
	}
	if actor == nil {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-point at the directory entry when the actor is known, so later
	// profile updates keep the directory and session in sync.
	if existing := s.findByID(actor.ID); existing != nil {
		s.current = existing
	} else {
		s.directory = append(s.directory, actor)
		s.current = actor
	}
	s.log.Info("session restored", map[string]interface{}{
		"actorId": actor.ID,
		"role":    actor.Role,
	})
	return s.current.Clone(), nil
}

// Authenticate looks up an actor of the given role by exact email match
// and makes it the current actor. No password is checked.
func (s *Store) Authenticate(ctx context.Context, email string, role models.Role) (actor *models.Actor, err error) {
	start := time.Now()
	defer func() { metrics.Observe("identity.authenticate", start, err) }()

	if err = s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found *models.Actor
	for _, a := range s.directory {
		if a.Role == role && a.Email == email {
			found = a
			break
		}
	}
	if found == nil {
		s.log.Warn("login failed", map[string]interface{}{"email": email, "role": role})
		return nil, errors.NewInvalidCredentialsError()
	}

	// Persist first; a failed save must not leave anyone signed in.
	if err = s.persist(ctx, found); err != nil {
		return nil, err
	}
	s.current = found
	s.log.Info("login successful", map[string]interface{}{"actorId": found.ID, "role": role})
	return found.Clone(), nil
}

// Register creates a fresh actor of the given role, rejects emails held
// by any existing actor of either role, and makes the new actor current.
func (s *Store) Register(ctx context.Context, input RegisterInput, role models.Role) (actor *models.Actor, err error) {
	start := time.Now()
	defer func() { metrics.Observe("identity.register", start, err) }()

	if strings.TrimSpace(input.Email) == "" {
		return nil, errors.NewValidationError("email must not be empty")
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}

	if err = s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.directory {
		if a.Email == input.Email {
			return nil, errors.NewEmailTakenError(input.Email)
		}
	}

	now := time.Now().UTC()
	fresh := &models.Actor{
		ID:        fmt.Sprintf("%s-%d", role, now.UnixMilli()),
		Email:     input.Email,
		Name:      input.Name,
		Role:      role,
		CreatedAt: now,
	}
	switch role {
	case models.RoleSeeker:
		fresh.Seeker = &models.SeekerProfile{
			Skills: []models.Skill{},
			Preferences: models.Preferences{
				JobTypes:   []string{},
				Industries: []string{},
			},
			SkillScore: 50,
		}
	case models.RoleRecruiter:
		fresh.Recruiter = &models.RecruiterProfile{}
	}

	// Persist first; the directory only learns about the account once the
	// snapshot is safely stored, so a failed save never burns the email.
	if err = s.persist(ctx, fresh); err != nil {
		return nil, err
	}
	s.directory = append(s.directory, fresh)
	s.current = fresh
	s.log.Info("account created", map[string]interface{}{"actorId": fresh.ID, "role": role})
	return fresh.Clone(), nil
}

// UpdateProfile merges the supplied fields into the current actor and
// persists the new snapshot. The merge is shallow: Preferences is
// swapped wholesale.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) (actor *models.Actor, err error) {
	start := time.Now()
	defer func() { metrics.Observe("identity.update_profile", start, err) }()

	if err = s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, errors.NewNotAuthenticatedError("update_profile")
	}

	// Merge into a copy and swap it in only once the snapshot is saved,
	// so a failed save leaves the profile exactly as it was.
	merged := s.current.Clone()
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if merged.Seeker != nil {
		if update.Skills != nil {
			merged.Seeker.Skills = append([]models.Skill(nil), (*update.Skills)...)
		}
		if update.Experience != nil {
			merged.Seeker.Experience = *update.Experience
		}
		if update.Bio != nil {
			merged.Seeker.Bio = *update.Bio
		}
		if update.Location != nil {
			merged.Seeker.Location = *update.Location
		}
		if update.Preferences != nil {
			merged.Seeker.Preferences = *update.Preferences
		}
	}
	if merged.Recruiter != nil {
		if update.Company != nil {
			merged.Recruiter.Company = *update.Company
		}
		if update.Position != nil {
			merged.Recruiter.Position = *update.Position
		}
		if update.CompanyDescription != nil {
			merged.Recruiter.CompanyDescription = *update.CompanyDescription
		}
		if update.Industry != nil {
			merged.Recruiter.Industry = *update.Industry
		}
	}

	if err = s.persist(ctx, merged); err != nil {
		return nil, err
	}
	*s.current = *merged
	s.log.Info("profile updated", map[string]interface{}{"actorId": s.current.ID})
	return s.current.Clone(), nil
}

// Logout clears the current actor and deletes the persisted session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.log.Info("logged out", map[string]interface{}{"actorId": s.current.ID})
	}
	s.current = nil
	if err := s.sessions.Delete(ctx); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}

// Current returns the current actor, or nil when unauthenticated.
func (s *Store) Current() *models.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *Store) findByID(id string) *models.Actor {
	for _, a := range s.directory {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// persist writes the actor snapshot. Mutations call it before touching
// in-memory state so a failed save leaves the store untouched.
func (s *Store) persist(ctx context.Context, actor *models.Actor) error {
	if err := s.sessions.Save(ctx, actor); err != nil {
		return errors.NewSessionStoreError(err)
	}
	return nil
}
