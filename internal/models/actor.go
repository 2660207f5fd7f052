package models

import "time"

// Role distinguishes the two kinds of marketplace actors.
type Role string

const (
	RoleSeeker    Role = "seeker"
	RoleRecruiter Role = "recruiter"
)

// ParseRole converts a raw string to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSeeker, RoleRecruiter:
		return Role(s), true
	}
	return "", false
}

// Skill is a single named skill on a seeker profile. Level is 1-5.
type Skill struct {
	Name         string `json:"name"`
	Level        int    `json:"level"`
	Endorsements int    `json:"endorsements"`
}

// Preferences captures what a seeker is willing to accept. The whole
// object is replaced on profile update, never merged key by key.
type Preferences struct {
	JobTypes   []string `json:"jobTypes"`
	Industries []string `json:"industries"`
	MinSalary  int      `json:"minSalary"`
	RemoteOnly bool     `json:"remoteOnly"`
}

// SeekerProfile holds the seeker-specific half of an actor.
type SeekerProfile struct {
	Skills      []Skill     `json:"skills"`
	Experience  string      `json:"experience"`
	Bio         string      `json:"bio"`
	Location    string      `json:"location"`
	Preferences Preferences `json:"preferences"`
	SkillScore  int         `json:"skillScore"`
}

// RecruiterProfile holds the recruiter-specific half of an actor.
type RecruiterProfile struct {
	Company            string `json:"company"`
	Position           string `json:"position"`
	CompanyDescription string `json:"companyDescription"`
	Industry           string `json:"industry"`
}

// Actor is an authenticated marketplace user. Exactly one of Seeker or
// Recruiter is set, matching Role. ID, Role and CreatedAt are immutable
// after creation.
type Actor struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Role      Role              `json:"role"`
	CreatedAt time.Time         `json:"createdAt"`
	Seeker    *SeekerProfile    `json:"seeker,omitempty"`
	Recruiter *RecruiterProfile `json:"recruiter,omitempty"`
}

// IsSeeker reports whether the actor is a job seeker with a seeker profile.
func (a *Actor) IsSeeker() bool {
	return a != nil && a.Role == RoleSeeker && a.Seeker != nil
}

// IsRecruiter reports whether the actor is a recruiter.
func (a *Actor) IsRecruiter() bool {
	return a != nil && a.Role == RoleRecruiter
}

// Clone returns a deep copy so callers cannot mutate store-owned state.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	cp := *a
	if a.Seeker != nil {
		sp := *a.Seeker
		sp.Skills = append([]Skill(nil), a.Seeker.Skills...)
		sp.Preferences.JobTypes = append([]string(nil), a.Seeker.Preferences.JobTypes...)
		sp.Preferences.Industries = append([]string(nil), a.Seeker.Preferences.Industries...)
		cp.Seeker = &sp
	}
	if a.Recruiter != nil {
		rp := *a.Recruiter
		cp.Recruiter = &rp
	}
	return &cp
}
