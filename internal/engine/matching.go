package engine

import (
	"math"
	"sort"
	"strings"

	"gigmatch/internal/models"
)

// Scoring weights. Skill overlap carries half the score; the three
// preference checks split the rest.
const (
	skillWeight   = 50.0
	jobTypeWeight = 20.0
	salaryWeight  = 15.0
	remoteWeight  = 15.0
)

// MatchScore ranks a job's fit for a seeker on a 0-100 scale.
//
//   - skill overlap: fraction of requirements containing any of the
//     seeker's skill names as a case-insensitive substring, weighted 50.
//     A job with no requirements contributes 0 here.
//   - job type in the seeker's preferred types: +20.
//   - salary minimum at or above the seeker's floor: +15.
//   - remote clause: +15 when the remote preference matches the job or
//     the seeker has no remote-only restriction. Note this grants the
//     points to every seeker with RemoteOnly unset.
func MatchScore(job *models.Job, seeker *models.SeekerProfile) int {
	score := 0.0

	if len(job.Requirements) > 0 {
		matched := 0
		for _, req := range job.Requirements {
			lowerReq := strings.ToLower(req)
			for _, skill := range seeker.Skills {
				if strings.Contains(lowerReq, strings.ToLower(skill.Name)) {
					matched++
					break
				}
			}
		}
		score += float64(matched) / float64(len(job.Requirements)) * skillWeight
	}

	for _, t := range seeker.Preferences.JobTypes {
		if t == string(job.Type) {
			score += jobTypeWeight
			break
		}
	}

	if job.Salary.Min >= seeker.Preferences.MinSalary {
		score += salaryWeight
	}

	if seeker.Preferences.RemoteOnly == job.Remote || !seeker.Preferences.RemoteOnly {
		score += remoteWeight
	}

	return int(math.Round(math.Min(score, 100)))
}

// RecommendedJobsFor scores every open job against the seeker and
// returns them sorted descending by score. The sort is stable: ties keep
// catalog insertion order. Each returned job carries its ephemeral
// MatchScore; the catalog itself is never annotated.
func (e *Engine) RecommendedJobsFor(actor *models.Actor) []*models.Job {
	if !actor.IsSeeker() {
		return nil
	}

	e.mu.Lock()
	scored := []*models.Job{}
	for _, j := range e.jobs {
		if j.Status != models.JobOpen {
			continue
		}
		cp := j.Clone()
		cp.MatchScore = MatchScore(j, actor.Seeker)
		scored = append(scored, cp)
	}
	e.mu.Unlock()

	sort.SliceStable(scored, func(i, k int) bool {
		return scored[i].MatchScore > scored[k].MatchScore
	})
	return scored
}
