package services

import (
	"regexp"
	"sort"
	"strings"

	"jobportal/models"
)

var termSplitter = regexp.MustCompile(`[,\n]`)

// SplitTerms splits comma/newline-delimited text into lower-cased,
// trimmed, non-empty terms.
func SplitTerms(text string) []string {
	terms := []string{}
	for _, t := range termSplitter.Split(text, -1) {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// AlertMatches applies the three alert filters to a job:
// at least one keyword must appear in the title+description (an alert
// with no resolvable keywords passes this stage), the alert location
// must be a substring of the job location, and the job type must match
// exactly, case-insensitively. Empty location/type mean no constraint.
func AlertMatches(alert models.JobAlert, job models.Job) bool {
	text := strings.ToLower(job.Title + " " + job.Description)

	keywords := SplitTerms(alert.Keywords)
	if len(keywords) > 0 {
		matched := false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	alertLocation := strings.ToLower(strings.TrimSpace(alert.Location))
	if alertLocation != "" && !strings.Contains(strings.ToLower(job.Location), alertLocation) {
		return false
	}

	alertJobType := strings.ToLower(strings.TrimSpace(alert.JobType))
	if alertJobType != "" && alertJobType != strings.ToLower(job.JobType) {
		return false
	}

	return true
}

// MatchAlerts returns one notification per alert matching the job.
func MatchAlerts(alerts []models.JobAlert, job models.Job) []models.JobAlertNotification {
	notifications := []models.JobAlertNotification{}
	for _, alert := range alerts {
		if AlertMatches(alert, job) {
			alertID := alert.ID
			notifications = append(notifications, models.JobAlertNotification{
				CandidateID: alert.CandidateID,
				JobID:       job.ID,
				AlertID:     &alertID,
			})
		}
	}
	return notifications
}

// RecommendJobs builds the candidate's recommended shortlist. jobs must be
// active, not yet applied to, and ordered newest first. With no skills the
// newest limit jobs are returned as-is. Otherwise each job is scored by how
// many skill terms appear in its title+description; zero-score jobs are
// dropped, ties break by recency.
func RecommendJobs(skillsText string, jobs []models.Job, limit int) []models.Job {
	skills := SplitTerms(skillsText)

	if len(skills) == 0 {
		if len(jobs) > limit {
			jobs = jobs[:limit]
		}
		return jobs
	}

	type scoredJob struct {
		score int
		job   models.Job
	}
	scored := []scoredJob{}
	for _, job := range jobs {
		text := strings.ToLower(job.Title + " " + job.Description)
		score := 0
		for _, skill := range skills {
			if strings.Contains(text, skill) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredJob{score: score, job: job})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].job.CreatedAt.After(scored[j].job.CreatedAt)
	})

	result := []models.Job{}
	for i := 0; i < len(scored) && i < limit; i++ {
		result = append(result, scored[i].job)
	}
	return result
}
