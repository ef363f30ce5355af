package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobportal/models"
)

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"react", "node"}, SplitTerms("React, Node"))
	assert.Equal(t, []string{"go", "sql"}, SplitTerms("Go\nSQL"))
	assert.Equal(t, []string{"python"}, SplitTerms("  Python  "))
	assert.Empty(t, SplitTerms(""))
	assert.Empty(t, SplitTerms(" , ,\n"))
}

func TestAlertMatches_KeywordAndLocation(t *testing.T) {
	alert := models.JobAlert{Keywords: "React, Node", Location: "Remote"}
	job := models.Job{
		Title:       "Senior React Engineer",
		Description: "Frontend work on a large SPA",
		Location:    "Remote, India",
	}

	assert.True(t, AlertMatches(alert, job))
}

func TestAlertMatches_NoKeywordHit(t *testing.T) {
	alert := models.JobAlert{Keywords: "React, Node"}
	job := models.Job{
		Title:       "Java Backend Developer",
		Description: "Spring microservices",
		Location:    "Remote",
	}

	assert.False(t, AlertMatches(alert, job))
}

func TestAlertMatches_KeywordInDescription(t *testing.T) {
	alert := models.JobAlert{Keywords: "kubernetes"}
	job := models.Job{
		Title:       "Platform Engineer",
		Description: "You will run our Kubernetes clusters",
	}

	assert.True(t, AlertMatches(alert, job))
}

func TestAlertMatches_LocationMismatch(t *testing.T) {
	alert := models.JobAlert{Keywords: "react", Location: "Berlin"}
	job := models.Job{Title: "React Developer", Location: "Remote, India"}

	assert.False(t, AlertMatches(alert, job))
}

func TestAlertMatches_JobTypeExact(t *testing.T) {
	job := models.Job{Title: "React Developer", JobType: "full-time"}

	assert.True(t, AlertMatches(models.JobAlert{JobType: "Full-Time"}, job))
	assert.False(t, AlertMatches(models.JobAlert{JobType: "part-time"}, job))
}

func TestAlertMatches_NoFiltersMatchesEverything(t *testing.T) {
	assert.True(t, AlertMatches(models.JobAlert{}, models.Job{Title: "Anything"}))
}

func TestMatchAlerts(t *testing.T) {
	alerts := []models.JobAlert{
		{ID: 1, CandidateID: 10, Keywords: "react"},
		{ID: 2, CandidateID: 11, Keywords: "java"},
		{ID: 3, CandidateID: 12, Location: "remote"},
	}
	job := models.Job{ID: 7, Title: "React Engineer", Location: "Remote, India"}

	notifications := MatchAlerts(alerts, job)

	assert.Len(t, notifications, 2)
	assert.Equal(t, 10, notifications[0].CandidateID)
	assert.Equal(t, 7, notifications[0].JobID)
	assert.Equal(t, 1, *notifications[0].AlertID)
	assert.Equal(t, 12, notifications[1].CandidateID)
}

func TestRecommendJobs_NoSkills(t *testing.T) {
	jobs := []models.Job{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
		{ID: 3, Title: "C"},
	}

	result := RecommendJobs("", jobs, 2)

	// Without skills the newest jobs pass through unscored
	assert.Len(t, result, 2)
	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, 2, result[1].ID)
}

func TestRecommendJobs_ScoresBySkillOverlap(t *testing.T) {
	jobs := []models.Job{
		{ID: 1, Title: "React Developer", Description: "Frontend"},
		{ID: 2, Title: "React and Node Engineer", Description: "Fullstack with React and Node"},
		{ID: 3, Title: "Accountant", Description: "Bookkeeping"},
	}

	result := RecommendJobs("React, Node", jobs, 10)

	// Higher overlap ranks first; unrelated jobs are dropped
	assert.Len(t, result, 2)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 1, result[1].ID)
}

func TestRecommendJobs_TieBreaksByRecency(t *testing.T) {
	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now()
	jobs := []models.Job{
		{ID: 1, Title: "Go Developer", CreatedAt: older},
		{ID: 2, Title: "Go Engineer", CreatedAt: newer},
	}

	result := RecommendJobs("go", jobs, 10)

	assert.Len(t, result, 2)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 1, result[1].ID)
}

func TestRecommendJobs_Limit(t *testing.T) {
	jobs := []models.Job{}
	for i := 1; i <= 15; i++ {
		jobs = append(jobs, models.Job{ID: i, Title: "Go Developer"})
	}

	result := RecommendJobs("go", jobs, 10)

	assert.Len(t, result, 10)
}
