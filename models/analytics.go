package models

import (
	"database/sql"
	"time"
)

// RecruiterAnalytics aggregates job and application stats for one recruiter.
type RecruiterAnalytics struct {
	TotalJobs             int             `json:"total_jobs"`
	ActiveJobs            int             `json:"active_jobs"`
	TotalApplications     int             `json:"total_applications"`
	ApplicationsToday     int             `json:"applications_today"`
	ApplicationsLast7Days int             `json:"applications_last_7_days"`
	ApplicationsByStatus  map[string]int  `json:"applications_by_status"`
	ApplicationsPerJob    []JobAppsCount  `json:"applications_per_job"`
}

type JobAppsCount struct {
	JobID             int    `json:"job_id"`
	JobTitle          string `json:"job_title"`
	ApplicationsCount int    `json:"applications_count"`
}

type AnalyticsModel struct {
	DB *sql.DB
}

func NewAnalyticsModel(db *sql.DB) *AnalyticsModel {
	return &AnalyticsModel{DB: db}
}

func (m *AnalyticsModel) ForRecruiter(recruiterUserID int) (*RecruiterAnalytics, error) {
	analytics := &RecruiterAnalytics{
		ApplicationsByStatus: map[string]int{},
		ApplicationsPerJob:   []JobAppsCount{},
	}

	err := m.DB.QueryRow(`
		SELECT COUNT(*), COUNT(*) FILTER (WHERE j.is_active)
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE c.user_id = $1
	`, recruiterUserID).Scan(&analytics.TotalJobs, &analytics.ActiveJobs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last7Days := now.AddDate(0, 0, -7)

	err = m.DB.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE a.applied_at >= $2),
		       COUNT(*) FILTER (WHERE a.applied_at >= $3)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE c.user_id = $1
	`, recruiterUserID, startOfToday, last7Days).Scan(
		&analytics.TotalApplications,
		&analytics.ApplicationsToday,
		&analytics.ApplicationsLast7Days,
	)
	if err != nil {
		return nil, err
	}

	rows, err := m.DB.Query(`
		SELECT a.status, COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE c.user_id = $1
		GROUP BY a.status
	`, recruiterUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		analytics.ApplicationsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	perJobRows, err := m.DB.Query(`
		SELECT j.id, j.title, COUNT(a.id)
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE c.user_id = $1
		GROUP BY j.id, j.title
		ORDER BY COUNT(a.id) DESC
	`, recruiterUserID)
	if err != nil {
		return nil, err
	}
	defer perJobRows.Close()
	for perJobRows.Next() {
		var row JobAppsCount
		if err := perJobRows.Scan(&row.JobID, &row.JobTitle, &row.ApplicationsCount); err != nil {
			return nil, err
		}
		analytics.ApplicationsPerJob = append(analytics.ApplicationsPerJob, row)
	}
	return analytics, perJobRows.Err()
}
