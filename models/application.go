package models

import (
	"database/sql"
	"time"
)

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusSelected    = "selected"
	StatusRejected    = "rejected"
)

// ValidStatus reports whether s is a known application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusSelected, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID                int       `json:"id"`
	JobID             int       `json:"job_id"`
	CandidateID       int       `json:"candidate_id"`
	CoverLetter       string    `json:"cover_letter"`
	Status            string    `json:"status"`
	AppliedAt         time.Time `json:"applied_at"`
	JobTitle          string    `json:"job_title"`
	CompanyName       string    `json:"company_name"`
	CandidateUsername string    `json:"candidate_username"`

	// Owner identity used for authorization checks and email dispatch,
	// not serialized.
	CandidateEmail  string `json:"-"`
	CandidateUserID int    `json:"-"`
	RecruiterUserID int    `json:"-"`
}

type ApplicationModel struct {
	DB *sql.DB
}

func NewApplicationModel(db *sql.DB) *ApplicationModel {
	return &ApplicationModel{DB: db}
}

const applicationColumns = `
	a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
	j.title, c.name, u.username, u.email, p.user_id, c.user_id`

const applicationJoins = `
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = j.company_id
	JOIN candidate_profiles p ON p.id = a.candidate_id
	JOIN users u ON u.id = p.user_id`

func scanApplication(scanner interface{ Scan(...interface{}) error }) (*Application, error) {
	app := &Application{}
	err := scanner.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status,
		&app.AppliedAt, &app.JobTitle, &app.CompanyName, &app.CandidateUsername,
		&app.CandidateEmail, &app.CandidateUserID, &app.RecruiterUserID,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (m *ApplicationModel) collect(rows *sql.Rows) ([]Application, error) {
	defer rows.Close()
	apps := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// Create inserts an application with status "applied". The unique
// (job_id, candidate_id) constraint rejects duplicate applications.
func (m *ApplicationModel) Create(jobID, candidateID int, coverLetter string) (*Application, error) {
	var id int
	query := `
		INSERT INTO applications (job_id, candidate_id, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, 'applied', $4)
		RETURNING id
	`
	err := m.DB.QueryRow(query, jobID, candidateID, coverLetter, time.Now()).Scan(&id)
	if err != nil {
		return nil, err
	}
	return m.GetByID(id)
}

func (m *ApplicationModel) GetByID(id int) (*Application, error) {
	query := `SELECT` + applicationColumns + applicationJoins + ` WHERE a.id = $1`
	return scanApplication(m.DB.QueryRow(query, id))
}

func (m *ApplicationModel) ListByCandidate(candidateID int) ([]Application, error) {
	query := `SELECT` + applicationColumns + applicationJoins + `
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

func (m *ApplicationModel) ListByJob(jobID int) ([]Application, error) {
	query := `SELECT` + applicationColumns + applicationJoins + `
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := m.DB.Query(query, jobID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListByRecruiter returns applications for jobs owned by the recruiter's
// company, with optional candidate search, job title and status filters.
func (m *ApplicationModel) ListByRecruiter(recruiterUserID int, search, jobTitle, status string) ([]Application, error) {
	query := `SELECT` + applicationColumns + applicationJoins + `
		WHERE c.user_id = $1
		  AND ($2 = '' OR u.username ILIKE '%' || $2 || '%' OR u.email ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR j.title ILIKE '%' || $3 || '%')
		  AND ($4 = '' OR a.status = $4)
		ORDER BY a.applied_at DESC`
	rows, err := m.DB.Query(query, recruiterUserID, search, jobTitle, status)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

func (m *ApplicationModel) UpdateStatus(id int, status string) error {
	_, err := m.DB.Exec(`UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	return err
}
