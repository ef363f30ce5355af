package models

import (
	"database/sql"
	"time"
)

const (
	InterviewScheduled   = "scheduled"
	InterviewCompleted   = "completed"
	InterviewCancelled   = "cancelled"
	InterviewRescheduled = "rescheduled"
)

func ValidInterviewStatus(s string) bool {
	switch s {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled, InterviewRescheduled:
		return true
	}
	return false
}

func ValidInterviewMode(s string) bool {
	switch s {
	case "online", "onsite", "phone":
		return true
	}
	return false
}

type Interview struct {
	ID                int       `json:"id"`
	ApplicationID     int       `json:"application_id"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	Mode              string    `json:"mode"`
	Location          string    `json:"location"`
	Notes             string    `json:"notes"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	CandidateUsername string    `json:"candidate_username"`
	JobTitle          string    `json:"job_title"`
}

type InterviewModel struct {
	DB *sql.DB
}

func NewInterviewModel(db *sql.DB) *InterviewModel {
	return &InterviewModel{DB: db}
}

const interviewColumns = `
	i.id, i.application_id, i.scheduled_at, i.mode, i.location, i.notes,
	i.status, i.created_at, i.updated_at, u.username, j.title`

const interviewJoins = `
	FROM interviews i
	JOIN applications a ON a.id = i.application_id
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = j.company_id
	JOIN candidate_profiles p ON p.id = a.candidate_id
	JOIN users u ON u.id = p.user_id`

func scanInterview(scanner interface{ Scan(...interface{}) error }) (*Interview, error) {
	iv := &Interview{}
	err := scanner.Scan(
		&iv.ID, &iv.ApplicationID, &iv.ScheduledAt, &iv.Mode, &iv.Location,
		&iv.Notes, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt,
		&iv.CandidateUsername, &iv.JobTitle,
	)
	if err != nil {
		return nil, err
	}
	return iv, nil
}

func (m *InterviewModel) collect(rows *sql.Rows) ([]Interview, error) {
	defer rows.Close()
	interviews := []Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (m *InterviewModel) Create(applicationID int, scheduledAt time.Time, mode, location, notes string) (*Interview, error) {
	var id int
	query := `
		INSERT INTO interviews (application_id, scheduled_at, mode, location, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'scheduled', $6, $6)
		RETURNING id
	`
	err := m.DB.QueryRow(query, applicationID, scheduledAt, mode, location, notes, time.Now()).Scan(&id)
	if err != nil {
		return nil, err
	}
	return m.GetByID(id)
}

func (m *InterviewModel) GetByID(id int) (*Interview, error) {
	query := `SELECT` + interviewColumns + interviewJoins + ` WHERE i.id = $1`
	return scanInterview(m.DB.QueryRow(query, id))
}

func (m *InterviewModel) ListByApplication(applicationID int) ([]Interview, error) {
	query := `SELECT` + interviewColumns + interviewJoins + `
		WHERE i.application_id = $1
		ORDER BY i.scheduled_at DESC`
	rows, err := m.DB.Query(query, applicationID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListByRecruiter returns interviews for jobs owned by the recruiter's company.
func (m *InterviewModel) ListByRecruiter(recruiterUserID int) ([]Interview, error) {
	query := `SELECT` + interviewColumns + interviewJoins + `
		WHERE c.user_id = $1
		ORDER BY i.scheduled_at DESC`
	rows, err := m.DB.Query(query, recruiterUserID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListByCandidate returns the candidate's own interviews.
func (m *InterviewModel) ListByCandidate(candidateUserID int) ([]Interview, error) {
	query := `SELECT` + interviewColumns + interviewJoins + `
		WHERE p.user_id = $1
		ORDER BY i.scheduled_at DESC`
	rows, err := m.DB.Query(query, candidateUserID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

func (m *InterviewModel) Update(id int, scheduledAt time.Time, mode, location, notes, status string) (*Interview, error) {
	query := `
		UPDATE interviews
		SET scheduled_at = $1, mode = $2, location = $3, notes = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	if _, err := m.DB.Exec(query, scheduledAt, mode, location, notes, status, time.Now(), id); err != nil {
		return nil, err
	}
	return m.GetByID(id)
}

func (m *InterviewModel) Delete(id int) error {
	_, err := m.DB.Exec(`DELETE FROM interviews WHERE id = $1`, id)
	return err
}
