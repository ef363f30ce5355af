package models

import (
	"database/sql"
	"time"
)

// JobAlert is a standing filter a candidate defines; matching jobs
// produce JobAlertNotification rows at job-creation time.
type JobAlert struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidate_id"`
	Keywords    string    `json:"keywords"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobAlertNotification struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"-"`
	JobID       int       `json:"job_id"`
	AlertID     *int      `json:"-"`
	JobTitle    string    `json:"job_title"`
	CompanyName string    `json:"company_name"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobAlertModel struct {
	DB *sql.DB
}

func NewJobAlertModel(db *sql.DB) *JobAlertModel {
	return &JobAlertModel{DB: db}
}

func (m *JobAlertModel) Create(candidateID int, keywords, location, jobType string, isActive bool) (*JobAlert, error) {
	alert := &JobAlert{}
	query := `
		INSERT INTO job_alerts (candidate_id, keywords, location, job_type, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, candidate_id, keywords, location, job_type, is_active, created_at
	`
	err := m.DB.QueryRow(query, candidateID, keywords, location, jobType, isActive, time.Now()).Scan(
		&alert.ID, &alert.CandidateID, &alert.Keywords, &alert.Location, &alert.JobType,
		&alert.IsActive, &alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (m *JobAlertModel) collect(rows *sql.Rows) ([]JobAlert, error) {
	defer rows.Close()
	alerts := []JobAlert{}
	for rows.Next() {
		var a JobAlert
		err := rows.Scan(&a.ID, &a.CandidateID, &a.Keywords, &a.Location, &a.JobType, &a.IsActive, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (m *JobAlertModel) ListByCandidate(candidateID int) ([]JobAlert, error) {
	query := `
		SELECT id, candidate_id, keywords, location, job_type, is_active, created_at
		FROM job_alerts WHERE candidate_id = $1 ORDER BY created_at DESC
	`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListActive returns every active alert across all candidates, for
// matching against a newly created job.
func (m *JobAlertModel) ListActive() ([]JobAlert, error) {
	query := `
		SELECT id, candidate_id, keywords, location, job_type, is_active, created_at
		FROM job_alerts WHERE is_active = TRUE
	`
	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// GetForCandidate fetches an alert only when it belongs to the candidate.
func (m *JobAlertModel) GetForCandidate(id, candidateID int) (*JobAlert, error) {
	alert := &JobAlert{}
	query := `
		SELECT id, candidate_id, keywords, location, job_type, is_active, created_at
		FROM job_alerts WHERE id = $1 AND candidate_id = $2
	`
	err := m.DB.QueryRow(query, id, candidateID).Scan(
		&alert.ID, &alert.CandidateID, &alert.Keywords, &alert.Location, &alert.JobType,
		&alert.IsActive, &alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (m *JobAlertModel) Update(id int, keywords, location, jobType string, isActive bool) error {
	query := `
		UPDATE job_alerts SET keywords = $1, location = $2, job_type = $3, is_active = $4
		WHERE id = $5
	`
	_, err := m.DB.Exec(query, keywords, location, jobType, isActive, id)
	return err
}

func (m *JobAlertModel) Delete(id int) error {
	_, err := m.DB.Exec(`DELETE FROM job_alerts WHERE id = $1`, id)
	return err
}

// BulkCreateNotifications inserts one notification per matched alert.
func (m *JobAlertModel) BulkCreateNotifications(notifications []JobAlertNotification) error {
	if len(notifications) == 0 {
		return nil
	}
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO job_alert_notifications (candidate_id, job_id, alert_id, created_at)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, n := range notifications {
		var alertID sql.NullInt64
		if n.AlertID != nil {
			alertID = sql.NullInt64{Int64: int64(*n.AlertID), Valid: true}
		}
		if _, err := stmt.Exec(n.CandidateID, n.JobID, alertID, now); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (m *JobAlertModel) ListNotifications(candidateID int) ([]JobAlertNotification, error) {
	query := `
		SELECT n.id, n.candidate_id, n.job_id, j.title, c.name, n.is_read, n.created_at
		FROM job_alert_notifications n
		JOIN jobs j ON j.id = n.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE n.candidate_id = $1
		ORDER BY n.created_at DESC
	`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []JobAlertNotification{}
	for rows.Next() {
		var n JobAlertNotification
		err := rows.Scan(&n.ID, &n.CandidateID, &n.JobID, &n.JobTitle, &n.CompanyName, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead flips is_read for a notification owned by the candidate.
func (m *JobAlertModel) MarkNotificationRead(id, candidateID int) error {
	result, err := m.DB.Exec(
		`UPDATE job_alert_notifications SET is_read = TRUE WHERE id = $1 AND candidate_id = $2`,
		id, candidateID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
