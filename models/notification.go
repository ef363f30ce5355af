package models

import (
	"database/sql"
	"time"
)

// ApplicationStatusNotification mirrors a status-change email for
// in-app display.
type ApplicationStatusNotification struct {
	ID            int       `json:"id"`
	ApplicationID int       `json:"application_id"`
	JobID         int       `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	CompanyName   string    `json:"company_name"`
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

type StatusNotificationModel struct {
	DB *sql.DB
}

func NewStatusNotificationModel(db *sql.DB) *StatusNotificationModel {
	return &StatusNotificationModel{DB: db}
}

func (m *StatusNotificationModel) Create(applicationID int, status, message string) error {
	query := `
		INSERT INTO application_status_notifications (application_id, status, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := m.DB.Exec(query, applicationID, status, message, time.Now())
	return err
}

func (m *StatusNotificationModel) ListByCandidate(candidateID int) ([]ApplicationStatusNotification, error) {
	query := `
		SELECT n.id, n.application_id, j.id, j.title, c.name, n.status, n.message, n.is_read, n.created_at
		FROM application_status_notifications n
		JOIN applications a ON a.id = n.application_id
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.candidate_id = $1
		ORDER BY n.created_at DESC
	`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []ApplicationStatusNotification{}
	for rows.Next() {
		var n ApplicationStatusNotification
		err := rows.Scan(&n.ID, &n.ApplicationID, &n.JobID, &n.JobTitle, &n.CompanyName,
			&n.Status, &n.Message, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flips is_read for a notification belonging to the candidate.
func (m *StatusNotificationModel) MarkRead(id, candidateID int) error {
	result, err := m.DB.Exec(`
		UPDATE application_status_notifications n
		SET is_read = TRUE
		FROM applications a
		WHERE n.id = $1 AND a.id = n.application_id AND a.candidate_id = $2
	`, id, candidateID)
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
