package models

import (
	"database/sql"
	"time"
)

type SavedJob struct {
	ID          int       `json:"id"`
	CandidateID int       `json:"candidate_id"`
	JobID       int       `json:"job_id"`
	SavedAt     time.Time `json:"saved_at"`
	Job         *Job      `json:"job,omitempty"`
}

type SavedJobModel struct {
	DB *sql.DB
}

func NewSavedJobModel(db *sql.DB) *SavedJobModel {
	return &SavedJobModel{DB: db}
}

// Save stores the (candidate, job) pair. Returns false when it was
// already saved; the operation is idempotent.
func (m *SavedJobModel) Save(candidateID, jobID int) (bool, error) {
	query := `
		INSERT INTO saved_jobs (candidate_id, job_id, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (candidate_id, job_id) DO NOTHING
	`
	result, err := m.DB.Exec(query, candidateID, jobID, time.Now())
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (m *SavedJobModel) Delete(candidateID, jobID int) error {
	_, err := m.DB.Exec(`DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	return err
}

func (m *SavedJobModel) ListByCandidate(candidateID int) ([]SavedJob, error) {
	query := `
		SELECT s.id, s.candidate_id, s.job_id, s.saved_at,` + jobColumns + `
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE s.candidate_id = $1
		ORDER BY s.saved_at DESC
	`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := []SavedJob{}
	for rows.Next() {
		var s SavedJob
		job := &Job{}
		var salaryMin, salaryMax sql.NullFloat64
		err := rows.Scan(
			&s.ID, &s.CandidateID, &s.JobID, &s.SavedAt,
			&job.ID, &job.CompanyID, &job.CompanyName, &job.Title, &job.Description,
			&job.Location, &job.JobType, &salaryMin, &salaryMax, &job.Qualification,
			&job.Batch, &job.Skills, &job.ExternalLink, &job.IsActive, &job.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if salaryMin.Valid {
			job.SalaryMin = &salaryMin.Float64
		}
		if salaryMax.Valid {
			job.SalaryMax = &salaryMax.Float64
		}
		s.Job = job
		saved = append(saved, s)
	}
	return saved, rows.Err()
}
