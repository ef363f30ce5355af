package models

import (
	"database/sql"
	"time"
)

type Job struct {
	ID            int       `json:"id"`
	CompanyID     int       `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	JobType       string    `json:"job_type"`
	SalaryMin     *float64  `json:"salary_min"`
	SalaryMax     *float64  `json:"salary_max"`
	Qualification string    `json:"qualification"`
	Batch         string    `json:"batch"`
	Skills        string    `json:"skills"`
	ExternalLink  string    `json:"external_link"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type JobModel struct {
	DB *sql.DB
}

func NewJobModel(db *sql.DB) *JobModel {
	return &JobModel{DB: db}
}

const jobColumns = `
	j.id, j.company_id, c.name, j.title, j.description, j.location, j.job_type,
	j.salary_min, j.salary_max, j.qualification, j.batch, j.skills,
	j.external_link, j.is_active, j.created_at`

func scanJob(scanner interface{ Scan(...interface{}) error }) (*Job, error) {
	job := &Job{}
	var salaryMin, salaryMax sql.NullFloat64
	err := scanner.Scan(
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
	return job, nil
}

func (m *JobModel) collect(rows *sql.Rows) ([]Job, error) {
	defer rows.Close()
	jobs := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (m *JobModel) Create(companyID int, job *Job) (*Job, error) {
	var salaryMin, salaryMax sql.NullFloat64
	if job.SalaryMin != nil {
		salaryMin = sql.NullFloat64{Float64: *job.SalaryMin, Valid: true}
	}
	if job.SalaryMax != nil {
		salaryMax = sql.NullFloat64{Float64: *job.SalaryMax, Valid: true}
	}
	query := `
		INSERT INTO jobs (company_id, title, description, location, job_type,
			salary_min, salary_max, qualification, batch, skills, external_link, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	var id int
	err := m.DB.QueryRow(query, companyID, job.Title, job.Description, job.Location,
		job.JobType, salaryMin, salaryMax, job.Qualification, job.Batch, job.Skills,
		job.ExternalLink, job.IsActive, time.Now()).Scan(&id)
	if err != nil {
		return nil, err
	}
	return m.GetByID(id)
}

func (m *JobModel) GetByID(id int) (*Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`
	return scanJob(m.DB.QueryRow(query, id))
}

func (m *JobModel) Update(id int, job *Job) (*Job, error) {
	var salaryMin, salaryMax sql.NullFloat64
	if job.SalaryMin != nil {
		salaryMin = sql.NullFloat64{Float64: *job.SalaryMin, Valid: true}
	}
	if job.SalaryMax != nil {
		salaryMax = sql.NullFloat64{Float64: *job.SalaryMax, Valid: true}
	}
	query := `
		UPDATE jobs SET title = $1, description = $2, location = $3, job_type = $4,
			salary_min = $5, salary_max = $6, qualification = $7, batch = $8,
			skills = $9, external_link = $10, is_active = $11
		WHERE id = $12
	`
	_, err := m.DB.Exec(query, job.Title, job.Description, job.Location, job.JobType,
		salaryMin, salaryMax, job.Qualification, job.Batch, job.Skills,
		job.ExternalLink, job.IsActive, id)
	if err != nil {
		return nil, err
	}
	return m.GetByID(id)
}

func (m *JobModel) Delete(id int) error {
	_, err := m.DB.Exec(`DELETE FROM jobs WHERE id = $1`, id)
	return err
}

// ListActive returns active jobs, newest first, with optional keyword,
// location and job type filters.
func (m *JobModel) ListActive(search, location, jobType string) ([]Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.is_active = TRUE
		  AND ($1 = '' OR j.title ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%' OR c.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR j.location ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR j.job_type ILIKE '%' || $3 || '%')
		ORDER BY j.created_at DESC`
	rows, err := m.DB.Query(query, search, location, jobType)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListByCompany returns all jobs owned by a company, active or not.
func (m *JobModel) ListByCompany(companyID int) ([]Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC`
	rows, err := m.DB.Query(query, companyID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}

// ListActiveExcludingApplied returns active jobs the candidate has not applied to yet.
func (m *JobModel) ListActiveExcludingApplied(candidateID int) ([]Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.is_active = TRUE
		  AND j.id NOT IN (SELECT job_id FROM applications WHERE candidate_id = $1)
		ORDER BY j.created_at DESC`
	rows, err := m.DB.Query(query, candidateID)
	if err != nil {
		return nil, err
	}
	return m.collect(rows)
}
