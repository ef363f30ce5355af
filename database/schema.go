package database

import "database/sql"

// Migrate creates all tables if they do not exist yet.
func Migrate(db *sql.DB) error {
	schema := `
	-- Users table
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(10) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Companies table (one per recruiter)
	CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		website VARCHAR(255) DEFAULT '',
		industry VARCHAR(100) DEFAULT '',
		location VARCHAR(255) DEFAULT '',
		about TEXT DEFAULT '',
		company_size VARCHAR(50) DEFAULT '',
		founded_year INTEGER
	);

	-- Candidate profiles
	CREATE TABLE IF NOT EXISTS candidate_profiles (
		id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		full_name VARCHAR(255) DEFAULT '',
		phone_number VARCHAR(20) DEFAULT '',
		bio TEXT DEFAULT '',
		skills TEXT DEFAULT '',
		experience INTEGER DEFAULT 0,
		resume_key VARCHAR(255) DEFAULT '',
		resume_name VARCHAR(255) DEFAULT ''
	);

	-- Recruiter profiles (personal, separate from company)
	CREATE TABLE IF NOT EXISTS recruiter_profiles (
		id SERIAL PRIMARY KEY,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		full_name VARCHAR(255) DEFAULT '',
		phone_number VARCHAR(20) DEFAULT '',
		position VARCHAR(255) DEFAULT '',
		linkedin VARCHAR(255) DEFAULT '',
		bio TEXT DEFAULT ''
	);

	-- Jobs table
	CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		title VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(100) DEFAULT '',
		job_type VARCHAR(50) DEFAULT '',
		salary_min NUMERIC(10,2),
		salary_max NUMERIC(10,2),
		qualification VARCHAR(255) DEFAULT '',
		batch VARCHAR(50) DEFAULT '',
		skills TEXT DEFAULT '',
		external_link VARCHAR(255) DEFAULT '',
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Applications: one per (job, candidate)
	CREATE TABLE IF NOT EXISTS applications (
		id SERIAL PRIMARY KEY,
		job_id INTEGER NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		candidate_id INTEGER NOT NULL REFERENCES candidate_profiles(id) ON DELETE CASCADE,
		cover_letter TEXT DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'applied',
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (job_id, candidate_id)
	);

	-- Screening tests: one per application
	CREATE TABLE IF NOT EXISTS job_tests (
		id SERIAL PRIMARY KEY,
		application_id INTEGER UNIQUE NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		total_marks INTEGER NOT NULL DEFAULT 50,
		score INTEGER,
		passed BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		completed_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS job_test_questions (
		id SERIAL PRIMARY KEY,
		test_id INTEGER NOT NULL REFERENCES job_tests(id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		option_a VARCHAR(255) NOT NULL,
		option_b VARCHAR(255) NOT NULL,
		option_c VARCHAR(255) NOT NULL,
		option_d VARCHAR(255) NOT NULL,
		correct_option CHAR(1) NOT NULL
	);

	-- One answer per question per application, overwritable before completion
	CREATE TABLE IF NOT EXISTS job_test_answers (
		id SERIAL PRIMARY KEY,
		question_id INTEGER NOT NULL REFERENCES job_test_questions(id) ON DELETE CASCADE,
		application_id INTEGER NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		selected_option CHAR(1) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (question_id, application_id)
	);

	-- Saved jobs
	CREATE TABLE IF NOT EXISTS saved_jobs (
		id SERIAL PRIMARY KEY,
		candidate_id INTEGER NOT NULL REFERENCES candidate_profiles(id) ON DELETE CASCADE,
		job_id INTEGER NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (candidate_id, job_id)
	);

	-- Job alerts
	CREATE TABLE IF NOT EXISTS job_alerts (
		id SERIAL PRIMARY KEY,
		candidate_id INTEGER NOT NULL REFERENCES candidate_profiles(id) ON DELETE CASCADE,
		keywords VARCHAR(200) NOT NULL,
		location VARCHAR(100) DEFAULT '',
		job_type VARCHAR(50) DEFAULT '',
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS job_alert_notifications (
		id SERIAL PRIMARY KEY,
		candidate_id INTEGER NOT NULL REFERENCES candidate_profiles(id) ON DELETE CASCADE,
		job_id INTEGER NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		alert_id INTEGER REFERENCES job_alerts(id) ON DELETE SET NULL,
		is_read BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- In-app mirror of application status emails
	CREATE TABLE IF NOT EXISTS application_status_notifications (
		id SERIAL PRIMARY KEY,
		application_id INTEGER NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Interviews
	CREATE TABLE IF NOT EXISTS interviews (
		id SERIAL PRIMARY KEY,
		application_id INTEGER NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
		scheduled_at TIMESTAMP NOT NULL,
		mode VARCHAR(20) NOT NULL DEFAULT 'online',
		location VARCHAR(255) DEFAULT '',
		notes TEXT DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id);
	CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id);
	CREATE INDEX IF NOT EXISTS idx_applications_candidate ON applications(candidate_id);
	CREATE INDEX IF NOT EXISTS idx_alert_notifications_candidate ON job_alert_notifications(candidate_id);
	CREATE INDEX IF NOT EXISTS idx_status_notifications_application ON application_status_notifications(application_id);
	CREATE INDEX IF NOT EXISTS idx_interviews_application ON interviews(application_id);
	`

	_, err := db.Exec(schema)
	return err
}
