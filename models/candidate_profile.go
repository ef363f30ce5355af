package models

import (
	"database/sql"
)

type CandidateProfile struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	Experience  int    `json:"experience"`
	ResumeKey   string `json:"-"`
	ResumeName  string `json:"resume_name,omitempty"`
}

type CandidateProfileModel struct {
	DB *sql.DB
}

func NewCandidateProfileModel(db *sql.DB) *CandidateProfileModel {
	return &CandidateProfileModel{DB: db}
}

func (m *CandidateProfileModel) scanRow(row *sql.Row) (*CandidateProfile, error) {
	p := &CandidateProfile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Username, &p.Email, &p.FullName, &p.PhoneNumber,
		&p.Bio, &p.Skills, &p.Experience, &p.ResumeKey, &p.ResumeName,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m *CandidateProfileModel) GetByUserID(userID int) (*CandidateProfile, error) {
	query := `
		SELECT p.id, p.user_id, u.username, u.email, p.full_name, p.phone_number,
		       p.bio, p.skills, p.experience, p.resume_key, p.resume_name
		FROM candidate_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	return m.scanRow(m.DB.QueryRow(query, userID))
}

func (m *CandidateProfileModel) GetByID(id int) (*CandidateProfile, error) {
	query := `
		SELECT p.id, p.user_id, u.username, u.email, p.full_name, p.phone_number,
		       p.bio, p.skills, p.experience, p.resume_key, p.resume_name
		FROM candidate_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`
	return m.scanRow(m.DB.QueryRow(query, id))
}

// GetOrCreate returns the candidate profile for a user, creating an empty one on demand.
func (m *CandidateProfileModel) GetOrCreate(userID int) (*CandidateProfile, error) {
	profile, err := m.GetByUserID(userID)
	if err == sql.ErrNoRows {
		query := `INSERT INTO candidate_profiles (user_id) VALUES ($1)`
		if _, err := m.DB.Exec(query, userID); err != nil {
			return nil, err
		}
		return m.GetByUserID(userID)
	}
	return profile, err
}

func (m *CandidateProfileModel) Update(userID int, fullName, phoneNumber, bio, skills string, experience int) (*CandidateProfile, error) {
	query := `
		UPDATE candidate_profiles
		SET full_name = $1, phone_number = $2, bio = $3, skills = $4, experience = $5
		WHERE user_id = $6
	`
	if _, err := m.DB.Exec(query, fullName, phoneNumber, bio, skills, experience, userID); err != nil {
		return nil, err
	}
	return m.GetByUserID(userID)
}

// UpdateResume records the storage key and original filename of an uploaded resume.
func (m *CandidateProfileModel) UpdateResume(userID int, resumeKey, resumeName string) error {
	query := `UPDATE candidate_profiles SET resume_key = $1, resume_name = $2 WHERE user_id = $3`
	_, err := m.DB.Exec(query, resumeKey, resumeName, userID)
	return err
}
