package models

import (
	"database/sql"
)

// RecruiterProfile is the recruiter's personal profile, separate from company details.
type RecruiterProfile struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	LinkedIn    string `json:"linkedin"`
	Bio         string `json:"bio"`
}

type RecruiterProfileModel struct {
	DB *sql.DB
}

func NewRecruiterProfileModel(db *sql.DB) *RecruiterProfileModel {
	return &RecruiterProfileModel{DB: db}
}

func (m *RecruiterProfileModel) GetByUserID(userID int) (*RecruiterProfile, error) {
	p := &RecruiterProfile{}
	query := `
		SELECT p.id, p.user_id, u.username, u.email, p.full_name, p.phone_number,
		       p.position, p.linkedin, p.bio
		FROM recruiter_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	err := m.DB.QueryRow(query, userID).Scan(
		&p.ID, &p.UserID, &p.Username, &p.Email, &p.FullName, &p.PhoneNumber,
		&p.Position, &p.LinkedIn, &p.Bio,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m *RecruiterProfileModel) GetOrCreate(userID int) (*RecruiterProfile, error) {
	profile, err := m.GetByUserID(userID)
	if err == sql.ErrNoRows {
		if _, err := m.DB.Exec(`INSERT INTO recruiter_profiles (user_id) VALUES ($1)`, userID); err != nil {
			return nil, err
		}
		return m.GetByUserID(userID)
	}
	return profile, err
}

func (m *RecruiterProfileModel) Update(userID int, fullName, phoneNumber, position, linkedin, bio string) (*RecruiterProfile, error) {
	query := `
		UPDATE recruiter_profiles
		SET full_name = $1, phone_number = $2, position = $3, linkedin = $4, bio = $5
		WHERE user_id = $6
	`
	if _, err := m.DB.Exec(query, fullName, phoneNumber, position, linkedin, bio, userID); err != nil {
		return nil, err
	}
	return m.GetByUserID(userID)
}
