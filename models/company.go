package models

import (
	"database/sql"
)

type Company struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	About       string `json:"about"`
	CompanySize string `json:"company_size"`
	FoundedYear *int   `json:"founded_year"`
}

type CompanyModel struct {
	DB *sql.DB
}

func NewCompanyModel(db *sql.DB) *CompanyModel {
	return &CompanyModel{DB: db}
}

func (m *CompanyModel) scanRow(row *sql.Row) (*Company, error) {
	company := &Company{}
	var foundedYear sql.NullInt64
	err := row.Scan(
		&company.ID, &company.UserID, &company.Name, &company.Website, &company.Industry,
		&company.Location, &company.About, &company.CompanySize, &foundedYear,
	)
	if err != nil {
		return nil, err
	}
	if foundedYear.Valid {
		year := int(foundedYear.Int64)
		company.FoundedYear = &year
	}
	return company, nil
}

func (m *CompanyModel) Create(userID int, name, website, about string) (*Company, error) {
	query := `
		INSERT INTO companies (user_id, name, website, about)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, website, industry, location, about, company_size, founded_year
	`
	return m.scanRow(m.DB.QueryRow(query, userID, name, website, about))
}

func (m *CompanyModel) GetByUserID(userID int) (*Company, error) {
	query := `
		SELECT id, user_id, name, website, industry, location, about, company_size, founded_year
		FROM companies WHERE user_id = $1
	`
	return m.scanRow(m.DB.QueryRow(query, userID))
}

// GetOrCreate returns the recruiter's company, creating a stub one on demand.
func (m *CompanyModel) GetOrCreate(userID int, defaultName string) (*Company, error) {
	company, err := m.GetByUserID(userID)
	if err == sql.ErrNoRows {
		return m.Create(userID, defaultName, "", "")
	}
	return company, err
}

func (m *CompanyModel) Update(id int, name, website, industry, location, about, companySize string, foundedYear *int) (*Company, error) {
	var year sql.NullInt64
	if foundedYear != nil {
		year = sql.NullInt64{Int64: int64(*foundedYear), Valid: true}
	}
	query := `
		UPDATE companies
		SET name = $1, website = $2, industry = $3, location = $4, about = $5, company_size = $6, founded_year = $7
		WHERE id = $8
		RETURNING id, user_id, name, website, industry, location, about, company_size, founded_year
	`
	return m.scanRow(m.DB.QueryRow(query, name, website, industry, location, about, companySize, year, id))
}
