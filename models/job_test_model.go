package models

import (
	"database/sql"
	"time"
)

// JobTest is the screening test attached 1:1 to an application.
type JobTest struct {
	ID            int               `json:"id"`
	ApplicationID int               `json:"application_id"`
	TotalMarks    int               `json:"total_marks"`
	Score         *int              `json:"score"`
	Passed        bool              `json:"passed"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at"`
	Questions     []JobTestQuestion `json:"questions,omitempty"`
}

type JobTestQuestion struct {
	ID            int    `json:"id"`
	TestID        int    `json:"-"`
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"-"` // never sent to candidates
}

type JobTestModel struct {
	DB *sql.DB
}

func NewJobTestModel(db *sql.DB) *JobTestModel {
	return &JobTestModel{DB: db}
}

func (m *JobTestModel) Create(applicationID, totalMarks int) (*JobTest, error) {
	test := &JobTest{}
	query := `
		INSERT INTO job_tests (application_id, total_marks, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, application_id, total_marks, passed, created_at
	`
	err := m.DB.QueryRow(query, applicationID, totalMarks, time.Now()).Scan(
		&test.ID, &test.ApplicationID, &test.TotalMarks, &test.Passed, &test.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return test, nil
}

func (m *JobTestModel) GetByApplicationID(applicationID int) (*JobTest, error) {
	test := &JobTest{}
	var score sql.NullInt64
	var completedAt sql.NullTime
	query := `
		SELECT id, application_id, total_marks, score, passed, created_at, completed_at
		FROM job_tests WHERE application_id = $1
	`
	err := m.DB.QueryRow(query, applicationID).Scan(
		&test.ID, &test.ApplicationID, &test.TotalMarks, &score, &test.Passed,
		&test.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if score.Valid {
		s := int(score.Int64)
		test.Score = &s
	}
	if completedAt.Valid {
		test.CompletedAt = &completedAt.Time
	}
	return test, nil
}

// DeleteByApplicationID removes a previous test; questions and answers
// go with it via cascade.
func (m *JobTestModel) DeleteByApplicationID(applicationID int) error {
	_, err := m.DB.Exec(`DELETE FROM job_tests WHERE application_id = $1`, applicationID)
	return err
}

func (m *JobTestModel) CreateQuestion(testID int, text, optionA, optionB, optionC, optionD, correctOption string) error {
	query := `
		INSERT INTO job_test_questions (test_id, text, option_a, option_b, option_c, option_d, correct_option)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := m.DB.Exec(query, testID, text, optionA, optionB, optionC, optionD, correctOption)
	return err
}

func (m *JobTestModel) GetQuestions(testID int) ([]JobTestQuestion, error) {
	query := `
		SELECT id, test_id, text, option_a, option_b, option_c, option_d, correct_option
		FROM job_test_questions WHERE test_id = $1 ORDER BY id
	`
	rows, err := m.DB.Query(query, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []JobTestQuestion{}
	for rows.Next() {
		var q JobTestQuestion
		err := rows.Scan(&q.ID, &q.TestID, &q.Text, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.CorrectOption)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// UpsertAnswer stores the candidate's answer for a question, replacing any
// earlier one. Last write wins per (question, application).
func (m *JobTestModel) UpsertAnswer(questionID, applicationID int, selectedOption string) error {
	query := `
		INSERT INTO job_test_answers (question_id, application_id, selected_option, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (question_id, application_id)
		DO UPDATE SET selected_option = EXCLUDED.selected_option
	`
	_, err := m.DB.Exec(query, questionID, applicationID, selectedOption, time.Now())
	return err
}

// GetAnswers returns the candidate's answers keyed by question id.
func (m *JobTestModel) GetAnswers(testID, applicationID int) (map[int]string, error) {
	query := `
		SELECT a.question_id, a.selected_option
		FROM job_test_answers a
		JOIN job_test_questions q ON q.id = a.question_id
		WHERE q.test_id = $1 AND a.application_id = $2
	`
	rows, err := m.DB.Query(query, testID, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := map[int]string{}
	for rows.Next() {
		var questionID int
		var selected string
		if err := rows.Scan(&questionID, &selected); err != nil {
			return nil, err
		}
		answers[questionID] = selected
	}
	return answers, rows.Err()
}

// Complete records the final score and closes the test permanently.
func (m *JobTestModel) Complete(testID, score int, passed bool) error {
	query := `UPDATE job_tests SET score = $1, passed = $2, completed_at = $3 WHERE id = $4`
	_, err := m.DB.Exec(query, score, passed, time.Now(), testID)
	return err
}
