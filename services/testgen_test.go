package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/models"
)

func TestFallbackQuestions_Count(t *testing.T) {
	questions := FallbackQuestions("Go, SQL", QuestionCount)

	assert.Len(t, questions, QuestionCount)
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectOption, 0)
		assert.Less(t, q.CorrectOption, 4)
	}
}

func TestFallbackQuestions_SkillRotation(t *testing.T) {
	questions := FallbackQuestions("Go, SQL", 4)

	// Skills cycle round-robin across questions
	assert.Contains(t, questions[0].Question, "Go")
	assert.Contains(t, questions[1].Question, "SQL")
	assert.Contains(t, questions[2].Question, "Go")
	assert.Contains(t, questions[3].Question, "SQL")
}

func TestFallbackQuestions_SplitsOnSeparators(t *testing.T) {
	questions := FallbackQuestions("Python/Django; React\nNode", 4)

	assert.Contains(t, questions[0].Question, "Python")
	assert.Contains(t, questions[1].Question, "Django")
	assert.Contains(t, questions[2].Question, "React")
	assert.Contains(t, questions[3].Question, "Node")
}

func TestFallbackQuestions_NoSkills(t *testing.T) {
	questions := FallbackQuestions("   ", 5)

	assert.Len(t, questions, 5)
	for _, q := range questions {
		assert.Contains(t, q.Question, "Programming")
	}
}

func TestParseQuestionsJSON_Clean(t *testing.T) {
	content := `{"questions": [{"question": "What is Go?", "options": ["A language", "A bird", "A game", "A car"], "correct_option": 0}]}`

	questions, err := ParseQuestionsJSON(content, 25)

	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, "What is Go?", questions[0].Question)
	assert.Equal(t, 0, questions[0].CorrectOption)
}

func TestParseQuestionsJSON_SurroundingProse(t *testing.T) {
	content := "Here are your questions:\n" +
		`{"questions": [{"question": "Q1", "options": ["a", "b", "c", "d"], "correct_option": 2}]}` +
		"\nHope that helps!"

	questions, err := ParseQuestionsJSON(content, 25)

	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 2, questions[0].CorrectOption)
}

func TestParseQuestionsJSON_Truncates(t *testing.T) {
	content := `{"questions": [
		{"question": "Q1", "options": ["a","b","c","d"], "correct_option": 0},
		{"question": "Q2", "options": ["a","b","c","d"], "correct_option": 1},
		{"question": "Q3", "options": ["a","b","c","d"], "correct_option": 2}
	]}`

	questions, err := ParseQuestionsJSON(content, 2)

	assert.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestionsJSON_NoJSON(t *testing.T) {
	_, err := ParseQuestionsJSON("sorry, I cannot help with that", 25)
	assert.Error(t, err)
}

func TestParseQuestionsJSON_EmptyQuestions(t *testing.T) {
	_, err := ParseQuestionsJSON(`{"questions": []}`, 25)
	assert.Error(t, err)
}

func TestOptionLetter(t *testing.T) {
	assert.Equal(t, "A", OptionLetter(0))
	assert.Equal(t, "B", OptionLetter(1))
	assert.Equal(t, "C", OptionLetter(2))
	assert.Equal(t, "D", OptionLetter(3))

	// Out-of-range indexes fall back to A
	assert.Equal(t, "A", OptionLetter(-1))
	assert.Equal(t, "A", OptionLetter(4))
}

func TestValidOption(t *testing.T) {
	assert.True(t, ValidOption("A"))
	assert.True(t, ValidOption("D"))
	assert.False(t, ValidOption("E"))
	assert.False(t, ValidOption("a"))
	assert.False(t, ValidOption(""))
}

func testQuestions() []models.JobTestQuestion {
	return []models.JobTestQuestion{
		{ID: 1, CorrectOption: "A"},
		{ID: 2, CorrectOption: "B"},
		{ID: 3, CorrectOption: "C"},
	}
}

func TestGradeAnswers_AllCorrect(t *testing.T) {
	score, accepted := GradeAnswers(testQuestions(), []AnswerInput{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 2, SelectedOption: "B"},
		{QuestionID: 3, SelectedOption: "C"},
	})

	assert.Equal(t, 3*MarksPerQuestion, score)
	assert.Len(t, accepted, 3)
}

func TestGradeAnswers_Partial(t *testing.T) {
	score, _ := GradeAnswers(testQuestions(), []AnswerInput{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 2, SelectedOption: "D"},
	})

	assert.Equal(t, MarksPerQuestion, score)
}

func TestGradeAnswers_UnknownQuestionSkipped(t *testing.T) {
	score, accepted := GradeAnswers(testQuestions(), []AnswerInput{
		{QuestionID: 99, SelectedOption: "A"},
		{QuestionID: 1, SelectedOption: "A"},
	})

	assert.Equal(t, MarksPerQuestion, score)
	assert.Len(t, accepted, 1)
	assert.Equal(t, 1, accepted[0].QuestionID)
}

func TestGradeAnswers_LastWriteWins(t *testing.T) {
	score, accepted := GradeAnswers(testQuestions(), []AnswerInput{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 1, SelectedOption: "D"},
	})

	assert.Equal(t, 0, score)
	assert.Len(t, accepted, 1)
	assert.Equal(t, "D", accepted[0].SelectedOption)
}

func TestGradeAnswers_Empty(t *testing.T) {
	score, accepted := GradeAnswers(testQuestions(), nil)

	assert.Equal(t, 0, score)
	assert.Empty(t, accepted)
}

func TestPassed(t *testing.T) {
	// Threshold is strictly more than 60% of total marks
	assert.True(t, Passed(32, 50))
	assert.False(t, Passed(30, 50))
	assert.False(t, Passed(20, 50))

	assert.True(t, Passed(31, 50))
	assert.False(t, Passed(12, 20))
	assert.True(t, Passed(14, 20))

	// Degenerate totals never pass
	assert.False(t, Passed(10, 0))
	assert.False(t, Passed(0, -4))
}
