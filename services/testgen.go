package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"jobportal/models"
	"jobportal/utils"
)

// QuestionCount is how many questions a screening test targets.
const QuestionCount = 25

// MarksPerQuestion is awarded per correct answer; no partial credit.
const MarksPerQuestion = 2

// GeneratedQuestion is the wire format shared by the external generator
// and the local fallback.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

var optionLetters = []string{"A", "B", "C", "D"}

// OptionLetter maps a zero-based correct-option index to its letter.
// Out-of-range indexes map to "A".
func OptionLetter(index int) string {
	if index < 0 || index >= len(optionLetters) {
		return "A"
	}
	return optionLetters[index]
}

// ValidOption reports whether s is one of the four option letters.
func ValidOption(s string) bool {
	for _, letter := range optionLetters {
		if s == letter {
			return true
		}
	}
	return false
}

// ParseQuestionsJSON decodes generator output. The content may carry
// surrounding prose; everything outside the outermost braces is dropped.
// At most max questions are kept.
func ParseQuestionsJSON(content string, max int) ([]GeneratedQuestion, error) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "{") {
		first := strings.Index(content, "{")
		last := strings.LastIndex(content, "}")
		if first == -1 || last == -1 || last < first {
			return nil, fmt.Errorf("no JSON object in generator output")
		}
		content = content[first : last+1]
	}

	var payload struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("generator returned no questions")
	}
	if len(payload.Questions) > max {
		payload.Questions = payload.Questions[:max]
	}
	return payload.Questions, nil
}

var skillSplitter = regexp.MustCompile(`[,\n/;]`)

type fallbackTemplate func(skill string) GeneratedQuestion

var fallbackTemplates = []fallbackTemplate{
	func(skill string) GeneratedQuestion {
		return GeneratedQuestion{
			Question: fmt.Sprintf("Which of the following BEST describes a core concept of %s?", skill),
			Options: []string{
				fmt.Sprintf("%s fundamentals", skill),
				"Planning office parties",
				"Company picnic organization",
				"Office seating arrangements",
			},
			CorrectOption: 0,
		}
	},
	func(skill string) GeneratedQuestion {
		return GeneratedQuestion{
			Question: fmt.Sprintf("In a real-world project, where would %s MOST commonly be applied?", skill),
			Options: []string{
				fmt.Sprintf("Building or improving software using %s", skill),
				"Decorating meeting rooms",
				"Managing cafeteria menu",
				"Organizing team tours",
			},
			CorrectOption: 0,
		}
	},
	func(skill string) GeneratedQuestion {
		return GeneratedQuestion{
			Question: fmt.Sprintf("Which activity is LEAST related to %s?", skill),
			Options: []string{
				"Using algorithms and data structures",
				"Writing and testing code",
				fmt.Sprintf("Applying %s in a project", skill),
				"Planning birthday celebrations",
			},
			CorrectOption: 3,
		}
	},
	func(skill string) GeneratedQuestion {
		return GeneratedQuestion{
			Question: fmt.Sprintf("Which of these tasks would MOST LIKELY require strong %s knowledge?", skill),
			Options: []string{
				fmt.Sprintf("Developing a feature using %s", skill),
				"Arranging office plants",
				"Designing company logo on a whiteboard",
				"Printing ID cards",
			},
			CorrectOption: 0,
		}
	},
}

// FallbackQuestions deterministically produces count questions from the
// job's skills text, cycling skills and templates round-robin. Used when
// the external generator is unavailable or returns garbage.
func FallbackQuestions(skillsText string, count int) []GeneratedQuestion {
	skills := []string{}
	for _, s := range skillSplitter.Split(skillsText, -1) {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		skills = []string{"Programming"}
	}

	questions := make([]GeneratedQuestion, 0, count)
	for i := 0; i < count; i++ {
		skill := skills[i%len(skills)]
		questions = append(questions, fallbackTemplates[i%len(fallbackTemplates)](skill))
	}
	return questions
}

// AnswerInput is one submitted answer.
type AnswerInput struct {
	QuestionID     int    `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option" binding:"required"`
}

// GradeAnswers scores a submission against the test's questions.
// Answers for unknown question ids are dropped; for each question the
// last submitted answer wins. Returns the score and the accepted
// answers to persist.
func GradeAnswers(questions []models.JobTestQuestion, answers []AnswerInput) (int, []AnswerInput) {
	correct := make(map[int]string, len(questions))
	for _, q := range questions {
		correct[q.ID] = q.CorrectOption
	}

	latest := map[int]string{}
	accepted := []AnswerInput{}
	for _, ans := range answers {
		if _, ok := correct[ans.QuestionID]; !ok {
			continue
		}
		if _, seen := latest[ans.QuestionID]; !seen {
			accepted = append(accepted, ans)
		} else {
			for i := range accepted {
				if accepted[i].QuestionID == ans.QuestionID {
					accepted[i].SelectedOption = ans.SelectedOption
				}
			}
		}
		latest[ans.QuestionID] = ans.SelectedOption
	}

	score := 0
	for questionID, selected := range latest {
		if correct[questionID] == selected {
			score += MarksPerQuestion
		}
	}
	return score, accepted
}

// Passed resolves the pass mark against the test's actual total marks:
// strictly more than 60% is a pass.
func Passed(score, totalMarks int) bool {
	if totalMarks <= 0 {
		return false
	}
	return float64(score) > 0.6*float64(totalMarks)
}

// QuestionGenerator produces MCQs from a skills text.
type QuestionGenerator interface {
	GenerateQuestions(skillsText string, count int) ([]GeneratedQuestion, error)
}

// TestService creates and replaces screening tests for applications.
type TestService struct {
	tests     *models.JobTestModel
	jobs      *models.JobModel
	generator QuestionGenerator
}

// NewTestService builds a TestService. generator may be nil when no
// external credential is configured; only the fallback is used then.
func NewTestService(tests *models.JobTestModel, jobs *models.JobModel, generator QuestionGenerator) *TestService {
	return &TestService{tests: tests, jobs: jobs, generator: generator}
}

// CreateTestForApplication generates and persists the screening test for an
// application. A prior test is deleted and replaced. Returns nil (and no
// error) when zero valid questions were produced.
func (s *TestService) CreateTestForApplication(app *models.Application) (*models.JobTest, error) {
	job, err := s.jobs.GetByID(app.JobID)
	if err != nil {
		return nil, err
	}

	var questions []GeneratedQuestion
	if s.generator != nil {
		questions, err = s.generator.GenerateQuestions(job.Skills, QuestionCount)
		if err != nil {
			utils.LogWarn("question generator failed, using fallback", map[string]interface{}{
				"application_id": app.ID,
				"error":          err.Error(),
			})
			questions = nil
		}
	}
	if len(questions) == 0 {
		questions = FallbackQuestions(job.Skills, QuestionCount)
	}

	accepted := questions[:0]
	for _, q := range questions {
		if len(q.Options) == 4 {
			accepted = append(accepted, q)
		}
	}
	if len(accepted) == 0 {
		return nil, nil
	}

	if err := s.tests.DeleteByApplicationID(app.ID); err != nil {
		return nil, err
	}

	test, err := s.tests.Create(app.ID, len(accepted)*MarksPerQuestion)
	if err != nil {
		return nil, err
	}

	for _, q := range accepted {
		err := s.tests.CreateQuestion(test.ID, q.Question,
			q.Options[0], q.Options[1], q.Options[2], q.Options[3],
			OptionLetter(q.CorrectOption))
		if err != nil {
			return nil, err
		}
	}
	return test, nil
}
