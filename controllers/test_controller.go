package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/services"
	"jobportal/utils"
)

type TestController struct {
	appModel     *models.ApplicationModel
	testModel    *models.JobTestModel
	testService  *services.TestService
	emailService *services.EmailNotificationService
}

func NewTestController(db *sql.DB, testService *services.TestService, emailService *services.EmailNotificationService) *TestController {
	return &TestController{
		appModel:     models.NewApplicationModel(db),
		testModel:    models.NewJobTestModel(db),
		testService:  testService,
		emailService: emailService,
	}
}

type SubmitTestRequest struct {
	Answers []services.AnswerInput `json:"answers" binding:"required"`
}

type SubmitTestResponse struct {
	Score      int    `json:"score"`
	TotalMarks int    `json:"total_marks"`
	Passed     bool   `json:"passed"`
	Status     string `json:"status"`
}

// QuestionResult is one graded question in a recruiter's results view.
type QuestionResult struct {
	ID             int    `json:"id"`
	Text           string `json:"text"`
	OptionA        string `json:"option_a"`
	OptionB        string `json:"option_b"`
	OptionC        string `json:"option_c"`
	OptionD        string `json:"option_d"`
	CorrectOption  string `json:"correct_option"`
	SelectedOption string `json:"selected_option"`
	Correct        bool   `json:"correct"`
}

// candidateApplication loads an application and verifies the caller is the applicant.
func (c *TestController) candidateApplication(ctx *gin.Context) (*models.Application, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid application ID", err)
		return nil, false
	}

	app, err := c.appModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Application not found")
		return nil, false
	}
	if app.CandidateUserID != middleware.UserID(ctx) {
		utils.ForbiddenError(ctx, "You do not have access to this application")
		return nil, false
	}
	return app, true
}

// GetTest returns the screening test for the candidate's application,
// generating one on demand when missing. Correct answers are never included.
func (c *TestController) GetTest(ctx *gin.Context) {
	app, ok := c.candidateApplication(ctx)
	if !ok {
		return
	}

	test, err := c.testModel.GetByApplicationID(app.ID)
	if err == sql.ErrNoRows {
		test, err = c.testService.CreateTestForApplication(app)
		if err == nil && test == nil {
			utils.NotFoundError(ctx, "No test available for this application")
			return
		}
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load test", err)
		return
	}

	questions, err := c.testModel.GetQuestions(test.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load test questions", err)
		return
	}
	test.Questions = questions

	utils.SuccessResponse(ctx, http.StatusOK, "", test)
}

// SubmitTest grades the candidate's answers, closes the test and moves the
// application to shortlisted or rejected. A completed test cannot be retaken.
func (c *TestController) SubmitTest(ctx *gin.Context) {
	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}
	for _, ans := range req.Answers {
		if !services.ValidOption(ans.SelectedOption) {
			utils.BadRequestError(ctx, "Selected option must be A, B, C or D", nil)
			return
		}
	}

	app, ok := c.candidateApplication(ctx)
	if !ok {
		return
	}

	test, err := c.testModel.GetByApplicationID(app.ID)
	if err != nil {
		utils.NotFoundError(ctx, "No test found for this application")
		return
	}
	if test.CompletedAt != nil {
		utils.ConflictError(ctx, "Test already completed")
		return
	}

	questions, err := c.testModel.GetQuestions(test.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load test questions", err)
		return
	}

	score, accepted := services.GradeAnswers(questions, req.Answers)
	for _, ans := range accepted {
		if err := c.testModel.UpsertAnswer(ans.QuestionID, app.ID, ans.SelectedOption); err != nil {
			utils.InternalServerError(ctx, "Failed to save answers", err)
			return
		}
	}

	passed := services.Passed(score, test.TotalMarks)
	if err := c.testModel.Complete(test.ID, score, passed); err != nil {
		utils.InternalServerError(ctx, "Failed to record test result", err)
		return
	}

	status := models.StatusRejected
	if passed {
		status = models.StatusShortlisted
	}
	if err := c.appModel.UpdateStatus(app.ID, status); err != nil {
		utils.InternalServerError(ctx, "Failed to update application status", err)
		return
	}
	app.Status = status

	if err := c.emailService.SendApplicationStatus(app); err != nil {
		utils.LogError("Failed to send test result notification", err, map[string]interface{}{
			"application_id": app.ID,
		})
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Test submitted", SubmitTestResponse{
		Score:      score,
		TotalMarks: test.TotalMarks,
		Passed:     passed,
		Status:     status,
	})
}

// Results gives the recruiter who owns the job a per-question breakdown of
// the candidate's completed test.
func (c *TestController) Results(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid application ID", err)
		return
	}

	app, err := c.appModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Application not found")
		return
	}
	if app.RecruiterUserID != middleware.UserID(ctx) {
		utils.ForbiddenError(ctx, "You can only view test results for your own jobs")
		return
	}

	test, err := c.testModel.GetByApplicationID(app.ID)
	if err != nil {
		utils.NotFoundError(ctx, "No test found for this application")
		return
	}
	if test.CompletedAt == nil {
		utils.SuccessResponse(ctx, http.StatusOK, "Test not completed yet", gin.H{"test": test, "results": nil})
		return
	}

	questions, err := c.testModel.GetQuestions(test.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load test questions", err)
		return
	}
	answers, err := c.testModel.GetAnswers(test.ID, app.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load answers", err)
		return
	}

	results := make([]QuestionResult, 0, len(questions))
	for _, q := range questions {
		selected := answers[q.ID]
		results = append(results, QuestionResult{
			ID:             q.ID,
			Text:           q.Text,
			OptionA:        q.OptionA,
			OptionB:        q.OptionB,
			OptionC:        q.OptionC,
			OptionD:        q.OptionD,
			CorrectOption:  q.CorrectOption,
			SelectedOption: selected,
			Correct:        selected != "" && selected == q.CorrectOption,
		})
	}

	utils.SuccessResponse(ctx, http.StatusOK, "", gin.H{"test": test, "results": results})
}
