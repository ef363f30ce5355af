package controllers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/utils"
)

type InterviewController struct {
	interviewModel *models.InterviewModel
	appModel       *models.ApplicationModel
}

func NewInterviewController(db *sql.DB) *InterviewController {
	return &InterviewController{
		interviewModel: models.NewInterviewModel(db),
		appModel:       models.NewApplicationModel(db),
	}
}

type InterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Mode        string    `json:"mode" binding:"required"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
}

// List returns the caller's interviews: across owned jobs for recruiters,
// own interviews for candidates.
func (c *InterviewController) List(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	var interviews []models.Interview
	var err error
	if middleware.Role(ctx) == models.RoleRecruiter {
		interviews, err = c.interviewModel.ListByRecruiter(userID)
	} else {
		interviews, err = c.interviewModel.ListByCandidate(userID)
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load interviews", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", interviews)
}

// ListForApplication returns interviews for one application, visible to the
// applicant and the owning recruiter.
func (c *InterviewController) ListForApplication(ctx *gin.Context) {
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

	userID := middleware.UserID(ctx)
	if app.CandidateUserID != userID && app.RecruiterUserID != userID {
		utils.ForbiddenError(ctx, "You do not have access to this application")
		return
	}

	interviews, err := c.interviewModel.ListByApplication(app.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load interviews", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", interviews)
}

// Schedule creates an interview for an application owned by the recruiter.
func (c *InterviewController) Schedule(ctx *gin.Context) {
	var req InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}
	if !models.ValidInterviewMode(req.Mode) {
		utils.BadRequestError(ctx, "Mode must be online, onsite or phone", nil)
		return
	}

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
		utils.ForbiddenError(ctx, "You can only schedule interviews for your own jobs")
		return
	}

	interview, err := c.interviewModel.Create(app.ID, req.ScheduledAt, req.Mode, req.Location, req.Notes)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to schedule interview", err)
		return
	}
	ctx.JSON(http.StatusCreated, utils.StandardResponse{Success: true, Data: interview, Message: "Interview scheduled"})
}

// ownedInterview loads an interview and checks the recruiter owns the underlying job.
func (c *InterviewController) ownedInterview(ctx *gin.Context) (*models.Interview, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid interview ID", err)
		return nil, false
	}

	interview, err := c.interviewModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Interview not found")
		return nil, false
	}

	app, err := c.appModel.GetByID(interview.ApplicationID)
	if err != nil || app.RecruiterUserID != middleware.UserID(ctx) {
		utils.ForbiddenError(ctx, "You can only manage interviews for your own jobs")
		return nil, false
	}
	return interview, true
}

func (c *InterviewController) Update(ctx *gin.Context) {
	var req InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}
	if !models.ValidInterviewMode(req.Mode) {
		utils.BadRequestError(ctx, "Mode must be online, onsite or phone", nil)
		return
	}
	status := req.Status
	if status == "" {
		status = models.InterviewScheduled
	}
	if !models.ValidInterviewStatus(status) {
		utils.BadRequestError(ctx, "Invalid interview status", nil)
		return
	}

	interview, ok := c.ownedInterview(ctx)
	if !ok {
		return
	}

	updated, err := c.interviewModel.Update(interview.ID, req.ScheduledAt, req.Mode, req.Location, req.Notes, status)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to update interview", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Interview updated", updated)
}

func (c *InterviewController) Delete(ctx *gin.Context) {
	interview, ok := c.ownedInterview(ctx)
	if !ok {
		return
	}

	if err := c.interviewModel.Delete(interview.ID); err != nil {
		utils.InternalServerError(ctx, "Failed to cancel interview", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Interview cancelled", nil)
}
