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

type ApplicationController struct {
	appModel       *models.ApplicationModel
	candidateModel *models.CandidateProfileModel
	s3Service      *services.S3Service
	emailService   *services.EmailNotificationService
}

func NewApplicationController(db *sql.DB, s3Service *services.S3Service, emailService *services.EmailNotificationService) *ApplicationController {
	return &ApplicationController{
		appModel:       models.NewApplicationModel(db),
		candidateModel: models.NewCandidateProfileModel(db),
		s3Service:      s3Service,
		emailService:   emailService,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// MyApplications returns the candidate's applications, newest first.
func (c *ApplicationController) MyApplications(ctx *gin.Context) {
	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	apps, err := c.appModel.ListByCandidate(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load applications", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", apps)
}

// RecruiterApplications returns applications across the recruiter's jobs,
// with optional candidate search, job title and status filters.
func (c *ApplicationController) RecruiterApplications(ctx *gin.Context) {
	apps, err := c.appModel.ListByRecruiter(
		middleware.UserID(ctx),
		ctx.Query("search"),
		ctx.Query("job_title"),
		ctx.Query("status"),
	)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load applications", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", apps)
}

// visibleApplication loads an application and verifies the caller is either
// the applicant or the recruiter who owns the job.
func (c *ApplicationController) visibleApplication(ctx *gin.Context) (*models.Application, bool) {
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

	userID := middleware.UserID(ctx)
	if app.CandidateUserID != userID && app.RecruiterUserID != userID {
		utils.ForbiddenError(ctx, "You do not have access to this application")
		return nil, false
	}

	return app, true
}

func (c *ApplicationController) Get(ctx *gin.Context) {
	app, ok := c.visibleApplication(ctx)
	if !ok {
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", app)
}

// UpdateStatus moves an application through the hiring pipeline. Only the
// recruiter who owns the job can change the status; the candidate is
// notified when it changes.
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	var req StatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.BadRequestError(ctx, "Invalid application status", nil)
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
		utils.ForbiddenError(ctx, "You can only update applications for your own jobs")
		return
	}

	if app.Status == req.Status {
		utils.SuccessResponse(ctx, http.StatusOK, "Status unchanged", app)
		return
	}

	if err := c.appModel.UpdateStatus(app.ID, req.Status); err != nil {
		utils.InternalServerError(ctx, "Failed to update application status", err)
		return
	}
	app.Status = req.Status

	if err := c.emailService.SendApplicationStatus(app); err != nil {
		utils.LogError("Failed to send status notification", err, map[string]interface{}{
			"application_id": app.ID,
			"status":         req.Status,
		})
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Application status updated", app)
}

// DownloadResume streams the applicant's resume to the recruiter who owns the job.
func (c *ApplicationController) DownloadResume(ctx *gin.Context) {
	if c.s3Service == nil {
		utils.ErrorResponseWithCode(ctx, http.StatusServiceUnavailable, "Resume storage is not configured", nil)
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
		utils.ForbiddenError(ctx, "You can only view resumes for your own jobs")
		return
	}

	profile, err := c.candidateModel.GetByID(app.CandidateID)
	if err != nil || profile.ResumeKey == "" {
		utils.NotFoundError(ctx, "Candidate has no resume on file")
		return
	}

	content, contentType, err := c.s3Service.DownloadResume(profile.ResumeKey)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to download resume", err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+profile.ResumeName+`"`)
	ctx.Data(http.StatusOK, contentType, content)
}
