package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/database"
	"jobportal/middleware"
	"jobportal/models"
	"jobportal/services"
	"jobportal/utils"
)

type JobController struct {
	jobModel       *models.JobModel
	companyModel   *models.CompanyModel
	candidateModel *models.CandidateProfileModel
	appModel       *models.ApplicationModel
	alertModel     *models.JobAlertModel
	testService    *services.TestService
	emailService   *services.EmailNotificationService
}

func NewJobController(db *sql.DB, testService *services.TestService, emailService *services.EmailNotificationService) *JobController {
	return &JobController{
		jobModel:       models.NewJobModel(db),
		companyModel:   models.NewCompanyModel(db),
		candidateModel: models.NewCandidateProfileModel(db),
		appModel:       models.NewApplicationModel(db),
		alertModel:     models.NewJobAlertModel(db),
		testService:    testService,
		emailService:   emailService,
	}
}

type JobRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Location      string   `json:"location"`
	JobType       string   `json:"job_type"`
	SalaryMin     *float64 `json:"salary_min"`
	SalaryMax     *float64 `json:"salary_max"`
	Qualification string   `json:"qualification"`
	Batch         string   `json:"batch"`
	Skills        string   `json:"skills"`
	ExternalLink  string   `json:"external_link"`
	IsActive      *bool    `json:"is_active"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

func (r *JobRequest) toJob() *models.Job {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &models.Job{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		JobType:       r.JobType,
		SalaryMin:     r.SalaryMin,
		SalaryMax:     r.SalaryMax,
		Qualification: r.Qualification,
		Batch:         r.Batch,
		Skills:        r.Skills,
		ExternalLink:  r.ExternalLink,
		IsActive:      active,
	}
}

// List returns active jobs with optional search, location and job_type filters.
func (c *JobController) List(ctx *gin.Context) {
	jobs, err := c.jobModel.ListActive(
		ctx.Query("search"),
		ctx.Query("location"),
		ctx.Query("job_type"),
	)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load jobs", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", jobs)
}

func (c *JobController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job ID", err)
		return
	}

	job, err := c.jobModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Job not found")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", job)
}

func (c *JobController) Create(ctx *gin.Context) {
	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	company, err := c.companyModel.GetOrCreate(middleware.UserID(ctx), middleware.Username(ctx)+"'s Company")
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load company", err)
		return
	}

	job, err := c.jobModel.Create(company.ID, req.toJob())
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create job", err)
		return
	}

	// Alert fan-out is best effort; a failure never blocks job creation.
	if job.IsActive {
		c.notifyMatchingAlerts(job)
	}

	ctx.JSON(http.StatusCreated, utils.StandardResponse{Success: true, Data: job, Message: "Job posted"})
}

// notifyMatchingAlerts creates alert notifications for candidates whose
// active alerts match the new job.
func (c *JobController) notifyMatchingAlerts(job *models.Job) {
	alerts, err := c.alertModel.ListActive()
	if err != nil {
		utils.LogError("Failed to load alerts for job matching", err, map[string]interface{}{
			"job_id": job.ID,
		})
		return
	}

	notifications := services.MatchAlerts(alerts, *job)
	if len(notifications) == 0 {
		return
	}

	if err := c.alertModel.BulkCreateNotifications(notifications); err != nil {
		utils.LogError("Failed to create alert notifications", err, map[string]interface{}{
			"job_id": job.ID,
		})
		return
	}

	utils.LogInfo("Job alert notifications created", map[string]interface{}{
		"job_id":  job.ID,
		"matched": len(notifications),
	})
}

// ownedJob loads a job and verifies it belongs to the recruiter's company.
func (c *JobController) ownedJob(ctx *gin.Context) (*models.Job, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job ID", err)
		return nil, false
	}

	job, err := c.jobModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Job not found")
		return nil, false
	}

	company, err := c.companyModel.GetByUserID(middleware.UserID(ctx))
	if err != nil || company.ID != job.CompanyID {
		utils.ForbiddenError(ctx, "You can only manage your own job postings")
		return nil, false
	}

	return job, true
}

func (c *JobController) Update(ctx *gin.Context) {
	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	job, ok := c.ownedJob(ctx)
	if !ok {
		return
	}

	updated, err := c.jobModel.Update(job.ID, req.toJob())
	if err != nil {
		utils.InternalServerError(ctx, "Failed to update job", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Job updated", updated)
}

func (c *JobController) Delete(ctx *gin.Context) {
	job, ok := c.ownedJob(ctx)
	if !ok {
		return
	}

	if err := c.jobModel.Delete(job.ID); err != nil {
		utils.InternalServerError(ctx, "Failed to delete job", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Job deleted", nil)
}

// MyJobs returns every job posted by the recruiter's company, active or not.
func (c *JobController) MyJobs(ctx *gin.Context) {
	company, err := c.companyModel.GetByUserID(middleware.UserID(ctx))
	if err == sql.ErrNoRows {
		utils.SuccessResponse(ctx, http.StatusOK, "", []models.Job{})
		return
	}
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load company", err)
		return
	}

	jobs, err := c.jobModel.ListByCompany(company.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load jobs", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", jobs)
}

// Applications returns all applications for a job the recruiter owns.
func (c *JobController) Applications(ctx *gin.Context) {
	job, ok := c.ownedJob(ctx)
	if !ok {
		return
	}

	apps, err := c.appModel.ListByJob(job.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load applications", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", apps)
}

// Apply submits a candidate application. A screening test is generated and
// an application-received notification is sent, both best effort.
func (c *JobController) Apply(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job ID", err)
		return
	}

	var req ApplyRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(ctx, "Invalid request data", err)
			return
		}
	}

	job, err := c.jobModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Job not found")
		return
	}
	if !job.IsActive {
		utils.BadRequestError(ctx, "This job is no longer accepting applications", nil)
		return
	}

	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	app, err := c.appModel.Create(job.ID, profile.ID, req.CoverLetter)
	if err != nil {
		if database.IsUniqueViolation(err) {
			utils.ConflictError(ctx, "You have already applied to this job")
			return
		}
		utils.InternalServerError(ctx, "Failed to submit application", err)
		return
	}

	test, err := c.testService.CreateTestForApplication(app)
	if err != nil {
		utils.LogError("Failed to create screening test", err, map[string]interface{}{
			"application_id": app.ID,
		})
	}

	if err := c.emailService.SendApplicationStatus(app); err != nil {
		utils.LogError("Failed to send application notification", err, map[string]interface{}{
			"application_id": app.ID,
		})
	}

	ctx.JSON(http.StatusCreated, utils.StandardResponse{
		Success: true,
		Data: gin.H{
			"application": app,
			"has_test":    test != nil,
		},
		Message: "Application submitted",
	})
}

// Recommended ranks unapplied active jobs against the candidate's profile skills.
func (c *JobController) Recommended(ctx *gin.Context) {
	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	jobs, err := c.jobModel.ListActiveExcludingApplied(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load jobs", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "", services.RecommendJobs(profile.Skills, jobs, 10))
}
