package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/utils"
)

type AlertController struct {
	alertModel     *models.JobAlertModel
	statusModel    *models.StatusNotificationModel
	candidateModel *models.CandidateProfileModel
}

func NewAlertController(db *sql.DB) *AlertController {
	return &AlertController{
		alertModel:     models.NewJobAlertModel(db),
		statusModel:    models.NewStatusNotificationModel(db),
		candidateModel: models.NewCandidateProfileModel(db),
	}
}

type JobAlertRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	JobType  string `json:"job_type"`
	IsActive *bool  `json:"is_active"`
}

func (r *JobAlertRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func (c *AlertController) profile(ctx *gin.Context) (*models.CandidateProfile, bool) {
	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return nil, false
	}
	return profile, true
}

func (c *AlertController) List(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	alerts, err := c.alertModel.ListByCandidate(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load alerts", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", alerts)
}

func (c *AlertController) Create(ctx *gin.Context) {
	var req JobAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}
	if req.Keywords == "" && req.Location == "" && req.JobType == "" {
		utils.BadRequestError(ctx, "Alert needs at least one of keywords, location or job type", nil)
		return
	}

	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	alert, err := c.alertModel.Create(profile.ID, req.Keywords, req.Location, req.JobType, req.active())
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create alert", err)
		return
	}
	ctx.JSON(http.StatusCreated, utils.StandardResponse{Success: true, Data: alert, Message: "Alert created"})
}

// ownedAlert fetches an alert only when it belongs to the caller.
func (c *AlertController) ownedAlert(ctx *gin.Context) (*models.JobAlert, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid alert ID", err)
		return nil, false
	}

	profile, ok := c.profile(ctx)
	if !ok {
		return nil, false
	}

	alert, err := c.alertModel.GetForCandidate(id, profile.ID)
	if err != nil {
		utils.NotFoundError(ctx, "Alert not found")
		return nil, false
	}
	return alert, true
}

func (c *AlertController) Get(ctx *gin.Context) {
	alert, ok := c.ownedAlert(ctx)
	if !ok {
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", alert)
}

func (c *AlertController) Update(ctx *gin.Context) {
	var req JobAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	alert, ok := c.ownedAlert(ctx)
	if !ok {
		return
	}

	if err := c.alertModel.Update(alert.ID, req.Keywords, req.Location, req.JobType, req.active()); err != nil {
		utils.InternalServerError(ctx, "Failed to update alert", err)
		return
	}

	updated, err := c.alertModel.GetForCandidate(alert.ID, alert.CandidateID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load alert", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Alert updated", updated)
}

func (c *AlertController) Delete(ctx *gin.Context) {
	alert, ok := c.ownedAlert(ctx)
	if !ok {
		return
	}

	if err := c.alertModel.Delete(alert.ID); err != nil {
		utils.InternalServerError(ctx, "Failed to delete alert", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Alert deleted", nil)
}

// Notifications returns job-match notifications for the candidate.
func (c *AlertController) Notifications(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	notifications, err := c.alertModel.ListNotifications(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load notifications", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", notifications)
}

func (c *AlertController) MarkNotificationRead(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid notification ID", err)
		return
	}

	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	if err := c.alertModel.MarkNotificationRead(id, profile.ID); err != nil {
		utils.NotFoundError(ctx, "Notification not found")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Notification marked as read", nil)
}

// StatusNotifications returns application status change notifications.
func (c *AlertController) StatusNotifications(ctx *gin.Context) {
	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	notifications, err := c.statusModel.ListByCandidate(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load notifications", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", notifications)
}

func (c *AlertController) MarkStatusNotificationRead(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid notification ID", err)
		return
	}

	profile, ok := c.profile(ctx)
	if !ok {
		return
	}

	if err := c.statusModel.MarkRead(id, profile.ID); err != nil {
		utils.NotFoundError(ctx, "Notification not found")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Notification marked as read", nil)
}
