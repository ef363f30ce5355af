package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/utils"
)

type AnalyticsController struct {
	analyticsModel *models.AnalyticsModel
}

func NewAnalyticsController(db *sql.DB) *AnalyticsController {
	return &AnalyticsController{
		analyticsModel: models.NewAnalyticsModel(db),
	}
}

// Summary returns application counts across the recruiter's jobs: totals,
// today, last 7 days, per status and per job.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	analytics, err := c.analyticsModel.ForRecruiter(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load analytics", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", analytics)
}
