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

type SavedJobController struct {
	savedModel     *models.SavedJobModel
	jobModel       *models.JobModel
	candidateModel *models.CandidateProfileModel
}

func NewSavedJobController(db *sql.DB) *SavedJobController {
	return &SavedJobController{
		savedModel:     models.NewSavedJobModel(db),
		jobModel:       models.NewJobModel(db),
		candidateModel: models.NewCandidateProfileModel(db),
	}
}

func (c *SavedJobController) profileAndJobID(ctx *gin.Context) (*models.CandidateProfile, int, bool) {
	jobID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job ID", err)
		return nil, 0, false
	}

	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return nil, 0, false
	}
	return profile, jobID, true
}

// Save bookmarks a job. Saving the same job twice is a no-op.
func (c *SavedJobController) Save(ctx *gin.Context) {
	profile, jobID, ok := c.profileAndJobID(ctx)
	if !ok {
		return
	}

	if _, err := c.jobModel.GetByID(jobID); err != nil {
		utils.NotFoundError(ctx, "Job not found")
		return
	}

	created, err := c.savedModel.Save(profile.ID, jobID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to save job", err)
		return
	}

	message := "Job saved!"
	if !created {
		message = "Already saved"
	}
	utils.SuccessResponse(ctx, http.StatusOK, message, nil)
}

func (c *SavedJobController) Remove(ctx *gin.Context) {
	profile, jobID, ok := c.profileAndJobID(ctx)
	if !ok {
		return
	}

	if err := c.savedModel.Delete(profile.ID, jobID); err != nil {
		utils.InternalServerError(ctx, "Failed to remove saved job", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Job removed from saved", nil)
}

func (c *SavedJobController) List(ctx *gin.Context) {
	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	saved, err := c.savedModel.ListByCandidate(profile.ID)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load saved jobs", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", saved)
}
