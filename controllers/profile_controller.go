package controllers

import (
	"database/sql"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/services"
	"jobportal/utils"
)

const maxResumeSize = 5 << 20 // 5MB

type ProfileController struct {
	candidateModel *models.CandidateProfileModel
	recruiterModel *models.RecruiterProfileModel
	companyModel   *models.CompanyModel
	s3Service      *services.S3Service
}

func NewProfileController(db *sql.DB, s3Service *services.S3Service) *ProfileController {
	return &ProfileController{
		candidateModel: models.NewCandidateProfileModel(db),
		recruiterModel: models.NewRecruiterProfileModel(db),
		companyModel:   models.NewCompanyModel(db),
		s3Service:      s3Service,
	}
}

type CandidateProfileRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	Experience  int    `json:"experience"`
}

type RecruiterProfileRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	LinkedIn    string `json:"linkedin"`
	Bio         string `json:"bio"`
}

type CompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	About       string `json:"about"`
	CompanySize string `json:"company_size"`
	FoundedYear *int   `json:"founded_year"`
}

// GetCandidateProfile returns the caller's candidate profile, creating it on first access.
func (c *ProfileController) GetCandidateProfile(ctx *gin.Context) {
	profile, err := c.candidateModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", profile)
}

func (c *ProfileController) UpdateCandidateProfile(ctx *gin.Context) {
	var req CandidateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	userID := middleware.UserID(ctx)
	if _, err := c.candidateModel.GetOrCreate(userID); err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	profile, err := c.candidateModel.Update(userID, req.FullName, req.PhoneNumber, req.Bio, req.Skills, req.Experience)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to update profile", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Profile updated", profile)
}

// UploadResume stores the candidate's resume in S3 and records its key.
func (c *ProfileController) UploadResume(ctx *gin.Context) {
	if c.s3Service == nil {
		utils.ErrorResponseWithCode(ctx, http.StatusServiceUnavailable, "Resume storage is not configured", nil)
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		utils.BadRequestError(ctx, "No resume file provided", err)
		return
	}
	if fileHeader.Size > maxResumeSize {
		utils.BadRequestError(ctx, "Resume file too large (max 5MB)", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to read resume file", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to read resume file", err)
		return
	}

	userID := middleware.UserID(ctx)
	if _, err := c.candidateModel.GetOrCreate(userID); err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	key, err := c.s3Service.UploadResume(content, fileHeader.Filename)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to upload resume", err)
		return
	}

	if err := c.candidateModel.UpdateResume(userID, key, fileHeader.Filename); err != nil {
		utils.InternalServerError(ctx, "Failed to save resume reference", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Resume uploaded", gin.H{"resume_name": fileHeader.Filename})
}

// DownloadResume streams the caller's own resume back.
func (c *ProfileController) DownloadResume(ctx *gin.Context) {
	if c.s3Service == nil {
		utils.ErrorResponseWithCode(ctx, http.StatusServiceUnavailable, "Resume storage is not configured", nil)
		return
	}

	profile, err := c.candidateModel.GetByUserID(middleware.UserID(ctx))
	if err != nil || profile.ResumeKey == "" {
		utils.NotFoundError(ctx, "No resume on file")
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

// GetCandidate lets a recruiter view a candidate profile by profile ID.
func (c *ProfileController) GetCandidate(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid candidate ID", err)
		return
	}

	profile, err := c.candidateModel.GetByID(id)
	if err != nil {
		utils.NotFoundError(ctx, "Candidate not found")
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", profile)
}

func (c *ProfileController) GetRecruiterProfile(ctx *gin.Context) {
	profile, err := c.recruiterModel.GetOrCreate(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", profile)
}

func (c *ProfileController) UpdateRecruiterProfile(ctx *gin.Context) {
	var req RecruiterProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	userID := middleware.UserID(ctx)
	if _, err := c.recruiterModel.GetOrCreate(userID); err != nil {
		utils.InternalServerError(ctx, "Failed to load profile", err)
		return
	}

	profile, err := c.recruiterModel.Update(userID, req.FullName, req.PhoneNumber, req.Position, req.LinkedIn, req.Bio)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to update profile", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Profile updated", profile)
}

// GetCompany returns the recruiter's company, creating a placeholder if needed.
func (c *ProfileController) GetCompany(ctx *gin.Context) {
	company, err := c.companyModel.GetOrCreate(middleware.UserID(ctx), middleware.Username(ctx)+"'s Company")
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load company", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "", company)
}

func (c *ProfileController) UpdateCompany(ctx *gin.Context) {
	var req CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	company, err := c.companyModel.GetOrCreate(middleware.UserID(ctx), req.Name)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load company", err)
		return
	}

	updated, err := c.companyModel.Update(company.ID, req.Name, req.Website, req.Industry,
		req.Location, req.About, req.CompanySize, req.FoundedYear)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to update company", err)
		return
	}
	utils.SuccessResponse(ctx, http.StatusOK, "Company updated", updated)
}
