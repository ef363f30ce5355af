package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobportal/config"
	"jobportal/controllers"
	"jobportal/database"
	"jobportal/middleware"
	"jobportal/models"
	"jobportal/services"
	"jobportal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services
	jwtService := services.NewJWTService(cfg.JWTSecret)

	var generator services.QuestionGenerator
	if cfg.GroqAPIKey != "" {
		generator = services.NewGroqService(cfg.GroqAPIKey)
	} else {
		utils.LogWarn("GROQ_API_KEY not set, screening tests use fallback questions only")
	}
	testService := services.NewTestService(models.NewJobTestModel(db), models.NewJobModel(db), generator)

	emailService := services.NewEmailNotificationService(cfg.SMTP, models.NewStatusNotificationModel(db))

	s3Service, err := services.NewS3Service()
	if err != nil {
		utils.LogWarn("S3 not configured, resume upload and download disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Controllers
	authController := controllers.NewAuthController(models.NewUserModel(db), models.NewCompanyModel(db), jwtService)
	profileController := controllers.NewProfileController(db, s3Service)
	jobController := controllers.NewJobController(db, testService, emailService)
	appController := controllers.NewApplicationController(db, s3Service, emailService)
	testController := controllers.NewTestController(db, testService, emailService)
	savedJobController := controllers.NewSavedJobController(db)
	alertController := controllers.NewAlertController(db)
	interviewController := controllers.NewInterviewController(db)
	analyticsController := controllers.NewAnalyticsController(db)

	limiters := middleware.CreateRateLimiters()
	jobListCache := middleware.NewResponseCache(1 * time.Minute)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.MaxRequestSize(10 << 20))
	r.Use(middleware.SanitizeInput())

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Use(middleware.ValidateJSON())
	{
		auth.POST("/register", limiters["auth"].Limit(), authController.Register)
		auth.POST("/login", limiters["auth"].Limit(), authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	api.GET("/jobs", limiters["general"].Limit(), jobListCache.Cache(), jobController.List)
	api.GET("/jobs/:id", limiters["general"].Limit(), jobController.Get)

	// Routes for any authenticated user
	authed := api.Group("")
	authed.Use(middleware.Authenticate(jwtService))
	{
		authed.GET("/auth/me", authController.Me)
		authed.GET("/applications/:id", appController.Get)
		authed.GET("/applications/:id/interviews", interviewController.ListForApplication)
		authed.GET("/interviews", interviewController.List)
	}

	// Candidate routes
	candidate := api.Group("")
	candidate.Use(middleware.Authenticate(jwtService), middleware.RequireRole(models.RoleCandidate))
	{
		candidate.GET("/candidate/profile", profileController.GetCandidateProfile)
		candidate.PUT("/candidate/profile", profileController.UpdateCandidateProfile)
		candidate.POST("/candidate/profile/resume", profileController.UploadResume)
		candidate.GET("/candidate/profile/resume", profileController.DownloadResume)

		candidate.GET("/jobs/recommended", jobController.Recommended)
		candidate.POST("/jobs/:id/apply", limiters["apply"].Limit(), jobController.Apply)
		candidate.POST("/jobs/:id/save", savedJobController.Save)
		candidate.DELETE("/jobs/:id/save", savedJobController.Remove)
		candidate.GET("/saved-jobs", savedJobController.List)

		candidate.GET("/applications", appController.MyApplications)
		candidate.GET("/applications/:id/test", testController.GetTest)
		candidate.POST("/applications/:id/test/submit", testController.SubmitTest)

		candidate.GET("/alerts", alertController.List)
		candidate.POST("/alerts", alertController.Create)
		candidate.GET("/alerts/:id", alertController.Get)
		candidate.PUT("/alerts/:id", alertController.Update)
		candidate.DELETE("/alerts/:id", alertController.Delete)
		candidate.GET("/notifications/alerts", alertController.Notifications)
		candidate.POST("/notifications/alerts/:id/read", alertController.MarkNotificationRead)
		candidate.GET("/notifications/status", alertController.StatusNotifications)
		candidate.POST("/notifications/status/:id/read", alertController.MarkStatusNotificationRead)
	}

	// Recruiter routes
	recruiter := api.Group("")
	recruiter.Use(middleware.Authenticate(jwtService), middleware.RequireRole(models.RoleRecruiter))
	{
		recruiter.GET("/recruiter/profile", profileController.GetRecruiterProfile)
		recruiter.PUT("/recruiter/profile", profileController.UpdateRecruiterProfile)
		recruiter.GET("/recruiter/company", profileController.GetCompany)
		recruiter.PUT("/recruiter/company", profileController.UpdateCompany)
		recruiter.GET("/candidates/:id", profileController.GetCandidate)

		recruiter.POST("/jobs", jobController.Create)
		recruiter.PUT("/jobs/:id", jobController.Update)
		recruiter.DELETE("/jobs/:id", jobController.Delete)
		recruiter.GET("/recruiter/jobs", jobController.MyJobs)
		recruiter.GET("/jobs/:id/applications", jobController.Applications)

		recruiter.GET("/recruiter/applications", appController.RecruiterApplications)
		recruiter.PATCH("/applications/:id/status", appController.UpdateStatus)
		recruiter.GET("/applications/:id/resume", appController.DownloadResume)
		recruiter.GET("/applications/:id/test/results", testController.Results)

		recruiter.POST("/applications/:id/interviews", interviewController.Schedule)
		recruiter.PUT("/interviews/:id", interviewController.Update)
		recruiter.DELETE("/interviews/:id", interviewController.Delete)

		recruiter.GET("/recruiter/analytics", analyticsController.Summary)
	}

	utils.LogInfo("Server starting", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
