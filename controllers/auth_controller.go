package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"jobportal/middleware"
	"jobportal/models"
	"jobportal/services"
)

type AuthController struct {
	userModel    *models.UserModel
	companyModel *models.CompanyModel
	jwtService   *services.JWTService
}

func NewAuthController(userModel *models.UserModel, companyModel *models.CompanyModel, jwtService *services.JWTService) *AuthController {
	return &AuthController{
		userModel:    userModel,
		companyModel: companyModel,
		jwtService:   jwtService,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=recruiter candidate"`

	// Extra fields only used for recruiter registration
	CompanyName    string `json:"company_name"`
	CompanyWebsite string `json:"company_website"`
	CompanyAbout   string `json:"company_about"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Role    string `json:"role,omitempty"`
	Token   string `json:"token,omitempty"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	// Check if user already exists
	if existing, err := c.userModel.GetByUsername(req.Username); err == nil && existing != nil {
		ctx.JSON(http.StatusConflict, AuthResponse{
			Success: false,
			Message: "User with this username already exists",
		})
		return
	}
	if existing, err := c.userModel.GetByEmail(req.Email); err == nil && existing != nil {
		ctx.JSON(http.StatusConflict, AuthResponse{
			Success: false,
			Message: "User with this email already exists",
		})
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to hash password",
		})
		return
	}

	// Create user
	user, err := c.userModel.Create(req.Username, req.Email, string(hashedPassword), req.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create user account",
		})
		return
	}

	// Recruiters can register their company in the same call
	if user.Role == models.RoleRecruiter && req.CompanyName != "" {
		if _, err := c.companyModel.Create(user.ID, req.CompanyName, req.CompanyWebsite, req.CompanyAbout); err != nil {
			// Company can still be created on demand later
			ctx.JSON(http.StatusInternalServerError, AuthResponse{
				Success: false,
				Message: "Account created but company registration failed",
			})
			return
		}
	}

	// Generate JWT token
	token, err := c.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    user.Username,
		Role:    user.Role,
		Token:   token,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := c.userModel.GetByUsername(req.Username)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to generate authentication token",
		})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user.Username,
		Role:    user.Role,
		Token:   token,
	})
}

func (c *AuthController) Refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request data: " + err.Error(),
		})
		return
	}

	token, err := c.jwtService.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: "Invalid or expired token",
		})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Token refreshed",
		Token:   token,
	})
}

// Me returns the authenticated user.
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.userModel.GetByID(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User not found: %v", err)})
		return
	}
	ctx.JSON(http.StatusOK, user)
}
