package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"jobportal/models"
	"jobportal/services"
)

func authTestRouter(jwtService *services.JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{Authenticate(jwtService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id":  UserID(c),
			"username": Username(c),
			"role":     Role(c),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router := authTestRouter(services.NewJWTService("test-secret"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	router := authTestRouter(services.NewJWTService("test-secret"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	router := authTestRouter(services.NewJWTService("test-secret"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthenticate_ValidToken(t *testing.T) {
	jwtService := services.NewJWTService("test-secret")
	router := authTestRouter(jwtService)

	token, err := jwtService.GenerateToken(42, "alice", models.RoleCandidate)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"candidate"`)
}

func TestRequireRole_WrongRole(t *testing.T) {
	jwtService := services.NewJWTService("test-secret")
	router := authTestRouter(jwtService, RequireRole(models.RoleRecruiter))

	token, _ := jwtService.GenerateToken(42, "alice", models.RoleCandidate)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "recruiter")
}

func TestRequireRole_CorrectRole(t *testing.T) {
	jwtService := services.NewJWTService("test-secret")
	router := authTestRouter(jwtService, RequireRole(models.RoleRecruiter))

	token, _ := jwtService.GenerateToken(7, "bob", models.RoleRecruiter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
