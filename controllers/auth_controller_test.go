package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Binding validation runs before any model access, so these tests need no database.
func validationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(nil, nil, nil)

	router := gin.New()
	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
	router.POST("/refresh", controller.Refresh)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_MissingFields(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/register", `{"username": "alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
}

func TestRegister_InvalidRole(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "secret123",
		"role": "admin"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "abc",
		"role": "candidate"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidEmail(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/register", `{
		"username": "alice",
		"email": "not-an-email",
		"password": "secret123",
		"role": "candidate"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_MissingPassword(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/login", `{"username": "alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefresh_MissingToken(t *testing.T) {
	router := validationRouter()

	w := postJSON(router, "/refresh", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
