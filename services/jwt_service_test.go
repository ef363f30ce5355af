package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/models"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(42, "alice", models.RoleCandidate)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleCandidate, claims.Role)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one").GenerateToken(1, "bob", models.RoleRecruiter)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(7, "carol", models.RoleRecruiter)
	assert.NoError(t, err)

	refreshed, err := service.RefreshToken(token)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(refreshed)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "carol", claims.Username)
	assert.Equal(t, models.RoleRecruiter, claims.Role)
}

func TestJWTService_RefreshInvalidToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.RefreshToken("garbage")
	assert.Error(t, err)
}
