package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/models"
)

func TestStatusMessage(t *testing.T) {
	assert.Contains(t, StatusMessage(models.StatusApplied), "Status: Applied.")
	assert.Contains(t, StatusMessage(models.StatusApplied), "application has been received")

	assert.Contains(t, StatusMessage(models.StatusShortlisted), "Status: Shortlisted.")
	assert.Contains(t, StatusMessage(models.StatusShortlisted), "shortlisted for the next round")

	assert.Contains(t, StatusMessage(models.StatusSelected), "Status: Selected.")
	assert.Contains(t, StatusMessage(models.StatusSelected), "Congratulations")

	assert.Contains(t, StatusMessage(models.StatusRejected), "Status: Rejected.")
	assert.Contains(t, StatusMessage(models.StatusRejected), "not selected")
}

func TestStatusMessage_UnknownStatus(t *testing.T) {
	assert.Equal(t, "Status: on-hold.", StatusMessage("on-hold"))
}
