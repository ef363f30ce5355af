package services

import (
	"fmt"
	"net/smtp"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobportal/config"
	"jobportal/models"
	"jobportal/utils"
)

var titleCaser = cases.Title(language.English)

// EmailNotificationService sends application-status emails and mirrors
// each one into the in-app notification table. Callers treat failures
// as non-fatal.
type EmailNotificationService struct {
	smtp          config.SMTPConfig
	notifications *models.StatusNotificationModel
}

func NewEmailNotificationService(cfg config.SMTPConfig, notifications *models.StatusNotificationModel) *EmailNotificationService {
	return &EmailNotificationService{
		smtp:          cfg,
		notifications: notifications,
	}
}

// StatusMessage is the per-status body line shared by the email and the
// in-app notification.
func StatusMessage(status string) string {
	switch status {
	case models.StatusApplied:
		return "Status: Applied.\nYour application has been received. We will review it and get back to you."
	case models.StatusShortlisted:
		return "Status: Shortlisted.\nGood news! You have been shortlisted for the next round."
	case models.StatusSelected:
		return "Status: Selected.\nCongratulations! You have been selected for this position."
	case models.StatusRejected:
		return "Status: Rejected.\nThank you for applying. Unfortunately, you were not selected for this role."
	default:
		return fmt.Sprintf("Status: %s.", status)
	}
}

// SendApplicationStatus records the in-app notification for the current
// status and then attempts the email. The notification row is written even
// when the mail transport is unavailable.
func (s *EmailNotificationService) SendApplicationStatus(app *models.Application) error {
	body := StatusMessage(app.Status)

	if err := s.notifications.Create(app.ID, app.Status, body); err != nil {
		return fmt.Errorf("storing status notification: %w", err)
	}

	if app.CandidateEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("%s - update on your application for %s",
		titleCaser.String(app.Status), app.JobTitle)

	message := fmt.Sprintf(`Hello %s,

Your application for the job '%s' at %s has been updated.

%s

Submitted: %s

Best regards,
JobPortal Team
`, app.CandidateUsername, app.JobTitle, app.CompanyName, body,
		app.AppliedAt.Format("January 2, 2006 at 3:04 PM"))

	return s.send(app.CandidateEmail, subject, message)
}

func (s *EmailNotificationService) send(to, subject, body string) error {
	if s.smtp.Host == "" {
		// No transport configured: log instead of sending.
		utils.LogInfo("email notification (not sent, SMTP unconfigured)", map[string]interface{}{
			"to":      to,
			"subject": subject,
			"at":      time.Now().Format(time.RFC3339),
		})
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtp.FromEmail, to, subject, body))

	addr := s.smtp.Host + ":" + s.smtp.Port
	auth := smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)
	return smtp.SendMail(addr, auth, s.smtp.FromEmail, []string{to}, msg)
}
