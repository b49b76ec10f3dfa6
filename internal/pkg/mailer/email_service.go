package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/pkg/logger"
)

// EmailRecorder persists delivery outcomes so the admin panel can audit
// every message the system attempted to send.
type EmailRecorder interface {
	RecordEmail(ctx context.Context, log *entity.EmailLog) error
}

type IEmailService interface {
	SendVerificationLink(ctx context.Context, toEmail, fullName, token string) error
	SendResetLink(ctx context.Context, toEmail, fullName, token string) error
}

type EmailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	appBaseURL  string
	recorder    EmailRecorder
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, appBaseURL string, recorder EmailRecorder, log logger.ILogger) *EmailService {
	dialer := gomail.NewDialer(host, port, username, password)
	return &EmailService{
		dialer:      dialer,
		senderEmail: senderEmail,
		senderName:  senderName,
		appBaseURL:  appBaseURL,
		recorder:    recorder,
		logger:      log,
	}
}

func (s *EmailService) SendVerificationLink(ctx context.Context, toEmail, fullName, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.appBaseURL, token)
	subject := "Verify your Wingman AI account"
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif;">
			<h2>Welcome to Wingman AI, %s!</h2>
			<p>Please confirm your email address to activate your account. The link is valid for 1 hour.</p>
			<p><a href="%s" style="background-color: #4F46E5; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Verify Email</a></p>
			<p>If the button does not work, copy this URL into your browser:</p>
			<p>%s</p>
			<p>If you did not create an account, you can safely ignore this email.</p>
		</body>
		</html>
	`, fullName, link, link)

	return s.send(ctx, toEmail, subject, body, "verification")
}

func (s *EmailService) SendResetLink(ctx context.Context, toEmail, fullName, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, token)
	subject := "Reset your Wingman AI password"
	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif;">
			<h2>Hello, %s</h2>
			<p>We received a request to reset your password. The link below is valid for 1 hour and can be used once.</p>
			<p><a href="%s" style="background-color: #4F46E5; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Reset Password</a></p>
			<p>If the button does not work, copy this URL into your browser:</p>
			<p>%s</p>
			<p>If you did not request a reset, no action is needed.</p>
		</body>
		</html>
	`, fullName, link, link)

	return s.send(ctx, toEmail, subject, body, "reset")
}

func (s *EmailService) send(ctx context.Context, toEmail, subject, body, kind string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	sendErr := s.dialer.DialAndSend(m)

	record := &entity.EmailLog{
		Recipient: toEmail,
		Subject:   subject,
		Kind:      kind,
		Status:    entity.EmailStatusSent,
	}
	if sendErr != nil {
		record.Status = entity.EmailStatusFailed
		msg := sendErr.Error()
		record.Error = &msg
	}

	if s.recorder != nil {
		if recErr := s.recorder.RecordEmail(ctx, record); recErr != nil {
			s.logger.Warn("Mailer", "Failed to record email log", map[string]interface{}{
				"recipient": toEmail,
				"error":     recErr.Error(),
			})
		}
	}

	if sendErr != nil {
		s.logger.Error("Mailer", "Failed to send email", map[string]interface{}{
			"recipient": toEmail,
			"kind":      kind,
			"error":     sendErr.Error(),
		})
		return sendErr
	}

	s.logger.Info("Mailer", "Email sent", map[string]interface{}{
		"recipient": toEmail,
		"kind":      kind,
	})
	return nil
}
