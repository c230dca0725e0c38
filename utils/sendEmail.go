package utils

import (
	"fmt"
	"os"
	"strconv"

	"barangay-mancruz-backend/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Initialize the SMTP mailer once and store it in a global variable
var mailer *gomail.Dialer

// InitializeMailer sets up the mailer using environment variables
func InitializeMailer() {
	mailHost := os.Getenv("SMTP_HOST")
	mailPort := os.Getenv("SMTP_PORT")
	mailUser := os.Getenv("SMTP_USER")
	mailPassword := os.Getenv("SMTP_PASSWORD")

	port, err := strconv.Atoi(mailPort)
	if err != nil {
		config.Logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", mailPort),
			zap.Error(err),
		)
		port = 25
	}

	mailer = gomail.NewDialer(mailHost, port, mailUser, mailPassword)
	config.Logger.Info("Mailer initialized successfully")
}

// GetMailer returns the initialized mailer
func GetMailer() *gomail.Dialer {
	return mailer
}

// SendReportConfirmation emails a resident the reference number of their
// freshly filed report. reportType is "complaint" or "incident". Callers
// treat a failure as a diagnostic only; confirmation mail never gates the
// submission itself.
func SendReportConfirmation(email, recipientName, referenceNumber, reportType string) error {
	if mailer == nil {
		err := fmt.Errorf("mailer is not initialized")
		config.Logger.Error("Email send failed: mailer is not initialized",
			zap.String("to_email", email),
			zap.Error(err),
		)
		return err
	}

	label := "Complaint"
	if reportType == "incident" {
		label = "Incident"
	}
	subject := fmt.Sprintf("%s Confirmation - Reference #%s", label, referenceNumber)

	trackURL := os.Getenv("BASE_FRONTEND_URL")
	if trackURL == "" {
		trackURL = "http://localhost:3000"
	}
	trackURL += "/track"

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #1e40af; color: white; padding: 20px; text-align: center;">
				<h1>Barangay Mancruz</h1>
				<p>Daet, Camarines Norte</p>
			</div>
			<div style="padding: 20px; background-color: #f9fafb;">
				<h2>Thank you for your %s report</h2>
				<p>Dear %s,</p>
				<p>We have successfully received your %s report. Here are the details:</p>
				<div style="background-color: white; padding: 15px; border-left: 4px solid #1e40af; margin: 20px 0;">
					<strong>Reference Number: %s</strong>
				</div>
				<p>Please keep this reference number for your records. You can use it to track the status of your %s at:</p>
				<p><a href="%s" style="color: #1e40af;">Track Your Report</a></p>
				<p>We will review your %s and take appropriate action. You will be notified of any updates.</p>
			</div>
		</div>
	`, reportType, recipientName, reportType, referenceNumber, reportType, trackURL, reportType)

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := mailer.DialAndSend(m); err != nil {
		config.Logger.Error("Failed to send confirmation email via SMTP",
			zap.String("to_email", email),
			zap.String("reference_number", referenceNumber),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	config.Logger.Info("Confirmation email sent",
		zap.String("to_email", email),
		zap.String("reference_number", referenceNumber),
	)
	return nil
}
