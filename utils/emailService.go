package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/AshleyImmanuel/recovery-log/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Recovery Log <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #111827; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111827; line-height: 1.6; }
			.content h2 { color: #111827; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2563EB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>RECOVERY LOG</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Recovery Log. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Payment submitted
func SendPaymentReceivedEmail(email, courseTitle, transactionID string) {
	body := fmt.Sprintf(`
		<p>We have received your payment submission for <b>%s</b>.</p>
		<div class="info-box">Transaction reference: <b>%s</b></div>
		<p>Our team verifies every UPI payment manually. You will get another
		email once your payment is reviewed; this usually takes a few hours.</p>
	`, courseTitle, transactionID)

	go SendEmail([]string{email}, "Payment received - under review", getEmailTemplate("Payment Received", body))
}

// 2. Payment reviewed
func SendPaymentReviewedEmail(email, courseTitle, status string) {
	var subject, body string
	if status == "approved" {
		subject = "Payment approved - course unlocked"
		body = fmt.Sprintf(`
			<p>Your payment for <b>%s</b> has been approved.</p>
			<p>The full curriculum is now unlocked on your dashboard. Happy learning!</p>
		`, courseTitle)
	} else {
		subject = "Payment could not be verified"
		body = fmt.Sprintf(`
			<p>We could not verify your payment for <b>%s</b>.</p>
			<p>If you believe this is a mistake, reply to this email with your
			UPI transaction reference and we will take another look.</p>
		`, courseTitle)
	}

	go SendEmail([]string{email}, subject, getEmailTemplate("Payment Update", body))
}
