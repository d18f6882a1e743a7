package helpers

import (
	"fmt"
	"net/smtp"
	"os"
)

// EmailConfig holds SMTP configuration, sourced from the environment so
// credentials never live in code.
type EmailConfig struct {
	SmtpServer  string
	SmtpPort    string
	SenderEmail string
	SenderPass  string
	SenderName  string
}

func LoadEmailConfig() (*EmailConfig, error) {
	config := &EmailConfig{
		SmtpServer:  os.Getenv("SMTP_SERVER"),
		SmtpPort:    os.Getenv("SMTP_PORT"),
		SenderEmail: os.Getenv("SMTP_EMAIL"),
		SenderPass:  os.Getenv("SMTP_PASSWORD"),
		SenderName:  os.Getenv("SMTP_SENDER_NAME"),
	}

	if config.SmtpServer == "" {
		config.SmtpServer = "smtp.gmail.com"
	}
	if config.SmtpPort == "" {
		config.SmtpPort = "587"
	}
	if config.SenderName == "" {
		config.SenderName = "CaterEase"
	}

	if config.SenderEmail == "" {
		return nil, fmt.Errorf("SMTP_EMAIL environment variable not set")
	}
	if config.SenderPass == "" {
		return nil, fmt.Errorf("SMTP_PASSWORD environment variable not set")
	}

	return config, nil
}

// Send delivers a plain-text email through the configured SMTP server.
func (config *EmailConfig) Send(to string, subject string, text string) error {
	from := fmt.Sprintf("%s <%s>", config.SenderName, config.SenderEmail)
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, text)

	auth := smtp.PlainAuth("", config.SenderEmail, config.SenderPass, config.SmtpServer)
	err := smtp.SendMail(
		config.SmtpServer+":"+config.SmtpPort,
		auth,
		config.SenderEmail,
		[]string{to},
		[]byte(message),
	)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
