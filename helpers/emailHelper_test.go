package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEmailConfigRequiresCredentials(t *testing.T) {
	t.Setenv("SMTP_EMAIL", "")
	t.Setenv("SMTP_PASSWORD", "")

	_, err := LoadEmailConfig()
	assert.Error(t, err)
}

func TestLoadEmailConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_EMAIL", "noreply@example.com")
	t.Setenv("SMTP_PASSWORD", "app-password")
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_SENDER_NAME", "")

	config, err := LoadEmailConfig()
	assert.NoError(t, err)
	assert.Equal(t, "smtp.gmail.com", config.SmtpServer)
	assert.Equal(t, "587", config.SmtpPort)
	assert.Equal(t, "noreply@example.com", config.SenderEmail)
	assert.NotEmpty(t, config.SenderName)
}
