package mailer

import (
	"strings"
	"testing"

	"github.com/myvegiz/backend/internal/domain/content"
	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	settings := &content.EmailSetting{
		FromName:  "MyVegiz",
		FromEmail: "noreply@example.com",
	}

	msg := string(buildMessage(settings, "ops@example.com", "Test email", "Hello"))

	assert.True(t, strings.HasPrefix(msg, "From: MyVegiz <noreply@example.com>\r\n"))
	assert.Contains(t, msg, "To: ops@example.com\r\n")
	assert.Contains(t, msg, "Subject: Test email\r\n")
	assert.Contains(t, msg, "\r\n\r\nHello\r\n")
}
