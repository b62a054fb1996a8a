// Package gmail maps domain drafts onto the Gmail API.
package gmail

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"google.golang.org/api/gmail/v1"

	"github.com/onboardai/onboard/internal/core/domain"
)

// BuildRawMessage renders d as an RFC 2822 plain-text message and encodes it
// base64url, the form Gmail expects in Message.Raw.
func BuildRawMessage(d domain.MailDraft) string {
	var b strings.Builder
	if d.From != "" {
		fmt.Fprintf(&b, "From: %s\r\n", d.From)
	}
	if d.To != "" {
		fmt.Fprintf(&b, "To: %s\r\n", d.To)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", d.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(d.Body, "\n", "\r\n"))

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// ToAPIDraft wraps d in a Gmail draft resource.
func ToAPIDraft(d domain.MailDraft) *gmail.Draft {
	return &gmail.Draft{
		Message: &gmail.Message{Raw: BuildRawMessage(d)},
	}
}
