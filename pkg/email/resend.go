package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
)

// ContactNotification is what the team receives when a visitor writes in.
type ContactNotification struct {
	ID      string
	Name    string
	Email   string
	Message string
	Source  string
}

type EmailService struct {
	client *resend.Client
	from   string
	to     string
}

func NewEmailService(apiKey, from, to string) *EmailService {
	return &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (s *EmailService) SendContactNotification(ctx context.Context, n ContactNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, html, err := renderContactNotification(n)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    "Ascendia <" + s.from + ">",
		To:      []string{s.to},
		Subject: subject,
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New contact message</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
{{if .Source}}<p><strong>Source:</strong> {{.Source}}</p>{{end}}
<p style="white-space: pre-wrap">{{.Message}}</p>
<p style="color:#888">Message ID {{.ID}} &middot; {{.Year}}</p>
`))

func renderContactNotification(n ContactNotification) (string, string, error) {
	data := map[string]interface{}{
		"ID":      n.ID,
		"Name":    n.Name,
		"Email":   n.Email,
		"Message": n.Message,
		"Source":  n.Source,
		"Year":    time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render contact notification: %w", err)
	}
	return "New contact message from " + n.Name, buf.String(), nil
}
