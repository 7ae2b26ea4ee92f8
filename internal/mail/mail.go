// Package mail delivers transactional notifications through sendgrid.
package mail

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/atlasdigitalize/atlas-website-backend/internal/dependency"
	"github.com/atlasdigitalize/atlas-website-backend/internal/entity"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const contactNotificationTemplate = "templates/contact_notification.gohtml"

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	// NotifyEmail receives the contact form notifications.
	NotifyEmail string `mapstructure:"notify_email"`
}

type Mailer struct {
	cli     *sendgrid.Client
	from    *sgmail.Email
	c       *Config
	contact *template.Template
}

// New creates a new mailer.
func New(c *Config) (dependency.Mailer, error) {
	if c.APIKey == "" || c.FromEmail == "" || c.FromName == "" || c.NotifyEmail == "" {
		return nil, fmt.Errorf("incomplete config: %+v", c)
	}

	tmpl, err := template.ParseFS(templatesFS, contactNotificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing template: %w", err)
	}

	return &Mailer{
		cli:     sendgrid.NewSendClient(c.APIKey),
		from:    sgmail.NewEmail(c.FromName, c.FromEmail),
		c:       c,
		contact: tmpl,
	}, nil
}

type contactTemplateData struct {
	Name        string
	Email       string
	Company     string
	Phone       string
	Service     string
	Language    string
	Message     string
	SubmittedAt string
}

// SendContactNotification emails the new lead to the configured inbox.
func (m *Mailer) SendContactNotification(ctx context.Context, contact *entity.Contact) error {
	body := &strings.Builder{}
	err := m.contact.Execute(body, contactTemplateData{
		Name:        contact.Name,
		Email:       contact.Email,
		Company:     contact.Company,
		Phone:       contact.Phone,
		Service:     contact.Service,
		Language:    contact.Language,
		Message:     contact.Message,
		SubmittedAt: contact.CreatedAt.Format(time.RFC1123),
	})
	if err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	subject := fmt.Sprintf("New contact from %s", contact.Name)
	to := sgmail.NewEmail("", m.c.NotifyEmail)
	msg := sgmail.NewSingleEmail(m.from, subject, to, "", body.String())
	msg.ReplyTo = sgmail.NewEmail(contact.Name, contact.Email)

	resp, err := m.cli.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("error sending email bad status code: %d body: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
