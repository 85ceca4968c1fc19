package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redditpersona/persona-bot/internal/config"
	"github.com/redditpersona/persona-bot/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service delivers generated personas via the configured channels: a JSON
// webhook, an email report, or both.
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements NotificationInterface
var _ NotificationInterface = (*Service)(nil)

// webhookPayload is the JSON body posted to the configured webhook.
type webhookPayload struct {
	Username        string          `json:"username"`
	GeneratedAt     time.Time       `json:"generated_at"`
	RecordsAnalyzed int             `json:"records_analyzed"`
	Persona         *models.Persona `json:"persona"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendPersona delivers the persona via every configured channel and collects
// per-channel failures into one error.
func (s *Service) SendPersona(persona *models.Persona, reportText string) error {
	var errors []string

	if s.config.WebhookURL != "" {
		if err := s.sendToWebhook(persona); err != nil {
			logrus.Errorf("Failed to send webhook notification: %v", err)
			errors = append(errors, fmt.Sprintf("Webhook: %v", err))
		} else {
			logrus.Infof("Successfully posted persona for %s to webhook", persona.Username)
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(persona, reportText); err != nil {
			logrus.Errorf("Failed to send email notification: %v", err)
			errors = append(errors, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Infof("Successfully emailed persona for %s", persona.Username)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (s *Service) sendToWebhook(persona *models.Persona) error {
	payload := &webhookPayload{
		Username:        persona.Username,
		GeneratedAt:     persona.GeneratedAt,
		RecordsAnalyzed: persona.RecordsAnalyzed,
		Persona:         persona,
	}

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.config.WebhookURL)

	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) sendEmail(persona *models.Persona, reportText string) error {
	subject := fmt.Sprintf("Persona Report - %s (%d records analyzed)",
		persona.Username, persona.RecordsAnalyzed)

	htmlBody, err := s.buildEmailHTML(persona)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", reportText)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(persona *models.Persona) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Persona Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #ff4500; color: white; padding: 20px; border-radius: 5px; }
        .section { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .field { font-weight: bold; }
        .list { margin: 5px 0 5px 20px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>User Persona: {{.Username}}</h1>
        <p>Generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}} from {{.RecordsAnalyzed}} records</p>
    </div>

    <div class="section">
        <h2>Basic Information</h2>
        <p><span class="field">Age Range:</span> {{.BasicInfo.AgeRange}}</p>
        <p><span class="field">Gender:</span> {{.BasicInfo.Gender}}</p>
        <p><span class="field">Location:</span> {{.BasicInfo.Location}}</p>
        <p><span class="field">Occupation:</span> {{.BasicInfo.Occupation}}</p>
    </div>

    <div class="section">
        <h2>Profile</h2>
        <p><span class="field">Communication Style:</span> {{.CommunicationStyle}}</p>
        <p><span class="field">Technology Usage:</span> {{.TechnologyUsage}}</p>
        <p><span class="field">Social Behavior:</span> {{.SocialBehavior}}</p>
        <p><span class="field">Lifestyle:</span> {{.Lifestyle}}</p>
    </div>

    {{if .Interests}}
    <div class="section">
        <h2>Interests and Hobbies</h2>
        {{range .Interests}}<div class="list">{{.}}</div>{{end}}
    </div>
    {{end}}

    {{if .PersonalityTraits}}
    <div class="section">
        <h2>Personality Traits</h2>
        {{range .PersonalityTraits}}<div class="list">{{.}}</div>{{end}}
    </div>
    {{end}}

    {{if .ValuesAndBeliefs}}
    <div class="section">
        <h2>Values and Beliefs</h2>
        {{range .ValuesAndBeliefs}}<div class="list">{{.}}</div>{{end}}
    </div>
    {{end}}

    {{if .Goals}}
    <div class="section">
        <h2>Goals and Aspirations</h2>
        {{range .Goals}}<div class="list">{{.}}</div>{{end}}
    </div>
    {{end}}

    {{if .Challenges}}
    <div class="section">
        <h2>Challenges and Pain Points</h2>
        {{range .Challenges}}<div class="list">{{.}}</div>{{end}}
    </div>
    {{end}}

    <hr>
    <p><small>This report was generated automatically by the Persona Bot.</small></p>
</body>
</html>
`

	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, persona); err != nil {
		return "", err
	}

	return buf.String(), nil
}
