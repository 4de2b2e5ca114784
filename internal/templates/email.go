package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Email template names
const (
	EmailCampaign                = "campaign"
	EmailWelcome                 = "welcome"
	EmailUnsubscribeConfirmation = "unsubscribe_confirmation"
	EmailDefault                 = "default"
)

// EmailData is the merge data available to email templates.
type EmailData struct {
	Subject        string
	FirstName      string
	Email          string
	BodyHTML       template.HTML
	UnsubscribeURL string
	OpenPixelURL   string
}

const emailFooter = `
{{define "footer"}}
		<hr>
		<p style="font-size: 12px; color: #888888;">
			You are receiving this email because you subscribed to updates.
			{{if .UnsubscribeURL}}<a href="{{.UnsubscribeURL}}">Unsubscribe</a>{{end}}
		</p>
		{{if .OpenPixelURL}}<img src="{{.OpenPixelURL}}" width="1" height="1" alt="" style="display:none;">{{end}}
{{end}}`

var emailTemplates = map[string]string{
	EmailCampaign: `
<html>
	<body>
		{{if .FirstName}}<p>Hi {{.FirstName}},</p>{{end}}
		{{.BodyHTML}}
		{{template "footer" .}}
	</body>
</html>`,
	EmailWelcome: `
<html>
	<body>
		<h1>Welcome{{if .FirstName}}, {{.FirstName}}{{end}}!</h1>
		<p>Thanks for subscribing. You will hear from us soon.</p>
		{{template "footer" .}}
	</body>
</html>`,
	EmailUnsubscribeConfirmation: `
<html>
	<body>
		<h1>You have been unsubscribed</h1>
		<p>{{.Email}} will no longer receive campaign emails from us.</p>
	</body>
</html>`,
	EmailDefault: `
<html>
	<body>
		<h1>{{.Subject}}</h1>
		{{.BodyHTML}}
		{{template "footer" .}}
	</body>
</html>`,
}

var parsedEmailTemplates = mustParseEmailTemplates()

func mustParseEmailTemplates() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(emailTemplates))
	for name, body := range emailTemplates {
		tmpl := template.Must(template.New(name).Parse(emailFooter))
		parsed[name] = template.Must(tmpl.Parse(body))
	}
	return parsed
}

// RenderEmail renders the named email template. Unknown names use the default template.
func RenderEmail(name string, data EmailData) (string, error) {
	tmpl, ok := parsedEmailTemplates[name]
	if !ok {
		tmpl = parsedEmailTemplates[EmailDefault]
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// HasEmail reports whether name is a built-in email template.
func HasEmail(name string) bool {
	_, ok := parsedEmailTemplates[name]
	return ok
}
