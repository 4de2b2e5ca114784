// Package email is the email delivery channel: it renders campaign and
// lifecycle emails, embeds signed tracking links and sends through Resend.
package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"regexp"

	"notify-server/internal/delivery"
	"notify-server/internal/observability"
	"notify-server/internal/store"
	"notify-server/internal/templates"
	"notify-server/internal/tracking"

	"github.com/google/uuid"
)

var ErrSubscriberInactive = errors.New("subscriber is not active")

var hrefPattern = regexp.MustCompile(`href="(https?://[^"]+)"`)

type Mailer interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

type LinkSigner interface {
	URL(claims tracking.Claims) (string, error)
}

type Service struct {
	mailer Mailer
	links  LinkSigner
	logger *observability.Logger
}

func New(mailer Mailer, links LinkSigner, logger *observability.Logger) *Service {
	return &Service{
		mailer: mailer,
		links:  links,
		logger: logger,
	}
}

// SendCampaignEmail renders the campaign for one subscriber and returns the
// provider message id. Links in the body are rewritten to click tracking links.
func (s *Service) SendCampaignEmail(ctx context.Context, campaign store.Campaign, subscriber store.Subscriber) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "subscriber_id", Value: subscriber.ID},
	)
	if subscriber.Status != store.SubscriberStatusActive {
		return "", delivery.Terminal("email.campaign", ErrSubscriberInactive)
	}

	campaignID := campaign.ID
	body, err := s.trackLinks(campaign.Body, subscriber.ID, &campaignID)
	if err != nil {
		return "", delivery.Terminal("email.campaign", err)
	}
	data, err := s.trackingData(subscriber, &campaignID)
	if err != nil {
		return "", delivery.Terminal("email.campaign", err)
	}
	data.Subject = campaign.Subject
	data.BodyHTML = template.HTML(body)

	name := campaign.TemplateName
	if name == "" {
		name = templates.EmailCampaign
	}
	rendered, err := templates.RenderEmail(name, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render campaign email", err)
		return "", delivery.Terminal("email.campaign", err)
	}

	messageID, err := s.mailer.SendEmail(ctx, subscriber.Email, campaign.Subject, rendered)
	if err != nil {
		s.logger.Error(ctx, "failed to send campaign email", err)
		return "", err
	}
	return messageID, nil
}

// AutomationEmail is a send_email step addressed to one subscriber. Content is
// an html/template executed with the subscriber's FirstName, LastName and
// Email and the run's trigger data under .Trigger.
type AutomationEmail struct {
	AutomationID uuid.UUID
	TemplateName string
	Subject      string
	Content      string
	TriggerData  map[string]interface{}
}

type automationContent struct {
	FirstName string
	LastName  string
	Email     string
	Trigger   map[string]interface{}
}

func (s *Service) SendAutomationEmail(ctx context.Context, msg AutomationEmail, subscriber store.Subscriber) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "automation_id", Value: msg.AutomationID},
		observability.Field{Key: "subscriber_id", Value: subscriber.ID},
	)
	if subscriber.Status != store.SubscriberStatusActive {
		return "", delivery.Terminal("email.automation", ErrSubscriberInactive)
	}

	content, err := renderContent(msg.Content, subscriber, msg.TriggerData)
	if err != nil {
		return "", delivery.Terminal("email.automation", err)
	}
	body, err := s.trackLinks(content, subscriber.ID, nil)
	if err != nil {
		return "", delivery.Terminal("email.automation", err)
	}
	data, err := s.trackingData(subscriber, nil)
	if err != nil {
		return "", delivery.Terminal("email.automation", err)
	}
	data.Subject = msg.Subject
	data.BodyHTML = template.HTML(body)

	name := msg.TemplateName
	if name == "" {
		name = templates.EmailCampaign
	}
	rendered, err := templates.RenderEmail(name, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render automation email", err)
		return "", delivery.Terminal("email.automation", err)
	}

	messageID, err := s.mailer.SendEmail(ctx, subscriber.Email, msg.Subject, rendered)
	if err != nil {
		s.logger.Error(ctx, "failed to send automation email", err)
		return "", err
	}
	return messageID, nil
}

func renderContent(content string, subscriber store.Subscriber, trigger map[string]interface{}) (string, error) {
	tmpl, err := template.New("content").Parse(content)
	if err != nil {
		return "", fmt.Errorf("invalid automation content: %w", err)
	}
	data := automationContent{Email: subscriber.Email, Trigger: trigger}
	if subscriber.FirstName != nil {
		data.FirstName = *subscriber.FirstName
	}
	if subscriber.LastName != nil {
		data.LastName = *subscriber.LastName
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render automation content: %w", err)
	}
	return buf.String(), nil
}

func (s *Service) SendWelcomeEmail(ctx context.Context, subscriber store.Subscriber) error {
	data, err := s.trackingData(subscriber, nil)
	if err != nil {
		return err
	}
	data.OpenPixelURL = ""
	return s.sendLifecycle(ctx, subscriber.Email, "Welcome!", templates.EmailWelcome, data)
}

func (s *Service) SendUnsubscribeConfirmation(ctx context.Context, emailAddress string) error {
	return s.sendLifecycle(ctx, emailAddress, "You have been unsubscribed", templates.EmailUnsubscribeConfirmation, templates.EmailData{Email: emailAddress})
}

func (s *Service) sendLifecycle(ctx context.Context, to, subject, name string, data templates.EmailData) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_template", Value: name})
	data.Subject = subject
	rendered, err := templates.RenderEmail(name, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render email", err)
		return err
	}
	if _, err := s.mailer.SendEmail(ctx, to, subject, rendered); err != nil {
		s.logger.Error(ctx, "failed to send email", err)
		return err
	}
	return nil
}

func (s *Service) trackingData(subscriber store.Subscriber, campaignID *uuid.UUID) (templates.EmailData, error) {
	unsubscribeURL, err := s.links.URL(tracking.Claims{Action: tracking.ActionUnsubscribe, SubscriberID: subscriber.ID, CampaignID: campaignID})
	if err != nil {
		return templates.EmailData{}, fmt.Errorf("failed to sign unsubscribe link: %w", err)
	}
	openURL, err := s.links.URL(tracking.Claims{Action: tracking.ActionOpen, SubscriberID: subscriber.ID, CampaignID: campaignID})
	if err != nil {
		return templates.EmailData{}, fmt.Errorf("failed to sign open link: %w", err)
	}

	data := templates.EmailData{
		Email:          subscriber.Email,
		UnsubscribeURL: unsubscribeURL,
		OpenPixelURL:   openURL,
	}
	if subscriber.FirstName != nil {
		data.FirstName = *subscriber.FirstName
	}
	return data, nil
}

func (s *Service) trackLinks(body string, subscriberID uuid.UUID, campaignID *uuid.UUID) (string, error) {
	var signErr error
	out := hrefPattern.ReplaceAllStringFunc(body, func(match string) string {
		target := hrefPattern.FindStringSubmatch(match)[1]
		link, err := s.links.URL(tracking.Claims{
			Action:       tracking.ActionClick,
			SubscriberID: subscriberID,
			CampaignID:   campaignID,
			URL:          html.UnescapeString(target),
		})
		if err != nil {
			signErr = err
			return match
		}
		return `href="` + link + `"`
	})
	if signErr != nil {
		return "", fmt.Errorf("failed to sign click link: %w", signErr)
	}
	return out, nil
}
