package mail

import (
	"context"
	"errors"
	"fmt"

	"notify-server/internal/delivery"
	"notify-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrNoRecipient = errors.New("email recipient is required")

// emailSender is the part of the Resend emails service the client uses.
type emailSender interface {
	Send(params *resend.SendEmailRequest) (resend.SendEmailResponse, error)
}

type ResendClient struct {
	emails emailSender
	from   string
	logger *observability.Logger
}

func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		emails: client.Emails,
		from:   from,
		logger: logger,
	}, nil
}

// SendEmail sends one HTML email and returns the Resend message id.
// Provider failures are retryable delivery errors.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", delivery.Terminal("resend.send", ErrNoRecipient)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	res, err := c.emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", delivery.Retryable("resend.send", fmt.Errorf("failed to send email: %w", err))
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
