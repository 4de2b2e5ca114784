// Package push talks to Firebase Cloud Messaging over the HTTP v1 API.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"notify-server/internal/clients/httpretry"
	"notify-server/internal/delivery"
	"notify-server/internal/observability"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

const (
	defaultIIDEndpoint = "https://iid.googleapis.com"
	androidChannelID   = "clutch_notifications"
	defaultClickAction = "FLUTTER_NOTIFICATION_CLICK"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
	MaxRetries      int
	Timeout         time.Duration
	// Endpoint and IIDEndpoint override the Google hosts.
	Endpoint    string
	IIDEndpoint string
	// HTTPClient replaces the credentialed client; it is used as-is.
	HTTPClient *http.Client
}

type Client struct {
	svc         *fcm.Service
	httpClient  *http.Client
	projectID   string
	iidEndpoint string
	logger      *observability.Logger
}

func New(ctx context.Context, cfg Config, logger *observability.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("fcm project id is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		creds, err := loadCredentials(ctx, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: creds.TokenSource,
				Base:   httpretry.New(http.DefaultTransport, cfg.MaxRetries, logger),
			},
		}
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := fcm.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}

	iid := cfg.IIDEndpoint
	if iid == "" {
		iid = defaultIIDEndpoint
	}

	return &Client{
		svc:         svc,
		httpClient:  httpClient,
		projectID:   cfg.ProjectID,
		iidEndpoint: strings.TrimSuffix(iid, "/"),
		logger:      logger,
	}, nil
}

func loadCredentials(ctx context.Context, file string) (*google.Credentials, error) {
	if file == "" {
		creds, err := google.FindDefaultCredentials(ctx, messagingScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w", err)
		}
		return creds, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return creds, nil
}

// Send delivers one message and returns the provider message name.
// Failures are returned as *delivery.Error.
func (c *Client) Send(ctx context.Context, msg delivery.PushMessage) (string, error) {
	payload, err := buildMessage(msg)
	if err != nil {
		return "", delivery.Terminal("fcm.send", err)
	}

	resp, err := c.svc.Projects.Messages.
		Send("projects/"+c.projectID, &fcm.SendMessageRequest{Message: payload}).
		Context(ctx).
		Do()
	if err != nil {
		return "", classify("fcm.send", err)
	}
	return resp.Name, nil
}

func buildMessage(msg delivery.PushMessage) (*fcm.Message, error) {
	aps := map[string]interface{}{
		"aps": map[string]interface{}{
			"sound":           msg.Sound,
			"badge":           1,
			"category":        msg.Type,
			"mutable-content": 1,
		},
	}
	apsPayload, err := json.Marshal(aps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal apns payload: %w", err)
	}

	clickAction := msg.ClickAction
	if clickAction == "" {
		clickAction = defaultClickAction
	}

	return &fcm.Message{
		Token: msg.Token,
		Topic: msg.Topic,
		Notification: &fcm.Notification{
			Title: msg.Title,
			Body:  msg.Body,
			Image: msg.ImageURL,
		},
		Data: msg.Data,
		Android: &fcm.AndroidConfig{
			Priority: "HIGH",
			Notification: &fcm.AndroidNotification{
				ChannelId:   androidChannelID,
				Sound:       msg.Sound,
				Color:       msg.Color,
				Icon:        msg.Icon,
				Tag:         msg.Type,
				ClickAction: clickAction,
			},
		},
		Apns: &fcm.ApnsConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: googleapi.RawMessage(apsPayload),
		},
	}, nil
}

// classify maps FCM and transport errors onto delivery kinds.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusNotFound, isTokenError(gerr):
			return delivery.InvalidToken(op, err)
		case httpretry.IsRetryableStatus(gerr.Code), gerr.Code >= 500:
			return delivery.Retryable(op, err)
		default:
			return delivery.Terminal(op, err)
		}
	}
	return delivery.Retryable(op, err)
}

func isTokenError(gerr *googleapi.Error) bool {
	if gerr.Code != http.StatusBadRequest {
		return false
	}
	text := strings.ToLower(gerr.Message + " " + gerr.Body)
	return strings.Contains(text, "registration token") || strings.Contains(text, "unregistered")
}
