// Package tracking signs and verifies the tokens carried by open, click and
// unsubscribe links.
package tracking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	ActionOpen        = "open"
	ActionClick       = "click"
	ActionUnsubscribe = "unsubscribe"
)

var (
	ErrInvalidToken = errors.New("invalid tracking token")
	ErrEmptySecret  = errors.New("tracking secret is required")
)

type Claims struct {
	Action       string     `json:"a"`
	SubscriberID uuid.UUID  `json:"s"`
	CampaignID   *uuid.UUID `json:"c,omitempty"`
	// URL is the click-through target; only set for click tokens.
	URL string `json:"u,omitempty"`
}

type Signer struct {
	secret  []byte
	baseURL string
}

func NewSigner(secret, baseURL string) (Signer, error) {
	if secret == "" {
		return Signer{}, ErrEmptySecret
	}
	return Signer{secret: []byte(secret), baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Sign encodes the claims as base64url(json) "." base64url(hmac-sha256).
func (s Signer) Sign(claims Claims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + base64.RawURLEncoding.EncodeToString(s.mac(encoded)), nil
}

func (s Signer) Verify(token string) (Claims, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok || encoded == "" {
		return Claims{}, ErrInvalidToken
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil || !hmac.Equal(got, s.mac(encoded)) {
		return Claims{}, ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	switch claims.Action {
	case ActionOpen, ActionUnsubscribe:
	case ActionClick:
		if claims.URL == "" {
			return Claims{}, ErrInvalidToken
		}
	default:
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// URL signs the claims and returns the public tracking link for them.
func (s Signer) URL(claims Claims) (string, error) {
	token, err := s.Sign(claims)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/t/%s/%s", s.baseURL, claims.Action, token), nil
}

func (s Signer) mac(data string) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(data))
	return h.Sum(nil)
}
