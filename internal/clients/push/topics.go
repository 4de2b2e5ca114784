package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"notify-server/internal/clients/httpretry"
	"notify-server/internal/delivery"
	"notify-server/internal/observability"
)

type iidRequest struct {
	To                 string   `json:"to"`
	RegistrationTokens []string `json:"registration_tokens"`
}

type iidResponse struct {
	Results []struct {
		Error string `json:"error,omitempty"`
	} `json:"results"`
}

func (c *Client) SubscribeToTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error) {
	return c.changeTopic(ctx, "batchAdd", tokens, topic)
}

func (c *Client) UnsubscribeFromTopic(ctx context.Context, tokens []string, topic string) (delivery.TopicResult, error) {
	return c.changeTopic(ctx, "batchRemove", tokens, topic)
}

func (c *Client) changeTopic(ctx context.Context, action string, tokens []string, topic string) (delivery.TopicResult, error) {
	op := "iid." + action
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "topic", Value: topic},
		observability.Field{Key: "token_count", Value: len(tokens)},
	)

	body, err := json.Marshal(iidRequest{To: "/topics/" + topic, RegistrationTokens: tokens})
	if err != nil {
		return delivery.TopicResult{}, delivery.Terminal(op, err)
	}

	url := fmt.Sprintf("%s/iid/v1:%s", c.iidEndpoint, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return delivery.TopicResult{}, delivery.Terminal(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token_auth", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "topic request failed", err)
		return delivery.TopicResult{}, delivery.Retryable(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return delivery.TopicResult{}, delivery.Retryable(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := fmt.Errorf("instance id returned status %d: %s", resp.StatusCode, string(respBody))
		if httpretry.IsRetryableStatus(resp.StatusCode) {
			return delivery.TopicResult{}, delivery.Retryable(op, statusErr)
		}
		return delivery.TopicResult{}, delivery.Terminal(op, statusErr)
	}

	var parsed iidResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return delivery.TopicResult{}, delivery.Terminal(op, fmt.Errorf("failed to parse response: %w", err))
	}

	result := delivery.TopicResult{}
	for i, r := range parsed.Results {
		if r.Error != "" {
			result.FailureCount++
			result.Errors = append(result.Errors, delivery.TopicError{Index: i, Reason: r.Error})
			continue
		}
		result.SuccessCount++
	}
	// An empty results list means every token was accepted.
	if len(parsed.Results) == 0 {
		result.SuccessCount = len(tokens)
	}
	return result, nil
}
