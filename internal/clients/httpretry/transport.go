// Package httpretry builds the retrying http.RoundTripper that outgoing
// provider clients sit on. Retries use exponential backoff with full jitter
// and honour Retry-After.
package httpretry

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"

	"notify-server/internal/observability"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
	defaultMaxDelay   = 30 * time.Second
	minDelay          = 100 * time.Millisecond
)

type settings struct {
	baseDelay time.Duration
	maxDelay  time.Duration
}

type Option func(*settings)

func WithBaseDelay(d time.Duration) Option { return func(s *settings) { s.baseDelay = d } }
func WithMaxDelay(d time.Duration) Option  { return func(s *settings) { s.maxDelay = d } }

// New wraps base (http.DefaultTransport when nil). maxRetries counts retries
// after the first attempt; values <= 0 use the default of 3. Requests are
// retried on 429, 5xx gateway statuses and transport errors; on the last
// attempt the response is returned as-is so callers can inspect it.
func New(base http.RoundTripper, maxRetries int, logger *observability.Logger, opts ...Option) *retryablehttp.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	s := settings{baseDelay: defaultBaseDelay, maxDelay: defaultMaxDelay}
	for _, opt := range opts {
		opt(&s)
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Transport: base}
	client.RetryMax = maxRetries
	client.RetryWaitMin = s.baseDelay
	client.RetryWaitMax = s.maxDelay
	client.CheckRetry = checkRetry
	client.Backoff = jitterBackoff
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = leveledLogger{logger: logger}

	return &retryablehttp.RoundTripper{Client: client}
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return IsRetryableStatus(resp.StatusCode), nil
}

// jitterBackoff is random(0, min(max, min*2^attempt)) with a floor of 100ms,
// unless the server asked for a specific wait with Retry-After.
func jitterBackoff(base, max time.Duration, attempt int, resp *http.Response) time.Duration {
	if resp != nil && resp.Header.Get("Retry-After") != "" {
		return retryablehttp.DefaultBackoff(base, max, attempt, resp)
	}
	exp := float64(base) * math.Pow(2, float64(attempt))
	if exp > float64(max) {
		exp = float64(max)
	}
	jittered := time.Duration(rand.Float64() * exp)
	floor := minDelay
	if base < floor {
		floor = base
	}
	if jittered < floor {
		jittered = floor
	}
	return jittered
}

// IsRetryableStatus reports whether status is a transient server side failure.
func IsRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Client returns an *http.Client using t with the given timeout.
func Client(t http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{Transport: t, Timeout: timeout}
}

// leveledLogger routes retryablehttp's key/value logging into the service logger.
type leveledLogger struct {
	logger *observability.Logger
}

func (l leveledLogger) fields(keysAndValues []interface{}) (context.Context, error) {
	var fields []observability.Field
	var errValue error
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		switch v := keysAndValues[i+1].(type) {
		case error:
			errValue = v
		case *http.Request:
			fields = append(fields,
				observability.Field{Key: "host", Value: v.URL.Host},
				observability.Field{Key: "path", Value: v.URL.Path},
			)
		default:
			fields = append(fields, observability.Field{Key: key, Value: v})
		}
	}
	return observability.WithFields(context.Background(), fields...), errValue
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	ctx, err := l.fields(keysAndValues)
	l.logger.Error(ctx, msg, err)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	ctx, _ := l.fields(keysAndValues)
	l.logger.Info(ctx, msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	ctx, _ := l.fields(keysAndValues)
	l.logger.Debug(ctx, msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	ctx, _ := l.fields(keysAndValues)
	l.logger.Warn(ctx, msg)
}
