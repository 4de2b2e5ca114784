package ratelimit

import (
	"fmt"

	"notify-server/internal/apierrors"
	"notify-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// ByClientIP limits requests per client IP within the route group it is
// attached to. A failed check lets the request through.
func (s *Service) ByClientIP(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "client_ip", Value: c.ClientIP()},
		)

		result, err := s.Check(ctx, scope+":"+c.ClientIP(), limit)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}
