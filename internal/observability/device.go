package observability

import (
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	smartTVMarkers = []string{"smart-tv", "smarttv", "googletv", "appletv", "roku", "webos", "web0s", "tizen"}
	mobileMarkers  = []string{"mobile", "iphone", "ipod"}
)

// GetDeviceType classifies the requesting device as desktop, mobile, tablet,
// smarttv or unknown. The CloudFront mobile header wins over User-Agent parsing.
func GetDeviceType(c *gin.Context) string {
	if c.GetHeader("CloudFront-Is-Mobile-Viewer") == "true" {
		return "mobile"
	}

	ua := strings.ToLower(c.Request.UserAgent())
	if ua == "" {
		return "unknown"
	}

	// tablets first, android tablets omit "mobile"
	if strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile")) {
		return "tablet"
	}
	if containsAny(ua, smartTVMarkers) {
		return "smarttv"
	}
	if containsAny(ua, mobileMarkers) {
		return "mobile"
	}
	return "desktop"
}

// GetDeviceOS returns android, ios or other from the User-Agent.
func GetDeviceOS(c *gin.Context) string {
	ua := strings.ToLower(c.Request.UserAgent())
	switch {
	case strings.Contains(ua, "android"):
		return "android"
	case containsAny(ua, []string{"iphone", "ipad", "ipod", "ios"}):
		return "ios"
	default:
		return "other"
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
