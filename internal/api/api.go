package api

import (
	"net/http"

	analyticsHandler "notify-server/internal/analytics/handler"
	automationsHandler "notify-server/internal/automations/handler"
	campaignHandler "notify-server/internal/campaign/handler"
	devicesHandler "notify-server/internal/devices/handler"
	engagementHandler "notify-server/internal/engagement/handler"
	notificationsHandler "notify-server/internal/notifications/handler"
	segmentsHandler "notify-server/internal/segments/handler"
	subscribersHandler "notify-server/internal/subscribers/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Subscribers   subscribersHandler.Handler
	Segments      segmentsHandler.Handler
	Campaigns     campaignHandler.Handler
	Engagement    engagementHandler.Handler
	Devices       devicesHandler.Handler
	Notifications notificationsHandler.Handler
	Analytics     analyticsHandler.Handler
	Automations   automationsHandler.Handler
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	tracking []gin.HandlerFunc
}

// New builds the route table. trackingMiddleware runs in front of the
// public /t routes only.
func New(router *gin.RouterGroup, handlers Handlers, trackingMiddleware ...gin.HandlerFunc) API {
	return API{
		router:   router,
		handlers: handlers,
		tracking: trackingMiddleware,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Links embedded in outgoing email
	trackGroup := a.router.Group("/t", a.tracking...)
	{
		trackGroup.GET("/open/:token", a.handlers.Engagement.HandleOpen)
		trackGroup.GET("/click/:token", a.handlers.Engagement.HandleClick)
		trackGroup.GET("/unsubscribe/:token", a.handlers.Engagement.HandleUnsubscribe)
	}

	apiGroup := a.router.Group("/api/v1")
	{
		subscriberGroup := apiGroup.Group("/subscribers")
		subscriberGroup.POST("", a.handlers.Subscribers.HandleAddSubscriber)
		subscriberGroup.POST("/unsubscribe", a.handlers.Subscribers.HandleUnsubscribe)
		subscriberGroup.GET("/:subscriber_id", a.handlers.Subscribers.HandleGetSubscriber)
		subscriberGroup.PATCH("/:subscriber_id", a.handlers.Subscribers.HandleUpdateSubscriber)
		subscriberGroup.POST("/:subscriber_id/segments", a.handlers.Subscribers.HandleAddToSegments)
		subscriberGroup.GET("/:subscriber_id/analytics", a.handlers.Analytics.HandleGetSubscriberAnalytics)
	}
	{
		segmentGroup := apiGroup.Group("/segments")
		segmentGroup.POST("", a.handlers.Segments.HandleCreateSegment)
		segmentGroup.GET("", a.handlers.Segments.HandleListSegments)
		segmentGroup.GET("/:segment_id", a.handlers.Segments.HandleGetSegment)
		segmentGroup.POST("/:segment_id/refresh", a.handlers.Segments.HandleRefreshSegment)
	}
	{
		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.handlers.Campaigns.HandleCreateCampaign)
		campaignGroup.GET("", a.handlers.Campaigns.HandleListCampaigns)
		campaignGroup.GET("/:campaign_id", a.handlers.Campaigns.HandleGetCampaign)
		campaignGroup.POST("/:campaign_id/send", a.handlers.Campaigns.HandleSendCampaign)
		campaignGroup.POST("/:campaign_id/schedule", a.handlers.Campaigns.HandleScheduleCampaign)
		campaignGroup.GET("/:campaign_id/analytics", a.handlers.Campaigns.HandleGetCampaignAnalytics)
	}
	{
		automationGroup := apiGroup.Group("/automations")
		automationGroup.POST("", a.handlers.Automations.HandleCreateAutomation)
		automationGroup.GET("", a.handlers.Automations.HandleListAutomations)
		automationGroup.GET("/:automation_id", a.handlers.Automations.HandleGetAutomation)
		automationGroup.POST("/:automation_id/trigger", a.handlers.Automations.HandleTriggerAutomation)
	}
	apiGroup.POST("/engagement", a.handlers.Engagement.HandleTrackEngagement)
	{
		apiGroup.POST("/devices", a.handlers.Devices.HandleRegisterDevice)
		apiGroup.DELETE("/devices", a.handlers.Devices.HandleUnregisterDevice)
		apiGroup.GET("/users/:user_id/devices", a.handlers.Devices.HandleListUserDevices)
		apiGroup.POST("/topics/:topic/subscribe", a.handlers.Devices.HandleSubscribeToTopic)
		apiGroup.POST("/topics/:topic/unsubscribe", a.handlers.Devices.HandleUnsubscribeFromTopic)
	}
	{
		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.POST("/device", a.handlers.Notifications.HandleSendToDevice)
		notificationGroup.POST("/multicast", a.handlers.Notifications.HandleSendToMultipleDevices)
		notificationGroup.POST("/topic", a.handlers.Notifications.HandleSendToTopic)
		notificationGroup.POST("/user", a.handlers.Notifications.HandleSendToUser)
		notificationGroup.GET("/analytics", a.handlers.Analytics.HandleGetNotificationAnalytics)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
