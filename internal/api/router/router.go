package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/request-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/request-notifier/internal/api/handlers/notification"
)

func New(events *event.Handler, notifications *notification.Handler, metrics http.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/healthz", func(c *ginext.Context) {
		c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	api := e.Group("/api")
	{
		api.POST("/events", events.Envelope)
		api.POST("/events/requests/:requestId", events.RequestUpdated)
		api.POST("/events/chats/:chatId/messages", events.MessageCreated)

		api.GET("/users/:userId/notifications", notifications.List)
	}

	return e
}
