package notification

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/api/dto"
	"github.com/aliskhannn/request-notifier/internal/api/respond"
	"github.com/aliskhannn/request-notifier/internal/model"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// notificationStore reads a user's in-app notifications.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationStore interface {
	Query(ctx context.Context, userID string, filter model.NotificationFilter, limit int) ([]model.Notification, error)
}

// Handler serves the in-app notification feed.
type Handler struct {
	store notificationStore
}

func NewHandler(s notificationStore) *Handler {
	return &Handler{store: s}
}

// List handles GET /api/users/:userId/notifications.
//
// Query parameters: type (status|chat), sender, unread (bool), limit.
func (h *Handler) List(c *ginext.Context) {
	userID := c.Param("userId")
	if userID == "" {
		zlog.Logger.Warn().Msg("missing user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	filter := model.NotificationFilter{
		Type:     model.NotificationType(c.Query("type")),
		SenderID: c.Query("sender"),
	}
	if filter.Type != "" && filter.Type != model.TypeStatus && filter.Type != model.TypeChat {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid type %q", filter.Type))
		return
	}

	if raw := c.Query("unread"); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid unread flag"))
			return
		}
		filter.UnreadOnly = unread
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = min(n, maxLimit)
	}

	list, err := h.store.Query(c.Request.Context(), userID, filter, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NewNotificationResponse(n))
	}

	respond.OK(c.Writer, out)
}
