package service

import (
	"context"

	"content-variation-be/internal/pkg/logger"
	"content-variation-be/internal/websocket"
	"content-variation-be/pkg/events"
	pktNats "content-variation-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification websocket.Notification)
	Broadcast(notification websocket.Notification)
}

// NotificationService bridges the NATS event stream to websocket clients:
// every workflow lifecycle event becomes a push to the user it belongs to.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("workflow.>", "notification-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to workflow.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	notification := websocket.Notification{
		EventType: event.EventType(),
		Data:      payload,
	}

	// Events carry user_id only for authenticated sessions. Anonymous ones
	// have no socket owner to target.
	userIdStr, _ := payload["user_id"].(string)
	if userIdStr == "" {
		return nil
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Event carries malformed user_id", map[string]interface{}{"user_id": userIdStr})
		return nil
	}

	s.delivery.Send(userId, notification)
	return nil
}
