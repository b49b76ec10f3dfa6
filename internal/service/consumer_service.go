package service

import (
	"context"
	"encoding/json"
	"time"

	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/pkg/logger"
	"wingman-ai-be/internal/websocket"
	"wingman-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService bridges the in-process event bus to the WebSocket hub:
// domain events become push notifications for the owner (or everyone, for
// system broadcasts).
type consumerService struct {
	pubSub *gochannel.GoChannel
	hub    *websocket.Hub
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, hub *websocket.Hub, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		hub:    hub,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	topics := []string{
		events.TopicChatTurnSaved,
		events.TopicUserRegistered,
		events.TopicUserBlocked,
		events.TopicSystemBroadcast,
	}

	for _, topic := range topics {
		messages, err := cs.pubSub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func(topic string, messages <-chan *message.Message) {
			for msg := range messages {
				cs.processMessage(topic, msg)
			}
		}(topic, messages)
	}

	return nil
}

func (cs *consumerService) processMessage(topic string, msg *message.Message) {
	var envelope struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		msg.Ack() // Malformed messages are never retriable
		return
	}

	notification := cs.toNotification(envelope.Type, envelope.Data)

	if topic == events.TopicSystemBroadcast {
		cs.hub.Broadcast(notification)
		msg.Ack()
		return
	}

	userIDRaw, ok := envelope.Data["user_id"].(string)
	if !ok {
		cs.logger.Warn("Consumer", "Event without user_id, dropping", map[string]interface{}{
			"topic": topic,
			"type":  envelope.Type,
		})
		msg.Ack()
		return
	}

	userID, err := uuid.Parse(userIDRaw)
	if err != nil {
		msg.Ack()
		return
	}

	cs.hub.Send(userID, notification)
	msg.Ack()
}

func (cs *consumerService) toNotification(eventType string, data map[string]interface{}) model.Notification {
	n := model.Notification{
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now(),
	}

	switch eventType {
	case "CHAT_TURN_SAVED":
		n.Title = "New message saved"
		n.Message = "Your conversation has been updated."
	case "USER_REGISTERED":
		n.Title = "Welcome to Wingman AI"
		n.Message = "Check your inbox for the verification link."
	case "USER_BLOCKED":
		n.Title = "Account blocked"
		n.Message = "Your account has been blocked by an administrator."
	case "SYSTEM_BROADCAST":
		if title, ok := data["title"].(string); ok {
			n.Title = title
		}
		if message, ok := data["message"].(string); ok {
			n.Message = message
		}
	default:
		n.Title = eventType
	}

	return n
}
