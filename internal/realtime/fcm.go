package realtime

import (
	"context"
	"encoding/json"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// MessageSender is the subset of *messaging.Client used for pushes
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMPublisher pushes events to the Firebase Cloud Messaging topic named by
// the address, so mobile clients subscribed to "user_<id>" get the same
// notifications as websocket sessions.
type FCMPublisher struct {
	sender MessageSender
	logger *zap.Logger
}

func NewFCMPublisher(sender MessageSender, logger *zap.Logger) *FCMPublisher {
	return &FCMPublisher{sender: sender, logger: logger}
}

func (p *FCMPublisher) Publish(ctx context.Context, address, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("encode fcm payload", zap.String("topic", address), zap.Error(err))
		return
	}

	msg := &messaging.Message{
		Topic: address,
		Data: map[string]string{
			"event":   event,
			"payload": string(data),
		},
	}
	id, err := p.sender.Send(ctx, msg)
	if err != nil {
		p.logger.Warn("fcm push failed", zap.String("topic", address), zap.Error(err))
		return
	}
	p.logger.Debug("fcm push sent", zap.String("topic", address), zap.String("message_id", id))
}
