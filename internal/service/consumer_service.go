package service

import (
	"context"
	"encoding/json"

	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/websocket"
	"notes-backend/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event bus: every record event is
// written to the notification log and note events are fanned out to
// connected websocket clients.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	cs.logger.Info("ConsumerService", "Event received", map[string]interface{}{
		"event_id": evt.Id.String(),
		"type":     evt.Type,
		"data":     evt.Data,
	})

	switch evt.Type {
	case events.TypeNoteCreated, events.TypeNoteUpdated, events.TypeNoteDeleted:
		if cs.hub != nil {
			cs.hub.Broadcast(evt)
		}
	}

	msg.Ack()
}
