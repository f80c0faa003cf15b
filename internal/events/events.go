package events

import (
	"context"
	"encoding/json"

	"notekeeper-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const EntityEventsTopic = "entity-events"

// EntityEvent records a successful mutation of a folder or note.
type EntityEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	Id     uint   `json:"id"`
}

// NewBus builds the in-process gochannel pub/sub shared by publisher and
// consumer.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
}

// AuditPublisher emits entity-change events after writes commit. Publish
// failures are logged, never surfaced: the write already applied and must
// not be reported as failed.
type AuditPublisher struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewAuditPublisher(publisher message.Publisher, log logger.ILogger) *AuditPublisher {
	return &AuditPublisher{
		publisher: publisher,
		logger:    log,
	}
}

func (p *AuditPublisher) Publish(entity, action string, id uint) {
	payload, err := json.Marshal(EntityEvent{Entity: entity, Action: action, Id: id})
	if err != nil {
		p.logger.Warn("events", "failed to marshal entity event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.publisher.Publish(EntityEventsTopic, msg); err != nil {
		p.logger.Warn("events", "failed to publish entity event", map[string]interface{}{
			"error":  err.Error(),
			"entity": entity,
			"action": action,
		})
	}
}

// AuditConsumer drains entity-change events into the log.
type AuditConsumer struct {
	subscriber message.Subscriber
	logger     logger.ILogger
}

func NewAuditConsumer(subscriber message.Subscriber, log logger.ILogger) *AuditConsumer {
	return &AuditConsumer{
		subscriber: subscriber,
		logger:     log,
	}
}

func (c *AuditConsumer) Run(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, EntityEventsTopic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event EntityEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			c.logger.Warn("events", "dropping malformed entity event", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		c.logger.Info("events", "entity event", map[string]interface{}{
			"entity": event.Entity,
			"action": event.Action,
			"id":     event.Id,
		})
		msg.Ack()
	}
	return nil
}
