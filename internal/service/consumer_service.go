package service

import (
	"context"
	"encoding/json"
	"time"

	"amdlingo-be/internal/dto"
	"amdlingo-be/internal/pkg/logger"
	"amdlingo-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const consumerModule = "ConsumerService"

type IConsumerService interface {
	// Consume blocks until ctx is done or the subscription closes.
	Consume(ctx context.Context) error
}

// EventForwarder is satisfied by *nats.Publisher.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder EventForwarder
	logger    logger.ILogger
}

// NewConsumerService reads analysis messages from the in-process bus. When
// forwarder is nil events are only logged.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	for msg := range messages {
		cs.processMessage(ctx, msg)
	}
	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AnalysisCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info(consumerModule, "Analysis completed", map[string]interface{}{
		"session_id": payload.SessionID,
		"mode":       payload.Mode,
		"endpoint":   payload.Endpoint,
		"latency_ms": payload.LatencyMs,
	})

	if cs.forwarder != nil {
		evt := events.NewAnalysisCompleted(
			payload.SessionID,
			payload.Mode,
			payload.Endpoint,
			time.Duration(payload.LatencyMs)*time.Millisecond,
			time.Now(),
		)
		// Forwarding is auxiliary; a bus outage must not redeliver forever.
		if err := cs.forwarder.Publish(ctx, evt); err != nil {
			cs.logger.Warn(consumerModule, "Failed to forward event", map[string]interface{}{
				"session_id": payload.SessionID,
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}
