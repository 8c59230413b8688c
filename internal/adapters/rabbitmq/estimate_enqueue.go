package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/core/domain"
	"cost-engine-service/internal/core/port"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EstimatePublisherAdapter publishes finished PropertyEstimateEvent messages.
type EstimatePublisherAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewEstimatePublisherAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*EstimatePublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &EstimatePublisherAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

// Enqueue implements EstimateResultsQueuePort.
func (a *EstimatePublisherAdapter) Enqueue(ctx context.Context, estimate domain.PropertyEstimate) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "EstimatePublisherAdapter",
		"routing_key": a.routingKey,
		"estimate_id": estimate.ID.String(),
	})

	body, err := json.Marshal(estimate)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal estimate %s: %w", estimate.ID, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Timestamp:    time.Now(),
		MessageId:    estimate.ID.String(),
		Headers: amqp.Table{
			"event-type":    "PropertyEstimateEvent",
			"event-version": "1.0.0",
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Debug("Publishing property estimate event", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish estimate event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish estimate %s: %w", estimate.ID, err)
	}

	adapterLogger.Info("Successfully published estimate event", nil)
	return nil
}
