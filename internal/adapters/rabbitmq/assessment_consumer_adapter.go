package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"cost-engine-service/internal/contextkeys"
	"cost-engine-service/internal/contracts"
	"cost-engine-service/internal/core/port"
	"cost-engine-service/internal/core/port/usecases_port"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_common"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AssessmentConsumerAdapter is the incoming adapter listening for
// RoomAssessmentEvent messages and feeding them into the estimation use case.
type AssessmentConsumerAdapter struct {
	consumer rabbitmq_consumer.Consumer
	useCase  usecases_port.EstimatePropertyUseCase
	logger   port.LoggerPort
}

func NewAssessmentConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.EstimatePropertyUseCase,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*AssessmentConsumerAdapter, error) {

	adapter := &AssessmentConsumerAdapter{
		useCase: useCase,
		logger:  logger,
	}

	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_assessment_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(consumerCfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for room assessments: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

// messageHandler processes a single assessment event. A returned error sends
// the delivery through the retry loop (and eventually the final DLQ).
func (a *AssessmentConsumerAdapter) messageHandler(d amqp.Delivery) error {
	traceID, _ := d.Headers["x-trace-id"].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"message_id":   d.MessageId,
		"adapter_name": "AssessmentConsumerAdapter",
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)
	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		msgLogger.Error("Message failed schema validation. Rejecting.", err, port.Fields{
			"event_type":    eventType,
			"event_version": eventVersion,
		})
		return err
	}

	var dto RoomAssessmentEventDTO
	if err := json.Unmarshal(d.Body, &dto); err != nil {
		return fmt.Errorf("failed to unmarshal room assessment event: %w", err)
	}

	assessment, err := dto.ToDomain()
	if err != nil {
		msgLogger.Error("Event could not be translated to domain. Rejecting.", err, nil)
		return err
	}

	msgLogger.Info("Processing room assessment event", port.Fields{
		"property_id": assessment.PropertyID,
		"room_count":  len(assessment.Rooms),
	})

	if _, err := a.useCase.Execute(ctx, assessment); err != nil {
		msgLogger.Error("Estimate use case failed, the message will be retried.", err, nil)
		return err
	}

	return nil
}

// Start implements EventListenerPort.
func (a *AssessmentConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

// Close implements EventListenerPort.
func (a *AssessmentConsumerAdapter) Close() error {
	return a.consumer.Close()
}
