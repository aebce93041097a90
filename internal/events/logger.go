package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// StartOrderEventLogger mendeklarasikan queue logger, mengikatnya ke semua event order,
// lalu mencatat setiap event sampai ctx selesai atau channel ditutup.
func StartOrderEventLogger(ctx context.Context, ch *amqp.Channel, logger *zap.Logger) error {
	q, err := ch.QueueDeclare(
		QueueOrderLog, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return fmt.Errorf("gagal deklarasi queue %q: %w", QueueOrderLog, err)
	}

	if err := ch.QueueBind(q.Name, BindingAllOrders, ExchangeOrders, false, nil); err != nil {
		return fmt.Errorf("gagal bind queue %q: %w", QueueOrderLog, err)
	}

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		true,   // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("gagal register consumer %q: %w", QueueOrderLog, err)
	}

	logger.Info("order event logger started", zap.String("queue", q.Name))
	LogDeliveries(ctx, msgs, logger)
	return nil
}

func LogDeliveries(ctx context.Context, msgs <-chan amqp.Delivery, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Info("order event channel closed")
				return
			}
			logDelivery(d, logger)
		}
	}
}

func logDelivery(d amqp.Delivery, logger *zap.Logger) {
	var env Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		logger.Warn("malformed order event",
			zap.String("routing_key", d.RoutingKey),
			zap.ByteString("body", d.Body),
			zap.Error(err))
		return
	}
	logger.Info("order event",
		zap.String("routing_key", d.RoutingKey),
		zap.String("event_id", env.EventID),
		zap.String("order_id", env.OrderID),
		zap.Time("occurred_at", env.OccurredAt),
		zap.ByteString("payload", env.Payload))
}
