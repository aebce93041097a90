package events

import (
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/order"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// Publisher adalah abstraksi minimal di atas channel AMQP.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type publisherImpl struct {
	ch amqpChannel
}

func NewPublisherImpl(ch *amqp.Channel) Publisher {
	return &publisherImpl{ch: ch}
}

func (p *publisherImpl) Publish(exchange, routingKey string, body []byte) error {
	return p.ch.Publish(
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// NopPublisher dipakai saat RabbitMQ tidak dikonfigurasi.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, []byte) error { return nil }

// DeclareTopology mendeklarasikan exchange topic untuk event order.
func DeclareTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(
		ExchangeOrders, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("gagal deklarasi exchange %q: %w", ExchangeOrders, err)
	}
	return nil
}

// Emitter membungkus payload ke Envelope lalu menerbitkannya.
type Emitter struct {
	pub      Publisher
	producer string
	now      func() time.Time
}

func NewEmitter(pub Publisher, producer string) *Emitter {
	return &Emitter{pub: pub, producer: producer, now: time.Now}
}

func (e *Emitter) OrderCreated(o *order.Order) error {
	return e.emit(RoutingOrderCreated, o.OrderID, OrderCreatedPayload{
		OrderID:       o.OrderID,
		ProductID:     o.ProductID,
		Quantity:      o.Quantity,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: o.PaymentMethod,
		TrackingLink:  o.TrackingLink,
	})
}

func (e *Emitter) StatusUpdated(orderID string, from, to order.StatusPair) error {
	return e.emit(RoutingStatusUpdated, orderID, StatusUpdatedPayload{OrderID: orderID, From: from, To: to})
}

func (e *Emitter) emit(routingKey, orderID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gagal serialize payload: %w", err)
	}
	body, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  routingKey,
		OccurredAt: e.now().UTC(),
		Producer:   e.producer,
		OrderID:    orderID,
		Payload:    raw,
	})
	if err != nil {
		return fmt.Errorf("gagal serialize event: %w", err)
	}
	return e.pub.Publish(ExchangeOrders, routingKey, body)
}
