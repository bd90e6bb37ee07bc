package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/festival-manager/internal/queue"
)

// Publisher announces domain events.  Implementations must not panic;
// callers log and otherwise ignore returned errors so a broker outage never
// fails a form submission.
type Publisher interface {
	PublishRecordCreated(ctx context.Context, event q.RecordCreatedEvent) error
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) PublishRecordCreated(context.Context, q.RecordCreatedEvent) error { return nil }

// DefaultDialTimeout bounds the TCP connect and AMQP handshake of a publish.
const DefaultDialTimeout = 2 * time.Second

// AMQPPublisher publishes events to RabbitMQ, dialing per message.  Writes
// are rare enough that a long-lived channel is not worth its reconnect logic.
type AMQPPublisher struct {
	URL         string
	DialTimeout time.Duration
	Logger      *log.Logger
}

// NewAMQPPublisher returns a publisher for the broker at url.
func NewAMQPPublisher(url string, logger *log.Logger) *AMQPPublisher {
	return &AMQPPublisher{URL: url, DialTimeout: DefaultDialTimeout, Logger: logger}
}

// dialTimeout is DialTimeout cut short by ctx's deadline.
func (p *AMQPPublisher) dialTimeout(ctx context.Context) time.Duration {
	timeout := p.DialTimeout
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

// PublishRecordCreated publishes event to the record_created queue as a
// persistent JSON message.
func (p *AMQPPublisher) PublishRecordCreated(ctx context.Context, event q.RecordCreatedEvent) error {
	timeout := p.dialTimeout(ctx)
	if timeout <= 0 {
		return ctx.Err()
	}
	// the deadline covers the handshake too; a broker that accepts and stays
	// silent must not hold the request
	conn, err := amqp.DialConfig(p.URL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		p.Logger.Warn("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Logger.Warn("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.RecordCreatedQueue, // name
		true,                 // durable
		false,                // autoDelete
		false,                // exclusive
		false,                // noWait
		nil,                  // args
	); err != nil {
		p.Logger.Warn("rabbitmq: queue declare failed", "err", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.Logger.Warn("rabbitmq: marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                   // default exchange
		q.RecordCreatedQueue, // routing key = queue name
		false,                // mandatory
		false,                // immediate
		pub,
	); err != nil {
		p.Logger.Warn("rabbitmq: publish failed", "err", err)
		return err
	}
	return nil
}

// NewRecordCreated builds an event stamped with the current UTC time.
func NewRecordCreated(table string, id int64, fields map[string]string) q.RecordCreatedEvent {
	return q.RecordCreatedEvent{
		Table:     table,
		ID:        id,
		Fields:    fields,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
