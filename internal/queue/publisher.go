package queue

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits catalog events to RabbitMQ on a best-effort basis.  The
// broker URL comes from RABBITMQ_URL (or AMQP_URL); when neither is set the
// publisher is disabled and Publish is a no-op.  Errors are logged and
// returned but callers ignore them: a broker outage must never fail the
// request that triggered the event.
type Publisher struct {
	url string
}

// NewPublisher reads the broker URL from the environment.
func NewPublisher() *Publisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	return &Publisher{url: url}
}

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool { return p.url != "" }

// Publish sends one event to the queue named after its type, declaring the
// queue idempotently.  Messages are marked persistent so they survive
// broker restarts.  The connection is scoped to the call; catalog mutations
// are rare enough that dialing per publish keeps the publisher stateless.
func (p *Publisher) Publish(ctx context.Context, event CatalogEvent) error {
	if p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		event.Type, // name
		true,       // durable
		false,      // autoDelete
		false,      // exclusive
		false,      // noWait
		nil,        // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",         // default exchange
		event.Type, // routing key = queue name
		false,      // mandatory
		false,      // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
