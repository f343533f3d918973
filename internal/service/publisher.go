// Package service provides the publishers that hand booking events to
// the outside world.  Errors are logged and returned so callers can
// ignore failures without interrupting the booking session.
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	q "github.com/iliyamo/booking-a-show/internal/queue"
)

// Publisher delivers one booking event.
type Publisher interface {
	Publish(ctx context.Context, event q.TicketEvent) error
}

// Nop discards every event.  It is the default when no backend is
// configured.
type Nop struct{}

func (Nop) Publish(context.Context, q.TicketEvent) error { return nil }

// JournalPublisher appends events straight to a local journal file,
// using the same line format as the broker-fed journal consumer.
type JournalPublisher struct {
	Path string
}

func (p JournalPublisher) Publish(_ context.Context, event q.TicketEvent) error {
	if err := q.AppendJournal(p.Path, event); err != nil {
		log.Printf("journal: append failed: %v", err)
		return err
	}
	return nil
}

// AMQPPublisher publishes events to a durable RabbitMQ queue.
type AMQPPublisher struct {
	URL       string
	QueueName string
}

// Publish dials the broker, makes sure the queue exists and sends the
// event as a persistent JSON message.  The connection is closed again
// before returning; sessions publish rarely enough that holding one
// open is not worth the reconnect handling.
func (p AMQPPublisher) Publish(ctx context.Context, event q.TicketEvent) error {
	queueName := p.QueueName
	if queueName == "" {
		queueName = q.DefaultQueueName
	}
	conn, err := amqp.Dial(p.URL)
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

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	msgID := event.EventID
	if msgID == "" {
		msgID = uuid.NewString()
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msgID,
		Type:         event.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

// RedisPublisher broadcasts events on a Redis pub/sub channel.
type RedisPublisher struct {
	Client  *redis.Client
	Channel string
}

func (p RedisPublisher) Publish(ctx context.Context, event q.TicketEvent) error {
	channel := p.Channel
	if channel == "" {
		channel = q.DefaultQueueName
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("redis: marshal event failed: %v", err)
		return err
	}
	if err := p.Client.Publish(ctx, channel, body).Err(); err != nil {
		log.Printf("redis: publish failed: %v", err)
		return err
	}
	return nil
}
