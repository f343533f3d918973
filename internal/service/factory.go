package service

import (
	"log"

	"github.com/iliyamo/booking-a-show/internal/config"
)

// New selects the publisher for the configured backend.  A redis backend
// whose server cannot be reached degrades to Nop; the session must keep
// working without its event sink.
func New(cfg config.EventsConfig) Publisher {
	switch cfg.Backend {
	case config.EventsJournal:
		return JournalPublisher{Path: cfg.JournalPath}
	case config.EventsAMQP:
		return AMQPPublisher{URL: cfg.AMQPURL, QueueName: cfg.QueueName}
	case config.EventsRedis:
		rdb := config.NewRedisClient()
		if rdb == nil {
			log.Printf("redis: server unreachable, booking events disabled")
			return Nop{}
		}
		return RedisPublisher{Client: rdb, Channel: cfg.Channel}
	}
	return Nop{}
}
