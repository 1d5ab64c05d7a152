package events

import (
	"fmt"

	"github.com/susu3304/cajachica/internal/config"
)

// Open returns the publisher selected by EVENTS_BACKEND, Nop when disabled.
func Open(cfg *config.Config) (Publisher, error) {
	switch cfg.EventsBackend {
	case config.EventsNone, "":
		return Nop{}, nil
	case config.EventsKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.EventsAMQP:
		p, err := NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("connect amqp: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.EventsBackend)
	}
}
