package event

import (
	"linka/config"
	"linka/infras/kafka"
	"linka/infras/otel"
	"linka/infras/rabbitmq"

	"github.com/rs/zerolog/log"
)

// New assembles the bus from EVENTS_*: the live channel is always attached
// when WebSocket push is enabled, plus at most one broker. Closing the bus
// closes that broker.
func New(cfg *config.Config, channel LiveChannel, otl otel.Otel) *Bus {
	var (
		sinks   []Publisher
		closers []func() error
	)

	if cfg.Events.WebSocket.Enable && channel != nil {
		sinks = append(sinks, NewLiveSink(channel))
	}

	switch cfg.Events.Broker {
	case BrokerKafka:
		producer := kafka.New(cfg)
		sinks = append(sinks, NewKafkaSink(producer, cfg.Events.Topic))
		closers = append(closers, producer.Close)
	case BrokerRabbitMQ:
		conn, err := rabbitmq.New(cfg)
		if err != nil {
			log.Error().Err(err).Msg("RabbitMQ unavailable, booking events will not be brokered")

			break
		}

		sinks = append(sinks, NewRabbitSink(conn))
		closers = append(closers, conn.Close)
	case BrokerNone, "":
	default:
		log.Warn().Str("broker", cfg.Events.Broker).Msg("Unknown event broker, ignoring")
	}

	if len(sinks) == 0 {
		return NewBus(NewNoop())
	}

	log.Info().Int("sinks", len(sinks)).Str("broker", cfg.Events.Broker).Msg("Event publisher initialized")

	return NewBus(NewFanout(otl, sinks...), closers...)
}
