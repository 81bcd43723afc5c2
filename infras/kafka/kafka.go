package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"linka/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout = 10 * time.Second
	batchTimeout = 50 * time.Millisecond
)

// Message is an already encoded record. Records sharing a key keep their
// order because they hash to the same partition.
type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func (m Message) record(topic string) kafkaGo.Message {
	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for _, name := range slices.Sorted(maps.Keys(m.Headers)) {
		headers = append(headers, kafkaGo.Header{Key: name, Value: []byte(m.Headers[name])})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   m.Value,
		Headers: headers,
	}
}

type Producer interface {
	Produce(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type producer struct {
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Producer {
	transport := &kafkaGo.Transport{}

	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
		BatchTimeout:           batchTimeout,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producer{writer: writer}
}

func (p *producer) Produce(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	records := make([]kafkaGo.Message, len(messages))
	for i, message := range messages {
		records[i] = message.record(topic)
	}

	if err := p.writer.WriteMessages(ctx, records...); err != nil {
		return fmt.Errorf("failed to write %d message(s) to %s: %w", len(records), topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(records)).Msg("Produced Kafka messages")

	return nil
}

func (p *producer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
