package event

import (
	"context"
	"fmt"

	"linka/infras/kafka"
	"linka/infras/rabbitmq"
)

const headerEventType = "event-type"

// LiveChannel pushes raw payloads to connected users.
type LiveChannel interface {
	SendToUsers(userIDs []string, payload []byte)
}

type liveSink struct {
	channel LiveChannel
}

func NewLiveSink(channel LiveChannel) Publisher {
	return &liveSink{channel: channel}
}

func (s *liveSink) Publish(_ context.Context, evt Event) error {
	body, err := evt.Marshal()
	if err != nil {
		return err
	}

	s.channel.SendToUsers(evt.Recipients(), body)

	return nil
}

type kafkaSink struct {
	producer kafka.Producer
	topic    string
}

// NewKafkaSink keys records by booking so a booking's events stay ordered.
func NewKafkaSink(producer kafka.Producer, topic string) Publisher {
	return &kafkaSink{
		producer: producer,
		topic:    topic,
	}
}

func (s *kafkaSink) Publish(ctx context.Context, evt Event) error {
	body, err := evt.Marshal()
	if err != nil {
		return err
	}

	err = s.producer.Produce(ctx, s.topic, kafka.Message{
		Key:     evt.BookingID,
		Value:   body,
		Headers: map[string]string{headerEventType: evt.Type},
	})
	if err != nil {
		return fmt.Errorf("kafka sink: %w", err)
	}

	return nil
}

type rabbitSink struct {
	publisher rabbitmq.Publisher
}

// NewRabbitSink routes events by type, so consumers bind e.g. "booking.*".
func NewRabbitSink(publisher rabbitmq.Publisher) Publisher {
	return &rabbitSink{publisher: publisher}
}

func (s *rabbitSink) Publish(ctx context.Context, evt Event) error {
	body, err := evt.Marshal()
	if err != nil {
		return err
	}

	if err = s.publisher.Publish(ctx, evt.Type, body); err != nil {
		return fmt.Errorf("rabbitmq sink: %w", err)
	}

	return nil
}
