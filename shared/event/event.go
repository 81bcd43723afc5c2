package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"linka/infras/otel"
	"linka/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingRejected  = "booking.rejected"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingCompleted = "booking.completed"
)

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	ProviderID string    `json:"provider_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Recipients are the users that receive the event on their live channel.
func (e Event) Recipients() []string {
	if e.CustomerID == e.ProviderID {
		return []string{e.CustomerID}
	}

	return []string{e.CustomerID, e.ProviderID}
}

func (e Event) Marshal() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
	}

	return body, nil
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type fanout struct {
	sinks []Publisher
	otel  otel.Otel
}

// NewFanout delivers every event to all sinks. A failing sink does not stop
// the others; their errors are joined.
func NewFanout(otel otel.Otel, sinks ...Publisher) Publisher {
	return &fanout{
		sinks: sinks,
		otel:  otel,
	}
}

func (f *fanout) Publish(ctx context.Context, evt Event) (err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if evt.ID == constant.Empty {
		evt.ID = uuid.NewString()
	}

	scope.SetAttributes(map[string]any{
		"event.type":       evt.Type,
		"event.booking_id": evt.BookingID,
	})

	var errs []error

	for _, sink := range f.sinks {
		if sinkErr := sink.Publish(ctx, evt); sinkErr != nil {
			log.Error().Err(sinkErr).Str("type", evt.Type).Str("booking_id", evt.BookingID).Msg("failed to publish event")

			errs = append(errs, sinkErr)
		}
	}

	return errors.Join(errs...)
}

type noop struct{}

func NewNoop() Publisher {
	return noop{}
}

func (noop) Publish(context.Context, Event) error {
	return nil
}

type enqueuer interface {
	Enqueue(ctx context.Context, events ...Event)
}

// PublishAsync publishes after the request returns. Failures are logged only.
// Through a Bus the events keep their order; other publishers get a goroutine
// per call.
func PublishAsync(ctx context.Context, publisher Publisher, events ...Event) {
	if len(events) == 0 {
		return
	}

	if q, ok := publisher.(enqueuer); ok {
		q.Enqueue(ctx, events...)

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, evt := range events {
			if err := publisher.Publish(c, evt); err != nil {
				log.Warn().Err(err).Str("type", evt.Type).Str("booking_id", evt.BookingID).Msg("booking event was not fully delivered")
			}
		}
	}()
}
