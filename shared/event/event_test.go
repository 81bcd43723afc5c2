package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"linka/infras/kafka"
	kafkaMocks "linka/infras/kafka/mocks"
	"linka/infras/otel/mocks"
	rabbitMocks "linka/infras/rabbitmq/mocks"
	"linka/shared/event"
	eventMocks "linka/shared/event/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingChannel struct {
	userIDs []string
	payload []byte
}

func (r *recordingChannel) SendToUsers(userIDs []string, payload []byte) {
	r.userIDs = userIDs
	r.payload = payload
}

func sampleEvent() event.Event {
	return event.Event{
		Type:       event.TypeBookingConfirmed,
		BookingID:  "booking-1",
		CustomerID: "customer-1",
		ProviderID: "provider-1",
		Status:     "confirmed",
	}
}

func TestEvent_Recipients(t *testing.T) {
	evt := sampleEvent()
	assert.Equal(t, []string{"customer-1", "provider-1"}, evt.Recipients())

	evt.ProviderID = evt.CustomerID
	assert.Equal(t, []string{"customer-1"}, evt.Recipients())
}

func TestLiveSink_PushesToBothParties(t *testing.T) {
	channel := &recordingChannel{}
	sink := event.NewLiveSink(channel)

	require.NoError(t, sink.Publish(context.Background(), sampleEvent()))

	assert.ElementsMatch(t, []string{"customer-1", "provider-1"}, channel.userIDs)

	var decoded event.Event
	require.NoError(t, json.Unmarshal(channel.payload, &decoded))
	assert.Equal(t, event.TypeBookingConfirmed, decoded.Type)
	assert.Equal(t, "booking-1", decoded.BookingID)
}

func TestKafkaSink_KeysByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := kafkaMocks.NewMockProducer(ctrl)

	producer.EXPECT().
		Produce(gomock.Any(), "booking.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "booking-1", messages[0].Key)
			assert.Equal(t, event.TypeBookingConfirmed, messages[0].Headers["event-type"])

			var decoded event.Event
			require.NoError(t, json.Unmarshal(messages[0].Value, &decoded))
			assert.Equal(t, "booking-1", decoded.BookingID)

			return nil
		})

	sink := event.NewKafkaSink(producer, "booking.events")

	require.NoError(t, sink.Publish(context.Background(), sampleEvent()))
}

func TestRabbitSink_RoutesByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := rabbitMocks.NewMockPublisher(ctrl)

	publisher.EXPECT().Publish(gomock.Any(), event.TypeBookingConfirmed, gomock.Any()).Return(nil)

	sink := event.NewRabbitSink(publisher)

	require.NoError(t, sink.Publish(context.Background(), sampleEvent()))
}

func TestFanout_ContinuesAfterSinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	failing := eventMocks.NewMockPublisher(ctrl)
	healthy := eventMocks.NewMockPublisher(ctrl)

	failing.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	healthy.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt event.Event) error {
			assert.NotEmpty(t, evt.ID)

			return nil
		})

	publisher := event.NewFanout(mocks.NewOtel(), failing, healthy)

	err := publisher.Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestNoop(t *testing.T) {
	assert.NoError(t, event.NewNoop().Publish(context.Background(), sampleEvent()))
}
