package model

import (
	"linka/shared/event"
	"linka/shared/timezone"
)

var statusEvents = map[string]string{
	StatusPending:   event.TypeBookingCreated,
	StatusConfirmed: event.TypeBookingConfirmed,
	StatusRejected:  event.TypeBookingRejected,
	StatusCancelled: event.TypeBookingCancelled,
	StatusCompleted: event.TypeBookingCompleted,
}

// Event describes the booking after it entered status.
func (b Booking) Event(status string) event.Event {
	return event.Event{
		Type:       statusEvents[status],
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		Status:     status,
		OccurredAt: timezone.Now(),
		Payload: map[string]any{
			"target":    b.TargetType(),
			"target_id": b.TargetID(),
			"quantity":  b.Quantity,
		},
	}
}
