package service_test

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"

	"linka/internal/domains/booking/model"
	rideModel "linka/internal/domains/ride/model"
	gDto "linka/shared/dto"
)

// store keeps bookings and rides in memory. Transactions are serialised and
// rolled back from a snapshot, which is what row locks give the real queries.
type store struct {
	txMu     sync.Mutex
	mu       sync.Mutex
	bookings map[string]model.Booking
	rides    map[string]rideModel.Ride
}

func newStore() *store {
	return &store{
		bookings: map[string]model.Booking{},
		rides:    map[string]rideModel.Ride{},
	}
}

func (s *store) ride(id string) rideModel.Ride {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rides[id]
}

func (s *store) booking(id string) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookings[id]
}

func (s *store) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	bookings, rides := maps.Clone(s.bookings), maps.Clone(s.rides)
	s.mu.Unlock()

	if err := fn(nil); err != nil {
		s.mu.Lock()
		s.bookings, s.rides = bookings, rides
		s.mu.Unlock()

		return err
	}

	return nil
}

// criteria is the subset of a filter the fakes understand.
type criteria struct {
	args       map[string]any
	statuses   []string
	ratingNull bool
}

func parse(filter gDto.FilterGroup) criteria {
	where, args := filter.GetWhereClause()

	c := criteria{args: args, ratingNull: strings.Contains(where, "rating IS NULL")}

	for key, value := range args {
		if key == "current_status" || key == model.FieldStatus || strings.HasPrefix(key, "current_status_") {
			c.statuses = append(c.statuses, value.(string))
		}
	}

	return c
}

func (c criteria) matches(b model.Booking) bool {
	fields := map[string]string{
		model.FieldID:         b.ID,
		model.FieldCustomerID: b.CustomerID,
		model.FieldProviderID: b.ProviderID,
	}

	if b.RideID != nil {
		fields[model.FieldRideID] = *b.RideID
	}

	if b.AccommodationID != nil {
		fields[model.FieldAccommodationID] = *b.AccommodationID
	}

	for key, want := range c.args {
		got, known := fields[key]
		if known && got != want {
			return false
		}

		if !known && (key == model.FieldRideID || key == model.FieldAccommodationID) {
			return false
		}
	}

	if len(c.statuses) > 0 {
		found := false

		for _, status := range c.statuses {
			found = found || status == b.Status
		}

		if !found {
			return false
		}
	}

	return !c.ratingNull || b.Rating == nil
}

type bookingRepo struct{ s *store }

func (r bookingRepo) Create(_ context.Context, booking model.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bookings[booking.ID] = booking

	return nil
}

func (r bookingRepo) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := parse(filter)

	for _, booking := range r.s.bookings {
		if c.matches(booking) {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (r bookingRepo) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := parse(filter)
	res := []model.Booking{}

	for _, booking := range r.s.bookings {
		if c.matches(booking) {
			res = append(res, booking)
		}
	}

	return res, nil
}

func (r bookingRepo) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	res, err := r.GetAll(ctx, gDto.QueryParams{}, filter)

	return len(res) > 0, err
}

func (r bookingRepo) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	res, err := r.GetAll(ctx, gDto.QueryParams{}, filter)

	return len(res), err
}

func (r bookingRepo) UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	_, err := r.UpdateCountTx(ctx, tx, req, filter)

	return err
}

func (r bookingRepo) UpdateCountTx(_ context.Context, _ *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := parse(filter)

	var affected int64

	for id, booking := range r.s.bookings {
		if !c.matches(booking) {
			continue
		}

		if status, ok := req[model.FieldStatus].(string); ok {
			booking.Status = status
		}

		if score, ok := req[model.FieldRating].(int); ok {
			booking.Rating = &score
		}

		if by, ok := req[model.FieldCancelledBy].(string); ok {
			booking.CancelledBy = &by
		}

		r.s.bookings[id] = booking
		affected++
	}

	return affected, nil
}

type rideRepo struct{ s *store }

func (r rideRepo) Insert(_ context.Context, ride rideModel.Ride) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.rides[ride.ID] = ride

	return nil
}

func (r rideRepo) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (rideModel.Ride, error) {
	_, args := filter.GetWhereClause()
	id, _ := args[rideModel.FieldID].(string)

	return r.s.ride(id), nil
}

func (r rideRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]rideModel.Ride, error) {
	return nil, nil
}

func (r rideRepo) Count(context.Context, gDto.FilterGroup) (int, error) {
	return 0, nil
}

func (r rideRepo) UpdateTx(context.Context, *sqlx.Tx, map[string]any, gDto.FilterGroup) error {
	return nil
}

func (r rideRepo) UpdateCountTx(context.Context, *sqlx.Tx, map[string]any, gDto.FilterGroup) (int64, error) {
	return 0, nil
}

func (r rideRepo) ReserveSeatsTx(_ context.Context, _ *sqlx.Tx, id string, quantity int) (bool, error) {
	return r.adjust(id, func(ride *rideModel.Ride) bool {
		if ride.Status != rideModel.StatusActive || ride.AvailableSeats < quantity {
			return false
		}

		ride.AvailableSeats -= quantity

		return true
	}), nil
}

func (r rideRepo) ReleaseSeatsTx(_ context.Context, _ *sqlx.Tx, id string, quantity int) (bool, error) {
	return r.adjust(id, func(ride *rideModel.Ride) bool {
		if ride.AvailableSeats+quantity > ride.TotalSeats {
			return false
		}

		ride.AvailableSeats += quantity

		return true
	}), nil
}

func (r rideRepo) ResizeSeatsTx(_ context.Context, _ *sqlx.Tx, id string, totalSeats int) (bool, error) {
	return r.adjust(id, func(ride *rideModel.Ride) bool {
		available := ride.AvailableSeats + totalSeats - ride.TotalSeats
		if available < 0 {
			return false
		}

		ride.AvailableSeats, ride.TotalSeats = available, totalSeats

		return true
	}), nil
}

func (r rideRepo) adjust(id string, apply func(ride *rideModel.Ride) bool) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ride, ok := r.s.rides[id]
	if !ok || !apply(&ride) {
		return false
	}

	ride.Version++
	r.s.rides[id] = ride

	return true
}
