package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel/mocks"
	pgMocks "linka/infras/postgres/mocks"
	bookingMocks "linka/internal/domains/booking/mocks"
	bookingModel "linka/internal/domains/booking/model"
	rideMocks "linka/internal/domains/ride/mocks"
	"linka/internal/domains/ride/model"
	"linka/internal/domains/ride/model/dto"
	"linka/internal/domains/ride/service"
	userMocks "linka/internal/domains/user/mocks"
	userModel "linka/internal/domains/user/model"
	cacheMocks "linka/shared/cache/mocks"
	"linka/shared/constant"
	gDto "linka/shared/dto"
	eventMocks "linka/shared/event/mocks"
	"linka/shared/failure"
	"linka/shared/timezone"
)

const (
	driverID = "driver-1"
	rideID   = "ride-1"
)

func withUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func intPtr(v int) *int {
	return &v
}

type fixture struct {
	repo        *rideMocks.MockRide
	bookingRepo *bookingMocks.MockBooking
	userRepo    *userMocks.MockUser
	tx          *pgMocks.MockTransactor
	publisher   *eventMocks.MockPublisher
	cache       *cacheMocks.MockRedisCache
	svc         service.Ride
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        rideMocks.NewMockRide(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		tx:          pgMocks.NewMockTransactor(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	f.svc = service.New(f.repo, f.bookingRepo, f.userRepo, f.tx, f.publisher, metrics.New(), &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func activeRide() model.Ride {
	return model.Ride{
		ID:             rideID,
		DriverID:       driverID,
		Origin:         "Tunis",
		Destination:    "Sousse",
		DepartureAt:    timezone.Now().Add(24 * time.Hour),
		TotalSeats:     4,
		AvailableSeats: 2,
		PricePerSeat:   12.5,
		Status:         model.StatusActive,
	}
}

func TestRideService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateRideRequest
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name: "verified driver",
			req:  dto.CreateRideRequest{Origin: "Tunis", Destination: "Sousse", DepartureAt: timezone.Now().Add(time.Hour), TotalSeats: 3, PricePerSeat: 9.999},
			setup: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: driverID, Active: true, CanOfferRides: true}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ride model.Ride) error {
					assert.Equal(t, 3, ride.AvailableSeats)
					assert.InDelta(t, 10.0, ride.PricePerSeat, 0.0001)
					assert.Equal(t, model.StatusActive, ride.Status)

					return nil
				})
			},
		},
		{
			name: "offering not enabled",
			req:  dto.CreateRideRequest{Origin: "Tunis", Destination: "Sousse", DepartureAt: timezone.Now().Add(time.Hour), TotalSeats: 3},
			setup: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: driverID, Active: true}, nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name: "unregistered caller",
			req:  dto.CreateRideRequest{Origin: "Tunis", Destination: "Sousse", DepartureAt: timezone.Now().Add(time.Hour), TotalSeats: 3},
			setup: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name: "departure in the past",
			req:  dto.CreateRideRequest{Origin: "Tunis", Destination: "Sousse", DepartureAt: timezone.Now().Add(-time.Hour), TotalSeats: 3},
			setup: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: driverID, Active: true, CanOfferRides: true}, nil)
			},
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(withUser(driverID), tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, driverID, res.DriverID)
		})
	}
}

func TestRideService_Get(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Ride{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestRideService_Search(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Ride, error) {
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)

			return []model.Ride{activeRide()}, nil
		})

	res, err := f.svc.Search(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "driver_id; DROP"}, dto.SearchRidesRequest{From: "tun"})

	require.NoError(t, err)
	require.Len(t, res.Rides, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestRideService_Update(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		req      dto.UpdateRideRequest
		setup    func(f fixture)
		wantKind failure.Kind
	}{
		{
			name:  "resize above confirmed seats",
			actor: driverID,
			req:   dto.UpdateRideRequest{TotalSeats: intPtr(3)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().ResizeSeatsTx(gomock.Any(), gomock.Any(), rideID, 3).Return(true, nil)
			},
		},
		{
			name:  "resize below confirmed seats",
			actor: driverID,
			req:   dto.UpdateRideRequest{TotalSeats: intPtr(1)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().ResizeSeatsTx(gomock.Any(), gomock.Any(), rideID, 1).Return(false, nil)
			},
			wantKind: failure.KindCapacityExceeded,
		},
		{
			name:  "not the driver",
			actor: "someone-else",
			req:   dto.UpdateRideRequest{TotalSeats: intPtr(3)},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name:  "ride already cancelled",
			actor: driverID,
			req:   dto.UpdateRideRequest{TotalSeats: intPtr(3)},
			setup: func(f fixture) {
				ride := activeRide()
				ride.Status = model.StatusCancelled
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ride, nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name:     "empty request",
			actor:    driverID,
			setup:    func(fixture) {},
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Update(withUser(tt.actor), rideID, tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRideService_Cancel(t *testing.T) {
	t.Run("cancels open bookings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
		f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			{ID: "b-1", Status: bookingModel.StatusPending},
			{ID: "b-2", Status: bookingModel.StatusConfirmed},
		}, nil)
		f.repo.EXPECT().UpdateCountTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return 1, nil
			})
		f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, bookingModel.StatusCancelled, fields[bookingModel.FieldStatus])
				assert.Equal(t, driverID, fields[bookingModel.FieldCancelledBy])
				assert.Equal(t, "road closed", fields[bookingModel.FieldCancellationReason])

				return nil
			})

		err := f.svc.Cancel(withUser(driverID), rideID, dto.CancelRideRequest{Reason: "road closed"})

		require.NoError(t, err)
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
		f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().UpdateCountTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.Cancel(withUser(driverID), rideID, dto.CancelRideRequest{})

		require.Error(t, err)
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})
}

func TestRideService_Complete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeRide(), nil)
	f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
		{ID: "b-1", Status: bookingModel.StatusConfirmed},
	}, nil)
	f.repo.EXPECT().UpdateCountTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	statuses := []any{}
	f.bookingRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			statuses = append(statuses, fields[bookingModel.FieldStatus])

			return nil
		}).Times(2)

	err := f.svc.Complete(withUser(driverID), rideID)

	require.NoError(t, err)
	assert.Equal(t, []any{bookingModel.StatusCompleted, bookingModel.StatusCancelled}, statuses)
}
