package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linka/config"
	"linka/infras/metrics"
	"linka/infras/otel/mocks"
	accommodationMocks "linka/internal/domains/accommodation/mocks"
	accommodationModel "linka/internal/domains/accommodation/model"
	"linka/internal/domains/booking/model"
	"linka/internal/domains/booking/model/dto"
	"linka/internal/domains/booking/service"
	rideModel "linka/internal/domains/ride/model"
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
	driverX   = "driver-x"
	driverY   = "driver-y"
	customerA = "customer-a"
	customerB = "customer-b"
	rideID    = "ride-1"
	stayID    = "stay-1"
)

func as(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	store             *store
	userRepo          *userMocks.MockUser
	accommodationRepo *accommodationMocks.MockAccommodation
	svc               service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		store:             newStore(),
		userRepo:          userMocks.NewMockUser(ctrl),
		accommodationRepo: accommodationMocks.NewMockAccommodation(ctrl),
	}

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (userModel.User, error) {
			_, args := filter.GetWhereClause()
			id, _ := args[userModel.FieldID].(string)

			return userModel.User{ID: id, Active: true}, nil
		}).AnyTimes()

	f.svc = service.New(
		bookingRepo{f.store}, rideRepo{f.store}, f.accommodationRepo, f.userRepo,
		f.store, publisher, metrics.New(), &config.Config{}, redis, mocks.NewOtel(),
	)

	f.store.rides[rideID] = rideModel.Ride{
		ID:             rideID,
		DriverID:       driverX,
		DepartureAt:    timezone.Now().Add(48 * time.Hour),
		TotalSeats:     3,
		AvailableSeats: 3,
		PricePerSeat:   7.5,
		Status:         rideModel.StatusActive,
	}

	return f
}

func (f fixture) book(t *testing.T, customerID string, quantity int) string {
	t.Helper()

	res, err := f.svc.Create(as(customerID), dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: quantity})
	require.NoError(t, err)

	return res.ID
}

func (f fixture) seed(status string, customerID string, quantity int) string {
	id := customerID + "-" + status

	f.store.bookings[id] = model.Booking{
		ID:         id,
		RideID:     ptr(rideID),
		CustomerID: customerID,
		ProviderID: driverX,
		Quantity:   quantity,
		Status:     status,
	}

	return id
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name     string
		actor    string
		req      dto.CreateBookingRequest
		wantKind failure.Kind
	}{
		{
			name:     "missing principal",
			req:      dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: 1},
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "no target",
			actor:    customerA,
			req:      dto.CreateBookingRequest{Quantity: 1},
			wantKind: failure.KindValidation,
		},
		{
			name:     "both targets",
			actor:    customerA,
			req:      dto.CreateBookingRequest{RideID: ptr(rideID), AccommodationID: ptr(stayID), Quantity: 1},
			wantKind: failure.KindValidation,
		},
		{
			name:     "unknown ride",
			actor:    customerA,
			req:      dto.CreateBookingRequest{RideID: ptr("ride-404"), Quantity: 1},
			wantKind: failure.KindNotFound,
		},
		{
			name:     "own ride",
			actor:    driverX,
			req:      dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: 1},
			wantKind: failure.KindForbidden,
		},
		{
			name:     "more seats than left",
			actor:    customerA,
			req:      dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: 4},
			wantKind: failure.KindCapacityExceeded,
		},
		{
			name:  "pending with total price",
			actor: customerA,
			req:   dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			res, err := f.svc.Create(as(tt.actor), tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, driverX, res.ProviderID)
			assert.InDelta(t, 15.0, res.TotalPrice, 0.001)
			assert.Equal(t, 3, f.store.ride(rideID).AvailableSeats, "creating does not hold seats")
		})
	}
}

func TestBookingService_CreateDuplicate(t *testing.T) {
	f := newFixture(t)
	f.book(t, customerA, 1)

	_, err := f.svc.Create(as(customerA), dto.CreateBookingRequest{RideID: ptr(rideID), Quantity: 1})

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindConflict))
}

func day(offset int) string {
	return timezone.Format(timezone.StartOfDay(timezone.Now()).AddDate(0, 0, offset), constant.DateOnlyFormat)
}

func TestBookingService_CreateStay(t *testing.T) {
	today := timezone.StartOfDay(timezone.Now())
	stay := accommodationModel.Accommodation{
		ID:             stayID,
		HostID:         driverY,
		AvailableFrom:  today.AddDate(0, 0, -30),
		AvailableTo:    today.AddDate(0, 0, 40),
		TotalRooms:     4,
		AvailableRooms: 4,
		MaxGuests:      2,
		PricePerNight:  80,
		Status:         accommodationModel.StatusActive,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		wantKind  failure.Kind
		wantTotal float64
	}{
		{
			name:      "two rooms for two nights",
			req:       dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 2, Guests: ptr(3), CheckIn: ptr(day(20)), CheckOut: ptr(day(22))},
			wantTotal: 320,
		},
		{
			name:      "check in today",
			req:       dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 2, CheckIn: ptr(day(0)), CheckOut: ptr(day(2))},
			wantTotal: 320,
		},
		{
			name:     "check out before check in",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 1, CheckIn: ptr(day(22)), CheckOut: ptr(day(20))},
			wantKind: failure.KindValidation,
		},
		{
			name:     "missing dates",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 1},
			wantKind: failure.KindValidation,
		},
		{
			name:     "check in already passed",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 1, CheckIn: ptr(day(-3)), CheckOut: ptr(day(-1))},
			wantKind: failure.KindValidation,
		},
		{
			name:     "outside window",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 1, CheckIn: ptr(day(38)), CheckOut: ptr(day(42))},
			wantKind: failure.KindValidation,
		},
		{
			name:     "too many guests",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 1, Guests: ptr(3), CheckIn: ptr(day(20)), CheckOut: ptr(day(22))},
			wantKind: failure.KindValidation,
		},
		{
			name:     "more rooms than left",
			req:      dto.CreateBookingRequest{AccommodationID: ptr(stayID), Quantity: 5, CheckIn: ptr(day(20)), CheckOut: ptr(day(22))},
			wantKind: failure.KindCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.accommodationRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay, nil)

			res, err := f.svc.Create(as(customerA), tt.req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.TargetAccommodation, res.Target)
			assert.InDelta(t, 160.0, res.UnitPrice, 0.001)
			assert.InDelta(t, tt.wantTotal, res.TotalPrice, 0.001)
			assert.Equal(t, *tt.req.CheckIn, *res.CheckIn)
		})
	}
}

func TestBookingService_CreateRideDropsStayFields(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(as(customerA), dto.CreateBookingRequest{
		RideID:   ptr(rideID),
		Quantity: 1,
		Guests:   ptr(4),
		CheckIn:  ptr(day(1)),
	})
	require.NoError(t, err)

	booking := f.store.booking(res.ID)
	assert.Nil(t, booking.Guests)
	assert.Nil(t, booking.CheckIn)
	assert.Nil(t, booking.AccommodationID)
	assert.Nil(t, res.Guests)
}

func TestBookingService_ApproveUntilFull(t *testing.T) {
	f := newFixture(t)

	first := f.book(t, customerA, 2)
	second := f.book(t, customerB, 2)

	require.NoError(t, f.svc.Approve(as(driverX), first))
	assert.Equal(t, 1, f.store.ride(rideID).AvailableSeats)

	err := f.svc.Approve(as(driverX), second)

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindCapacityExceeded), "got %v", err)
	assert.Equal(t, model.StatusPending, f.store.booking(second).Status, "rolled back")
	assert.Equal(t, model.StatusConfirmed, f.store.booking(first).Status)
	assert.Equal(t, 1, f.store.ride(rideID).AvailableSeats)
}

func TestBookingService_ConcurrentApprovals(t *testing.T) {
	f := newFixture(t)

	ids := []string{f.seed(model.StatusPending, customerA, 2), f.seed(model.StatusPending, customerB, 2)}

	var wg sync.WaitGroup

	errs := make([]error, len(ids))

	for i, id := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()

			errs[i] = f.svc.Approve(as(driverX), id)
		}()
	}

	wg.Wait()

	succeeded, rejected := 0, 0

	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case failure.IsKind(err, failure.KindCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, f.store.ride(rideID).AvailableSeats)
}

func TestBookingService_ApproveOwnership(t *testing.T) {
	f := newFixture(t)
	id := f.book(t, customerA, 1)

	err := f.svc.Approve(as(driverY), id)

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindForbidden))
	assert.Equal(t, 403, failure.GetCode(err))
	assert.Equal(t, 3, f.store.ride(rideID).AvailableSeats)

	err = f.svc.Approve(as(driverX), "missing")
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestBookingService_CancelConfirmedRestoresSeats(t *testing.T) {
	f := newFixture(t)
	id := f.book(t, customerA, 2)

	require.NoError(t, f.svc.Approve(as(driverX), id))
	require.Equal(t, 1, f.store.ride(rideID).AvailableSeats)

	require.NoError(t, f.svc.Cancel(as(customerA), id, dto.CancelBookingRequest{Reason: "plans changed"}))

	booking := f.store.booking(id)
	assert.Equal(t, model.StatusCancelled, booking.Status)
	assert.Equal(t, customerA, *booking.CancelledBy)
	assert.Equal(t, 3, f.store.ride(rideID).AvailableSeats)
}

func TestBookingService_CancelPendingKeepsSeats(t *testing.T) {
	f := newFixture(t)
	id := f.book(t, customerA, 2)

	require.NoError(t, f.svc.Cancel(as(driverX), id, dto.CancelBookingRequest{}))

	assert.Equal(t, model.StatusCancelled, f.store.booking(id).Status)
	assert.Equal(t, 3, f.store.ride(rideID).AvailableSeats)

	err := f.svc.Cancel(as(customerB), id, dto.CancelBookingRequest{})
	assert.True(t, failure.IsKind(err, failure.KindForbidden))
}

func TestBookingService_TerminalStatuses(t *testing.T) {
	actions := map[string]func(svc service.Booking, id string) error{
		"approve": func(svc service.Booking, id string) error { return svc.Approve(as(driverX), id) },
		"reject": func(svc service.Booking, id string) error {
			return svc.Reject(as(driverX), id, dto.RejectBookingRequest{Reason: "no"})
		},
		"cancel": func(svc service.Booking, id string) error {
			return svc.Cancel(as(customerA), id, dto.CancelBookingRequest{})
		},
		"complete": func(svc service.Booking, id string) error { return svc.Complete(as(driverX), id) },
	}

	for _, status := range []string{model.StatusRejected, model.StatusCancelled, model.StatusCompleted} {
		for name, action := range actions {
			t.Run(status+"/"+name, func(t *testing.T) {
				f := newFixture(t)
				id := f.seed(status, customerA, 1)

				err := action(f.svc, id)

				require.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidState), "got %v", err)
				assert.Equal(t, status, f.store.booking(id).Status)
				assert.Equal(t, 3, f.store.ride(rideID).AvailableSeats)
			})
		}
	}
}

func TestBookingService_RejectAndComplete(t *testing.T) {
	f := newFixture(t)

	rejected := f.book(t, customerA, 1)
	require.NoError(t, f.svc.Reject(as(driverX), rejected, dto.RejectBookingRequest{Reason: "full car"}))
	assert.Equal(t, model.StatusRejected, f.store.booking(rejected).Status)

	completed := f.book(t, customerB, 1)

	err := f.svc.Complete(as(driverX), completed)
	assert.True(t, failure.IsKind(err, failure.KindInvalidState), "pending cannot complete")

	require.NoError(t, f.svc.Approve(as(driverX), completed))
	require.NoError(t, f.svc.Complete(as(driverX), completed))
	assert.Equal(t, model.StatusCompleted, f.store.booking(completed).Status)
	assert.Equal(t, 2, f.store.ride(rideID).AvailableSeats, "seats of a finished ride stay taken")
}

func TestBookingService_CompleteStayReleasesRooms(t *testing.T) {
	f := newFixture(t)

	id := "stay-booking"
	f.store.bookings[id] = model.Booking{
		ID:              id,
		AccommodationID: ptr(stayID),
		CustomerID:      customerA,
		ProviderID:      driverY,
		Quantity:        2,
		Status:          model.StatusConfirmed,
	}

	f.accommodationRepo.EXPECT().ReleaseRoomsTx(gomock.Any(), gomock.Any(), stayID, 2).Return(true, nil)

	require.NoError(t, f.svc.Complete(as(driverY), id))
	assert.Equal(t, model.StatusCompleted, f.store.booking(id).Status)
}

func TestBookingService_CompleteStayRollsBackWhenRoomsOutOfSync(t *testing.T) {
	f := newFixture(t)

	id := "stay-booking"
	f.store.bookings[id] = model.Booking{
		ID:              id,
		AccommodationID: ptr(stayID),
		CustomerID:      customerA,
		ProviderID:      driverY,
		Quantity:        2,
		Status:          model.StatusConfirmed,
	}

	f.accommodationRepo.EXPECT().ReleaseRoomsTx(gomock.Any(), gomock.Any(), stayID, 2).Return(false, nil)

	require.Error(t, f.svc.Complete(as(driverY), id))
	assert.Equal(t, model.StatusConfirmed, f.store.booking(id).Status)
}

func TestBookingService_Rate(t *testing.T) {
	t.Run("completed booking", func(t *testing.T) {
		f := newFixture(t)
		id := f.seed(model.StatusCompleted, customerA, 1)

		f.userRepo.EXPECT().ApplyRatingTx(gomock.Any(), gomock.Any(), driverX, 4).Return(nil)

		require.NoError(t, f.svc.Rate(as(customerA), id, dto.RateBookingRequest{Score: 4}))
		assert.Equal(t, 4, *f.store.booking(id).Rating)

		err := f.svc.Rate(as(customerA), id, dto.RateBookingRequest{Score: 5})
		assert.True(t, failure.IsKind(err, failure.KindConflict), "got %v", err)
	})

	t.Run("not completed", func(t *testing.T) {
		f := newFixture(t)
		id := f.seed(model.StatusConfirmed, customerA, 1)

		err := f.svc.Rate(as(customerA), id, dto.RateBookingRequest{Score: 4})
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("provider cannot rate", func(t *testing.T) {
		f := newFixture(t)
		id := f.seed(model.StatusCompleted, customerA, 1)

		err := f.svc.Rate(as(driverX), id, dto.RateBookingRequest{Score: 4})
		assert.True(t, failure.IsKind(err, failure.KindForbidden))
	})

	t.Run("provider update failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		id := f.seed(model.StatusCompleted, customerA, 1)

		f.userRepo.EXPECT().ApplyRatingTx(gomock.Any(), gomock.Any(), driverX, 2).Return(errors.New("db down"))

		require.Error(t, f.svc.Rate(as(customerA), id, dto.RateBookingRequest{Score: 2}))
		assert.Nil(t, f.store.booking(id).Rating)
	})
}

func TestBookingService_Lists(t *testing.T) {
	f := newFixture(t)
	f.book(t, customerA, 1)
	f.book(t, customerB, 1)

	mine, err := f.svc.GetCustomerBookings(as(customerA), gDto.QueryParams{Page: 1, Limit: 10}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, mine.TotalData)

	provided, err := f.svc.GetProviderBookings(as(driverX), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, provided.TotalData)

	_, err = f.svc.Get(as(driverY), mine.Bookings[0].ID)
	assert.True(t, failure.IsKind(err, failure.KindForbidden))

	got, err := f.svc.Get(as(driverX), mine.Bookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, customerA, got.CustomerID)
}
