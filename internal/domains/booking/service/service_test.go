package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petcare/config"
	"petcare/infras/otel/mocks"
	bookingMocks "petcare/internal/domains/booking/mocks"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/model/dto"
	"petcare/internal/domains/booking/service"
	petMocks "petcare/internal/domains/pet/mocks"
	petModel "petcare/internal/domains/pet/model"
	serviceMocks "petcare/internal/domains/petservice/mocks"
	serviceModel "petcare/internal/domains/petservice/model"
	slotMocks "petcare/internal/domains/timeslot/mocks"
	"petcare/shared/cache"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	eventMocks "petcare/shared/event/mocks"
	"petcare/shared/failure"
	gRepo "petcare/shared/repository"
	repoMocks "petcare/shared/repository/mocks"
)

const (
	ownerID    = "owner-1"
	providerID = "provider-1"
	serviceID  = "svc-1"
	serveDate  = "2099-01-10"
)

type bookingDeps struct {
	repo      *bookingMocks.MockBooking
	pets      *petMocks.MockPet
	services  *serviceMocks.MockPetService
	slots     *slotMocks.MockTimeslot
	tx        *repoMocks.MockTransactor
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	svc       service.Booking
}

func newBookingDeps(t *testing.T) *bookingDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	d := &bookingDeps{
		repo:      bookingMocks.NewMockBooking(ctrl),
		pets:      petMocks.NewMockPet(ctrl),
		services:  serviceMocks.NewMockPetService(ctrl),
		slots:     slotMocks.NewMockTimeslot(ctrl),
		tx:        repoMocks.NewMockTransactor(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	d.svc = service.New(d.repo, d.pets, d.services, d.slots, d.tx, d.publisher, cfg, d.cache, mocks.NewOtel())

	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()

	return d
}

func (d *bookingDeps) inlineTx() {
	d.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn gRepo.TxFunc) error {
		return fn(ctx, nil)
	}).AnyTimes()
}

func ownerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, ownerID)
}

func providerCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, providerID)
}

func approvedService() serviceModel.Service {
	return serviceModel.Service{
		ID:         serviceID,
		ProviderID: providerID,
		Name:       "Grooming",
		Price:      150,
		Status:     serviceModel.StatusApproved,
	}
}

func createRequest(petIDs ...string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ServiceID:     serviceID,
		Slot:          "10:00",
		ServeDate:     serveDate,
		PaymentMethod: "cash",
		PetIDs:        petIDs,
	}
}

func ownedPets(ids ...string) []petModel.Pet {
	pets := make([]petModel.Pet, 0, len(ids))
	for _, id := range ids {
		pets = append(pets, petModel.Pet{ID: id, UserID: ownerID})
	}

	return pets
}

func TestBookingService_Create(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		setup    func(d *bookingDeps)
		wantKind failure.Kind
		wantCode int
		wantMsg  string
	}{
		{
			name: "admits a free slot",
			req:  createRequest("pet-1", "pet-2"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), ownerID, []string{"pet-1", "pet-2"}).Return(ownedPets("pet-2", "pet-1"), nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), serviceID, "10:00", serveDate).Return(model.Booking{}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, ownerID, booking.OwnerID)

						return nil
					})
				d.repo.EXPECT().InsertPetsTx(gomock.Any(), gomock.Any(), gomock.Len(2)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "missing service",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(serviceModel.Service{}, nil)
			},
			wantKind: failure.KindServiceNotBookable,
			wantCode: http.StatusNotFound,
			wantMsg:  "Service not found",
		},
		{
			name: "service waiting for approval",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				pending := approvedService()
				pending.Status = serviceModel.StatusPending

				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pending, nil)
			},
			wantKind: failure.KindServiceNotBookable,
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot not in catalog",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(false, nil)
			},
			wantKind: failure.KindUnknownTimeslot,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid time slot for this service",
		},
		{
			name: "names the first pet that is not owned",
			req:  createRequest("pet-1", "pet-2", "pet-3"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), ownerID, gomock.Any()).Return(ownedPets("pet-1"), nil)
			},
			wantKind: failure.KindPetNotOwned,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Pet with ID pet-2 not found or doesn't belong to you",
		},
		{
			name: "slot already booked for the date",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), ownerID, gomock.Any()).Return(ownedPets("pet-1"), nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), serviceID, "10:00", serveDate).
					Return(model.Booking{ID: "book-0", Status: model.StatusConfirmed}, nil)
			},
			wantKind: failure.KindSlotAlreadyBooked,
			wantCode: http.StatusConflict,
			wantMsg:  "This time slot is already booked for the selected date",
		},
		{
			name: "unique index violation from a racing admission",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), ownerID, gomock.Any()).Return(ownedPets("pet-1"), nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintActiveSlot})
			},
			wantKind: failure.KindSlotAlreadyBooked,
			wantCode: http.StatusConflict,
		},
		{
			name: "slot removed by a concurrent update",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), ownerID, gomock.Any()).Return(ownedPets("pet-1"), nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
				d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeFkViolation, Constraint: model.ConstraintTimeslot})
			},
			wantKind: failure.KindUnknownTimeslot,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unexpected store error",
			req:  createRequest("pet-1"),
			setup: func(d *bookingDeps) {
				d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(serviceModel.Service{}, storeErr)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			d.inlineTx()
			tt.setup(d)

			res, err := d.svc.Create(ownerCtx(), tt.req)

			if tt.wantCode == http.StatusOK {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "Grooming", res.ServiceName)
				assert.Equal(t, 150, res.Price)
				assert.Equal(t, serveDate, res.ServeDate)
				assert.Equal(t, "pending", res.Status)
				assert.Equal(t, tt.req.PetIDs, res.PetIDs)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

// memoryLedger serialises transactions the way the catalog row lock does.
type memoryLedger struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (l *memoryLedger) withTx(ctx context.Context, fn gRepo.TxFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(ctx, nil)
}

func (l *memoryLedger) findActive(_ context.Context, _ *sqlx.Tx, svid, slot, date string) (model.Booking, error) {
	for _, booking := range l.bookings {
		if booking.ServiceID == svid && booking.Slot == slot &&
			booking.ServeDate.Format(time.DateOnly) == date && booking.Status.IsActive() {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (l *memoryLedger) insert(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	l.bookings = append(l.bookings, booking)

	return nil
}

func wireLedger(d *bookingDeps, ledger *memoryLedger) {
	d.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(ledger.withTx).AnyTimes()
	d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil).AnyTimes()
	d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	d.pets.EXPECT().FindOwnedTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ownedPets("pet-1"), nil).AnyTimes()
	d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(ledger.findActive).AnyTimes()
	d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(ledger.insert).AnyTimes()
	d.repo.EXPECT().InsertPetsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create_ConcurrentAdmissions(t *testing.T) {
	d := newBookingDeps(t)
	ledger := &memoryLedger{}
	wireLedger(d, ledger)

	const attempts = 10

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		rejected int
	)

	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := d.svc.Create(ownerCtx(), createRequest("pet-1"))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				admitted++
			case failure.IsKind(err, failure.KindSlotAlreadyBooked):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, admitted)
	assert.Equal(t, attempts-1, rejected)
	assert.Len(t, ledger.bookings, 1)
}

func TestBookingService_Create_CancelledBookingFreesSlot(t *testing.T) {
	d := newBookingDeps(t)

	date, err := time.Parse(time.DateOnly, serveDate)
	require.NoError(t, err)

	ledger := &memoryLedger{bookings: []model.Booking{
		{ID: "book-0", ServiceID: serviceID, Slot: "10:00", ServeDate: date, Status: model.StatusCancelled},
		{ID: "book-1", ServiceID: serviceID, Slot: "10:00", ServeDate: date.AddDate(0, 0, 1), Status: model.StatusPending},
	}}
	wireLedger(d, ledger)

	_, err = d.svc.Create(ownerCtx(), createRequest("pet-1"))
	require.NoError(t, err)

	_, err = d.svc.Create(ownerCtx(), createRequest("pet-1"))
	assert.True(t, failure.IsKind(err, failure.KindSlotAlreadyBooked))
	assert.Len(t, ledger.bookings, 3)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	req := dto.AvailabilityRequest{ServiceID: serviceID, Slot: "10:00", ServeDate: serveDate}

	tests := []struct {
		name          string
		setup         func(d *bookingDeps)
		wantAvailable bool
		wantKind      failure.Kind
		wantErr       bool
	}{
		{
			name: "free slot",
			setup: func(d *bookingDeps) {
				d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().SlotExists(gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.repo.EXPECT().FindActiveBooking(gomock.Any(), serviceID, "10:00", serveDate).Return(model.Booking{}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "taken slot",
			setup: func(d *bookingDeps) {
				d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().SlotExists(gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.repo.EXPECT().FindActiveBooking(gomock.Any(), serviceID, "10:00", serveDate).
					Return(model.Booking{ID: "book-1", Status: model.StatusConfirmed}, nil)
			},
		},
		{
			name: "retired slot",
			setup: func(d *bookingDeps) {
				d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().SlotExists(gomock.Any(), serviceID, "10:00").Return(false, nil)
			},
			wantKind: failure.KindUnknownTimeslot,
			wantErr:  true,
		},
		{
			name: "service awaiting approval",
			setup: func(d *bookingDeps) {
				pending := approvedService()
				pending.Status = serviceModel.StatusPending

				d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
			},
			wantKind: failure.KindServiceNotBookable,
			wantErr:  true,
		},
		{
			name: "store error",
			setup: func(d *bookingDeps) {
				d.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approvedService(), nil)
				d.slots.EXPECT().SlotExists(gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.repo.EXPECT().FindActiveBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("replica down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			tt.setup(d)

			res, err := d.svc.CheckAvailability(ownerCtx(), req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.AvailabilityResponse{
				ServiceID: serviceID,
				Slot:      "10:00",
				ServeDate: serveDate,
				Available: tt.wantAvailable,
			}, res)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	d := newBookingDeps(t)

	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.BookingView, error) {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "booking.poid = :poid")
			assert.Equal(t, ownerID, args["poid"])
			assert.Equal(t, "booking.servedate DESC, booking.slot", params.SortBy)

			return []model.BookingView{{Booking: model.Booking{ID: "book-1", OwnerID: ownerID}, ServiceName: "Grooming"}}, nil
		})
	d.repo.EXPECT().GetPets(gomock.Any(), []string{"book-1"}).Return([]model.BookingPet{{BookingID: "book-1", PetID: "pet-1"}}, nil)
	d.pets.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]petModel.Pet{{ID: "pet-1", Name: "Rex"}}, nil)

	res, err := d.svc.GetAll(ownerCtx(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, []string{"pet-1"}, res.Bookings[0].PetIDs)
	assert.Equal(t, "Rex", res.Bookings[0].Pets[0].Name)
}

func TestBookingService_GetAllForProvider(t *testing.T) {
	d := newBookingDeps(t)

	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.BookingView, error) {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "service.providerid = :providerid")
			assert.Equal(t, providerID, args["providerid"])

			return []model.BookingView{}, nil
		})

	res, err := d.svc.GetAllForProvider(providerCtx(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, res.Bookings)
}

func TestBookingService_Get(t *testing.T) {
	t.Run("owned booking", func(t *testing.T) {
		d := newBookingDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BookingView{Booking: model.Booking{ID: "book-1", OwnerID: ownerID}}, nil)
		d.repo.EXPECT().GetPets(gomock.Any(), []string{"book-1"}).Return([]model.BookingPet{}, nil)

		res, err := d.svc.Get(ownerCtx(), "book-1")
		require.NoError(t, err)
		assert.Equal(t, "book-1", res.ID)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		d := newBookingDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BookingView{}, nil)

		_, err := d.svc.Get(ownerCtx(), "book-2")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	date, err := time.Parse(time.DateOnly, serveDate)
	require.NoError(t, err)

	booking := func(status model.Status) model.Booking {
		return model.Booking{ID: "book-1", OwnerID: ownerID, ServiceID: serviceID, Slot: "10:00", ServeDate: date, Status: status, PaymentMethod: "cash"}
	}

	tests := []struct {
		name     string
		req      dto.UpdateBookingRequest
		setup    func(d *bookingDeps)
		wantErr  bool
		wantKind failure.Kind
		wantCode int
		wantMsg  string
	}{
		{
			name:     "empty update",
			req:      dto.UpdateBookingRequest{},
			setup:    func(_ *bookingDeps) {},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  "No valid fields to update",
		},
		{
			name: "terminal booking",
			req:  dto.UpdateBookingRequest{PaymentMethod: "card"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusCancelled), nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidBookingState,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Cannot update cancelled booking",
		},
		{
			name: "not found",
			req:  dto.UpdateBookingRequest{PaymentMethod: "card"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "transition outside the table",
			req:  dto.UpdateBookingRequest{Status: "pending"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusConfirmed), nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidBookingState,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "move to a date that is taken",
			req:  dto.UpdateBookingRequest{ServeDate: "2099-01-11"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), serviceID, "10:00", "2099-01-11").
					Return(model.Booking{ID: "book-9", Status: model.StatusPending}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindSlotAlreadyBooked,
			wantCode: http.StatusConflict,
		},
		{
			name: "move to a free date and change payment",
			req:  dto.UpdateBookingRequest{ServeDate: "2099-01-11", PaymentMethod: "card"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)
				d.slots.EXPECT().LockSlotTx(gomock.Any(), gomock.Any(), serviceID, "10:00").Return(true, nil)
				d.repo.EXPECT().FindActiveBookingTx(gomock.Any(), gomock.Any(), serviceID, "10:00", "2099-01-11").Return(model.Booking{}, nil)
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "2099-01-11", fields[model.FieldServeDate])
						assert.Equal(t, "card", fields[model.FieldPaymentMethod])
						assert.Equal(t, ownerID, fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "confirm a pending booking",
			req:  dto.UpdateBookingRequest{Status: "confirmed"},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unchanged values are a no-op",
			req:  dto.UpdateBookingRequest{PaymentMethod: "cash", ServeDate: serveDate},
			setup: func(d *bookingDeps) {
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusPending), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			d.inlineTx()
			tt.setup(d)

			err := d.svc.Update(ownerCtx(), tt.req, "book-1")

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name     string
		current  model.Booking
		wantMsg  string
		wantCode int
	}{
		{name: "pending booking", current: model.Booking{ID: "book-1", Status: model.StatusPending}},
		{name: "already cancelled", current: model.Booking{ID: "book-1", Status: model.StatusCancelled}, wantMsg: "Booking is already cancelled", wantCode: http.StatusBadRequest},
		{name: "completed", current: model.Booking{ID: "book-1", Status: model.StatusCompleted}, wantMsg: "Cannot cancel completed booking", wantCode: http.StatusBadRequest},
		{name: "not found", current: model.Booking{}, wantMsg: "Booking not found or access denied", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			d.inlineTx()

			d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.current, nil)

			if tt.wantMsg == "" {
				d.repo.EXPECT().SetStatusTx(gomock.Any(), gomock.Any(), "book-1", model.StatusCancelled, ownerID).Return(nil)
			}

			err := d.svc.Cancel(ownerCtx(), "book-1")

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_SetStatusByProvider(t *testing.T) {
	t.Run("provider completes a confirmed booking", func(t *testing.T) {
		d := newBookingDeps(t)
		d.inlineTx()

		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "book-1", ServiceID: serviceID, Status: model.StatusConfirmed}, nil)
		d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)
		d.repo.EXPECT().SetStatusTx(gomock.Any(), gomock.Any(), "book-1", model.StatusCompleted, providerID).Return(nil)

		err := d.svc.SetStatusByProvider(providerCtx(), dto.SetStatusRequest{Status: "completed"}, "book-1")
		assert.NoError(t, err)
	})

	t.Run("other provider", func(t *testing.T) {
		d := newBookingDeps(t)
		d.inlineTx()

		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "book-1", ServiceID: serviceID, Status: model.StatusPending}, nil)
		d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "provider-2")
		err := d.svc.SetStatusByProvider(ctx, dto.SetStatusRequest{Status: "confirmed"}, "book-1")

		assert.True(t, failure.IsKind(err, failure.KindNotOwner))
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		d := newBookingDeps(t)
		d.inlineTx()

		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "book-1", ServiceID: serviceID, Status: model.StatusCancelled}, nil)
		d.services.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approvedService(), nil)

		err := d.svc.SetStatusByProvider(providerCtx(), dto.SetStatusRequest{Status: "confirmed"}, "book-1")
		assert.True(t, failure.IsKind(err, failure.KindInvalidBookingState))
	})
}
