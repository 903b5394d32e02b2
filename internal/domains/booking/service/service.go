package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/model/dto"
	"petcare/internal/domains/booking/repository"
	petModel "petcare/internal/domains/pet/model"
	petRepo "petcare/internal/domains/pet/repository"
	serviceModel "petcare/internal/domains/petservice/model"
	serviceRepo "petcare/internal/domains/petservice/repository"
	slotRepo "petcare/internal/domains/timeslot/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/event"
	"petcare/shared/failure"
	"petcare/shared/metrics"
	gRepo "petcare/shared/repository"
	"petcare/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	msgServiceNotFound   = "Service not found"
	msgInvalidSlot       = "Invalid time slot for this service"
	msgSlotBooked        = "This time slot is already booked for the selected date"
	msgBookingNotFound   = "Booking not found or access denied"
	msgNoFieldsToUpdate  = "No valid fields to update"
	msgAlreadyCancelled  = "Booking is already cancelled"
	msgCancelCompleted   = "Cannot cancel completed booking"
	msgNotServiceOwner   = "You can only manage bookings for your own services"
	orderOwnerBookings   = "booking.servedate DESC, booking.slot"
	orderServiceBookings = "booking.servedate ASC, booking.slot"
)

type Booking interface {
	// Create admits a booking. The service, slot, pet ownership and slot availability are
	// checked and the booking is written in one transaction.
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	// CheckAvailability reads without locking, so a later Create may still lose the slot.
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
	GetAllForProvider(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	SetStatusByProvider(ctx context.Context, req dto.SetStatusRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	petRepo     petRepo.Pet
	serviceRepo serviceRepo.PetService
	slotRepo    slotRepo.Timeslot
	tx          gRepo.Transactor
	publisher   event.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	petRepo petRepo.Pet,
	serviceRepo serviceRepo.PetService,
	slotRepo slotRepo.Timeslot,
	tx gRepo.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		petRepo:     petRepo,
		serviceRepo: serviceRepo,
		slotRepo:    slotRepo,
		tx:          tx,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString("servedate must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	var bookedService serviceModel.Service

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		var admitErr error

		bookedService, admitErr = s.admit(ctx, sqltx, booking, req.PetIDs)

		return admitErr
	})
	if err != nil {
		err = mapStoreError(err)
		kind := failure.GetKind(err)

		metrics.IncBookingAdmission(admissionOutcome(kind), string(kind))

		if kind != "" {
			log.Warn().Str("kind", string(kind)).Str("serviceID", req.ServiceID).Str("slot", req.Slot).Msg("booking rejected")

			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.IncBookingAdmission(metrics.OutcomeAccepted, "")

	res.FromModel(model.BookingView{
		Booking:     booking,
		ServiceName: bookedService.Name,
		Price:       bookedService.Price,
		ProviderID:  bookedService.ProviderID,
	}, req.PetIDs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event.BookingCreated, booking.ID, res); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = dto.AvailabilityResponse{ServiceID: req.ServiceID, Slot: req.Slot, ServeDate: req.ServeDate}

	offered, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if offered.ID == constant.Empty || !offered.Status.IsBookable() {
		return res, failure.ServiceNotBookable(msgServiceNotFound) // nolint:wrapcheck
	}

	exists, err := s.slotRepo.SlotExists(ctx, req.ServiceID, req.Slot)
	if err != nil {
		log.Error().Err(err).Msg("failed to check timeslot")

		return res, fmt.Errorf("failed to check timeslot: %w", err)
	}

	if !exists {
		return res, failure.UnknownTimeslot(msgInvalidSlot) // nolint:wrapcheck
	}

	active, err := s.repo.FindActiveBooking(ctx, req.ServiceID, req.Slot, req.ServeDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to find active booking")

		return res, fmt.Errorf("failed to find active booking: %w", err)
	}

	res.Available = active.ID == constant.Empty

	return res, nil
}

// admit runs inside the admission transaction. Locking the catalog row serialises competing
// admissions for the same slot; the partial unique index is the backstop.
func (s *serviceImpl) admit(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, petIDs []string) (serviceModel.Service, error) {
	bookedService, err := s.serviceRepo.GetTx(ctx, sqltx, shared.FilterByID(booking.ServiceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return bookedService, fmt.Errorf("failed to get service: %w", err)
	}

	if bookedService.ID == constant.Empty || !bookedService.Status.IsBookable() {
		return bookedService, failure.ServiceNotBookable(msgServiceNotFound) // nolint:wrapcheck
	}

	exists, err := s.slotRepo.LockSlotTx(ctx, sqltx, booking.ServiceID, booking.Slot)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock timeslot")

		return bookedService, fmt.Errorf("failed to lock timeslot: %w", err)
	}

	if !exists {
		return bookedService, failure.UnknownTimeslot(msgInvalidSlot) // nolint:wrapcheck
	}

	if err := s.checkPetsOwned(ctx, sqltx, booking.OwnerID, petIDs); err != nil {
		return bookedService, err
	}

	active, err := s.repo.FindActiveBookingTx(ctx, sqltx, booking.ServiceID, booking.Slot, booking.ServeDate.Format(constant.DateOnlyFormat))
	if err != nil {
		log.Error().Err(err).Msg("failed to find active booking")

		return bookedService, fmt.Errorf("failed to find active booking: %w", err)
	}

	if active.ID != constant.Empty {
		return bookedService, failure.SlotAlreadyBooked(msgSlotBooked) // nolint:wrapcheck
	}

	if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return bookedService, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := s.repo.InsertPetsTx(ctx, sqltx, dto.ToBookingPets(booking.ID, petIDs)); err != nil {
		log.Error().Err(err).Msg("failed to insert booking pets")

		return bookedService, fmt.Errorf("failed to insert booking pets: %w", err)
	}

	return bookedService, nil
}

// checkPetsOwned names the first pet, in request order, that the owner does not have.
func (s *serviceImpl) checkPetsOwned(ctx context.Context, sqltx *sqlx.Tx, ownerID string, petIDs []string) error {
	owned, err := s.petRepo.FindOwnedTx(ctx, sqltx, ownerID, petIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owned pets")

		return fmt.Errorf("failed to get owned pets: %w", err)
	}

	ownedIDs := make(map[string]struct{}, len(owned))
	for _, pet := range owned {
		ownedIDs[pet.ID] = struct{}{}
	}

	for _, petID := range petIDs {
		if _, ok := ownedIDs[petID]; !ok {
			return failure.PetNotOwned(petID) // nolint:wrapcheck
		}
	}

	return nil
}

// mapStoreError turns constraint violations raised by a racing writer into domain failures.
func mapStoreError(err error) error {
	switch {
	case gRepo.IsUniqueViolation(err, model.ConstraintActiveSlot):
		return failure.SlotAlreadyBooked(msgSlotBooked) // nolint:wrapcheck
	case gRepo.IsForeignKeyViolation(err, model.ConstraintTimeslot):
		return failure.UnknownTimeslot(msgInvalidSlot) // nolint:wrapcheck
	default:
		return err
	}
}

func admissionOutcome(kind failure.Kind) string {
	switch kind {
	case "":
		return metrics.OutcomeError
	case failure.KindSlotAlreadyBooked:
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeRejected
	}
}

// withScope ANDs a mandatory ownership filter in front of the caller's filter.
func withScope(filter gDto.FilterGroup, scopeFilter gDto.Filter) gDto.FilterGroup {
	scoped := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{scopeFilter},
	}

	if len(filter.Filters) > 0 {
		scoped.Filters = append(scoped.Filters, filter)
	}

	return scoped
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params.SortBy = orderOwnerBookings
	params.SortDir = "ASC"

	return s.list(ctx, params, withScope(filter, gDto.Filter{
		Field:    model.FieldOwnerID,
		Operator: gDto.FilterOperatorEq,
		Value:    user,
		Table:    model.TableName,
	}))
}

func (s *serviceImpl) GetAllForProvider(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllForProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params.SortBy = orderServiceBookings
	params.SortDir = "ASC"

	return s.list(ctx, params, withScope(filter, gDto.Filter{
		Field:    serviceModel.FieldProviderID,
		Operator: gDto.FilterOperatorEq,
		Value:    user,
		Table:    serviceModel.TableName,
	}))
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookingIDs := make([]string, 0, len(models))
	for _, mod := range models {
		bookingIDs = append(bookingIDs, mod.ID)
	}

	petIDs, pets, err := s.loadPets(ctx, bookingIDs)
	if err != nil {
		return res, err
	}

	res.FromModels(models, petIDs, total, params.Limit)

	for i := range res.Bookings {
		res.Bookings[i].AttachPets(pets)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// loadPets returns pet ids keyed by booking id, in link order, and the pets themselves keyed by id.
func (s *serviceImpl) loadPets(ctx context.Context, bookingIDs []string) (map[string][]string, map[string]petModel.Pet, error) {
	petIDs := map[string][]string{}
	pets := map[string]petModel.Pet{}

	if len(bookingIDs) == 0 {
		return petIDs, pets, nil
	}

	links, err := s.repo.GetPets(ctx, bookingIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking pets")

		return nil, nil, fmt.Errorf("failed to get booking pets: %w", err)
	}

	ids := make([]string, 0, len(links))

	for _, link := range links {
		petIDs[link.BookingID] = append(petIDs[link.BookingID], link.PetID)
		ids = append(ids, link.PetID)
	}

	if len(ids) == 0 {
		return petIDs, pets, nil
	}

	models, err := s.petRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: petModel.FieldID, Operator: gDto.FilterOperatorIn, Value: ids, Table: petModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get pets")

		return nil, nil, fmt.Errorf("failed to get pets: %w", err)
	}

	for _, pet := range models {
		pets[pet.ID] = pet
	}

	return petIDs, pets, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if res.OwnerID != user {
			return dto.BookingResponse{}, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByOwner(id, model.FieldID, user, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	petIDs, pets, err := s.loadPets(ctx, []string{booking.ID})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, petIDs[booking.ID])
	res.AttachPets(pets)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString(msgNoFieldsToUpdate) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		before model.Booking
		fields map[string]any
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		var txErr error

		before, txErr = s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByOwner(id, model.FieldID, user, model.FieldOwnerID, model.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", txErr)
		}

		if before.ID == constant.Empty {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		fields, txErr = s.updatedFields(ctx, sqltx, before, req)
		if txErr != nil || len(fields) == 0 {
			return txErr
		}

		fields[constant.FieldModifiedAt] = timezone.Now()
		fields[constant.FieldModifiedBy] = user

		if txErr = s.repo.UpdateTx(ctx, sqltx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); txErr != nil {
			log.Error().Err(txErr).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", txErr)
		}

		return nil
	})
	if err != nil {
		err = mapStoreError(err)

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if len(fields) == 0 {
		return nil
	}

	name := event.BookingUpdated
	if _, ok := fields[model.FieldStatus]; ok {
		name = event.BookingStatusChanged
	}

	s.afterChange(ctx, name, id, fields)

	return nil
}

// updatedFields validates the edit against the current row. A servedate move is re-checked
// against the ledger under the catalog row lock.
func (s *serviceImpl) updatedFields(ctx context.Context, sqltx *sqlx.Tx, current model.Booking, req dto.UpdateBookingRequest) (map[string]any, error) {
	if current.Status.IsTerminal() {
		return nil, failure.InvalidBookingState(fmt.Sprintf("Cannot update %s booking", current.Status)) // nolint:wrapcheck
	}

	fields := map[string]any{}
	status := current.Status

	if req.PaymentMethod != constant.Empty && req.PaymentMethod != current.PaymentMethod {
		fields[model.FieldPaymentMethod] = req.PaymentMethod
	}

	if next := model.Status(req.Status); req.Status != constant.Empty && next != current.Status {
		if !current.Status.CanTransitionTo(next) {
			return nil, failure.InvalidBookingState(fmt.Sprintf("Cannot change booking status from %s to %s", current.Status, next)) // nolint:wrapcheck
		}

		fields[model.FieldStatus] = string(next)
		status = next
	}

	if req.ServeDate == constant.Empty || req.ServeDate == current.ServeDate.Format(constant.DateOnlyFormat) {
		return fields, nil
	}

	if status.IsActive() {
		exists, err := s.slotRepo.LockSlotTx(ctx, sqltx, current.ServiceID, current.Slot)
		if err != nil {
			log.Error().Err(err).Msg("failed to lock timeslot")

			return nil, fmt.Errorf("failed to lock timeslot: %w", err)
		}

		if !exists {
			return nil, failure.UnknownTimeslot(msgInvalidSlot) // nolint:wrapcheck
		}

		active, err := s.repo.FindActiveBookingTx(ctx, sqltx, current.ServiceID, current.Slot, req.ServeDate)
		if err != nil {
			log.Error().Err(err).Msg("failed to find active booking")

			return nil, fmt.Errorf("failed to find active booking: %w", err)
		}

		if active.ID != constant.Empty && active.ID != current.ID {
			return nil, failure.SlotAlreadyBooked(msgSlotBooked) // nolint:wrapcheck
		}
	}

	fields[model.FieldServeDate] = req.ServeDate

	return fields, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, txErr := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByOwner(id, model.FieldID, user, model.FieldOwnerID, model.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", txErr)
		}

		switch {
		case booking.ID == constant.Empty:
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		case booking.Status == model.StatusCancelled:
			return failure.InvalidBookingState(msgAlreadyCancelled) // nolint:wrapcheck
		case booking.Status == model.StatusCompleted:
			return failure.InvalidBookingState(msgCancelCompleted) // nolint:wrapcheck
		}

		return s.repo.SetStatusTx(ctx, sqltx, id, model.StatusCancelled, user) //nolint:wrapcheck
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.afterChange(ctx, event.BookingStatusChanged, id, map[string]any{model.FieldStatus: string(model.StatusCancelled)})

	return nil
}

func (s *serviceImpl) SetStatusByProvider(ctx context.Context, req dto.SetStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatusByProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	next, err := model.ParseStatus(req.Status)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		booking, txErr := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", txErr)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("Booking not found") // nolint:wrapcheck
		}

		bookedService, txErr := s.serviceRepo.GetTx(ctx, sqltx, shared.FilterByID(booking.ServiceID, serviceModel.FieldID, serviceModel.TableName))
		if txErr != nil {
			log.Error().Err(txErr).Msg("failed to get service")

			return fmt.Errorf("failed to get service: %w", txErr)
		}

		if bookedService.ProviderID != user {
			return failure.NotOwner(msgNotServiceOwner) // nolint:wrapcheck
		}

		if !booking.Status.CanTransitionTo(next) {
			return failure.InvalidBookingState(fmt.Sprintf("Cannot change booking status from %s to %s", booking.Status, next)) // nolint:wrapcheck
		}

		return s.repo.SetStatusTx(ctx, sqltx, id, next, user) //nolint:wrapcheck
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		log.Error().Err(err).Msg("failed to set booking status")

		return fmt.Errorf("failed to set booking status: %w", err)
	}

	s.afterChange(ctx, event.BookingStatusChanged, id, map[string]any{model.FieldStatus: string(next)})

	return nil
}

// afterChange publishes the change and drops cached reads once the transaction has committed.
func (s *serviceImpl) afterChange(ctx context.Context, name event.Name, id string, fields map[string]any) {
	payload := map[string]any{"bookingId": id}
	for key, value := range fields {
		if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
			continue
		}

		payload[key] = value
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, name, id, payload); err != nil {
			log.Error().Err(err).Msg("failed to publish booking event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
