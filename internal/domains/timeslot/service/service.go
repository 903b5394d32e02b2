package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Timeslot=MockTimeslotService

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	bookingService "petcare/internal/domains/booking/service"
	serviceModel "petcare/internal/domains/petservice/model"
	serviceRepo "petcare/internal/domains/petservice/repository"
	"petcare/internal/domains/timeslot/model"
	"petcare/internal/domains/timeslot/model/dto"
	"petcare/internal/domains/timeslot/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	"petcare/shared/event"
	"petcare/shared/failure"
	"petcare/shared/metrics"
	gRepo "petcare/shared/repository"
	"petcare/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheListTimeslot = "timeslot:list"
	// cacheGetService must match the service detail cache, which embeds the slot list.
	cacheGetService = "service:get"
)

const (
	msgServiceNotFound = "Service not found"
	msgNotOwner        = "You can only manage timeslots of your own services"
	msgConflict        = "Cannot remove timeslots that have active bookings"
)

type Timeslot interface {
	List(ctx context.Context, serviceID string) (dto.TimeslotsResponse, error)
	// UpdateSlots replaces the slot set of a service in its own transaction.
	UpdateSlots(ctx context.Context, serviceID string, req dto.UpdateTimeslotsRequest) (dto.TimeslotsResponse, error)
	// UpdateSlotsTx replaces the slot set inside the caller's transaction. Nothing is written
	// when any removed slot still has active bookings from today on.
	UpdateSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, desired []string) (dto.SlotChange, error)
	// AfterCommit publishes a committed change and drops stale cached reads.
	AfterCommit(ctx context.Context, change dto.SlotChange)
	// CheckSlots reports what UpdateSlots would do without writing anything.
	CheckSlots(ctx context.Context, serviceID string, req dto.UpdateTimeslotsRequest) (dto.CheckTimeslotsResponse, error)
}

type serviceImpl struct {
	repo        repository.Timeslot
	serviceRepo serviceRepo.PetService
	detector    bookingService.ConflictDetector
	tx          gRepo.Transactor
	publisher   event.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Timeslot,
	serviceRepo serviceRepo.PetService,
	detector bookingService.ConflictDetector,
	tx gRepo.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Timeslot {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		detector:    detector,
		tx:          tx,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, serviceID string) (res dto.TimeslotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListTimeslot, serviceID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for timeslots")

		return res, nil
	}

	slots, err := s.repo.ListSlots(ctx, serviceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list timeslots")

		return res, fmt.Errorf("failed to list timeslots: %w", err)
	}

	res = dto.TimeslotsResponse{ServiceID: serviceID, Timeslots: slots}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save timeslots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateSlots(ctx context.Context, serviceID string, req dto.UpdateTimeslotsRequest) (res dto.TimeslotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var change dto.SlotChange

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		var txErr error

		change, txErr = s.UpdateSlotsTx(ctx, sqltx, serviceID, req.Timeslots)

		return txErr
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to update timeslots")

		return res, fmt.Errorf("failed to update timeslots: %w", err)
	}

	s.AfterCommit(ctx, change)

	return dto.TimeslotsResponse{ServiceID: serviceID, Timeslots: change.Timeslots}, nil
}

func (s *serviceImpl) UpdateSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, desired []string) (change dto.SlotChange, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSlotsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	change.ServiceID = serviceID

	owned, err := s.serviceRepo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(serviceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to lock service")
		metrics.IncTimeslotMutation(metrics.OutcomeError)

		return change, fmt.Errorf("failed to lock service: %w", err)
	}

	if owned.ID == constant.Empty {
		metrics.IncTimeslotMutation(metrics.OutcomeRejected)

		return change, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	if owned.ProviderID != user {
		metrics.IncTimeslotMutation(metrics.OutcomeRejected)

		return change, failure.NotOwner(msgNotOwner) // nolint:wrapcheck
	}

	current, err := s.repo.LockSlotsTx(ctx, sqltx, serviceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock timeslots")
		metrics.IncTimeslotMutation(metrics.OutcomeError)

		return change, fmt.Errorf("failed to lock timeslots: %w", err)
	}

	change.Removed, change.Added = model.Diff(current, desired)
	change.Timeslots = model.Sorted(desired)

	if !change.Changed() {
		metrics.IncTimeslotMutation(metrics.OutcomeAccepted)

		return change, nil
	}

	if len(change.Removed) > 0 {
		conflicts, err := s.detector.DetectConflictsTx(ctx, sqltx, serviceID, change.Removed, timezone.Today())
		if err != nil {
			metrics.IncTimeslotMutation(metrics.OutcomeError)

			return change, fmt.Errorf("failed to detect timeslot conflicts: %w", err)
		}

		if len(conflicts) > 0 {
			metrics.IncTimeslotMutation(metrics.OutcomeConflict)
			metrics.AddTimeslotConflicts(len(conflicts))

			return change, failure.TimeslotConflict(msgConflict, dto.NewConflictReport(conflicts)) // nolint:wrapcheck
		}
	}

	if err = s.repo.ReplaceSlotsTx(ctx, sqltx, serviceID, change.Timeslots); err != nil {
		log.Error().Err(err).Msg("failed to replace timeslots")
		metrics.IncTimeslotMutation(metrics.OutcomeError)

		return change, fmt.Errorf("failed to replace timeslots: %w", err)
	}

	metrics.IncTimeslotMutation(metrics.OutcomeAccepted)

	return change, nil
}

func (s *serviceImpl) AfterCommit(ctx context.Context, change dto.SlotChange) {
	if !change.Changed() {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event.TimeslotsReplaced, change.ServiceID, change); err != nil {
			log.Error().Err(err).Msg("failed to publish timeslots replaced event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheListTimeslot, change.ServiceID)); err != nil {
			log.Error().Err(err).Msg("failed to delete timeslots from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, change.ServiceID)); err != nil {
			log.Error().Err(err).Msg("failed to delete service from cache")
		}
	}()
}

func (s *serviceImpl) CheckSlots(ctx context.Context, serviceID string, req dto.UpdateTimeslotsRequest) (res dto.CheckTimeslotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	owned, err := s.serviceRepo.Get(ctx, shared.FilterByID(serviceID, serviceModel.FieldID, serviceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if owned.ID == constant.Empty {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	if owned.ProviderID != user {
		return res, failure.NotOwner(msgNotOwner) // nolint:wrapcheck
	}

	current, err := s.repo.ListSlots(ctx, serviceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list timeslots")

		return res, fmt.Errorf("failed to list timeslots: %w", err)
	}

	res.ServiceID = serviceID
	res.ToRemove, res.ToAdd = model.Diff(current, req.Timeslots)
	res.Conflicts, err = s.detector.DetectConflicts(ctx, serviceID, res.ToRemove, timezone.Today())

	if err != nil {
		return res, fmt.Errorf("failed to detect timeslot conflicts: %w", err)
	}

	res.Safe = len(res.Conflicts) == 0
	if !res.Safe {
		res.Suggestions = dto.Suggestions()
	}

	return res, nil
}
