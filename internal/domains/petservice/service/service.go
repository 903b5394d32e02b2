package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=PetService=MockPetServiceService

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/internal/domains/petservice/model"
	"petcare/internal/domains/petservice/model/dto"
	"petcare/internal/domains/petservice/repository"
	slotModel "petcare/internal/domains/timeslot/model"
	slotDto "petcare/internal/domains/timeslot/model/dto"
	slotRepo "petcare/internal/domains/timeslot/repository"
	slotService "petcare/internal/domains/timeslot/service"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/event"
	"petcare/shared/failure"
	gRepo "petcare/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

const (
	msgServiceNotFound = "Service not found"
	msgNotOwner        = "You can only update your own services"
)

type PetService interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceResponse, error)
	// GetAll lists approved services only.
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	// Get hides unapproved services from everyone but their provider and managers.
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (dto.ServiceResponse, error)
	Moderate(ctx context.Context, req dto.ModerateServiceRequest, id string) error
}

type serviceImpl struct {
	repo      repository.PetService
	slotRepo  slotRepo.Timeslot
	slots     slotService.Timeslot
	tx        gRepo.Transactor
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.PetService,
	slotRepo slotRepo.Timeslot,
	slots slotService.Timeslot,
	tx gRepo.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) PetService {
	return &serviceImpl{
		repo:      repo,
		slotRepo:  slotRepo,
		slots:     slots,
		tx:        tx,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	service := req.ToModel(user)
	slots := slotModel.Sorted(req.Timeslots)

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, sqltx, service); err != nil {
			return fmt.Errorf("failed to insert service: %w", err)
		}

		if err := s.slotRepo.InsertSlotsTx(ctx, sqltx, service.ID, slots); err != nil {
			return fmt.Errorf("failed to insert timeslots: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	res.FromModel(service, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event.ServiceCreated, service.ID, res); err != nil {
			log.Error().Err(err).Msg("failed to publish service created event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	approved := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    string(model.StatusApproved),
				Table:    model.TableName,
			},
		},
	}

	if len(filter.Filters) > 0 {
		approved.Filters = append(approved.Filters, filter)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, params, approved)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.count(ctx, params, approved)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, approved)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountService, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service count to cache")
		}
	}()

	return res, nil
}

func canView(res dto.ServiceResponse, user, role string) bool {
	return res.Status == string(model.StatusApproved) || res.ProviderID == user || role == constant.RoleManager
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if !canView(res, user, role) {
			return dto.ServiceResponse{}, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
		}

		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	slots, err := s.slotRepo.ListSlots(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to list timeslots")

		return res, fmt.Errorf("failed to list timeslots: %w", err)
	}

	res.FromModel(service, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	if !canView(res, user, role) {
		return dto.ServiceResponse{}, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	return res, nil
}

// Update applies descriptive fields and the slot set in one transaction. The slot set goes
// through the conflict check; on conflict nothing is written.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("No valid fields to update") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var change slotDto.SlotChange

	err = s.tx.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		service, txErr := s.repo.GetForUpdateTx(ctx, sqltx, filter)
		if txErr != nil {
			return fmt.Errorf("failed to lock service: %w", txErr)
		}

		if service.ID == constant.Empty {
			return failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
		}

		if service.ProviderID != user {
			return failure.NotOwner(msgNotOwner) // nolint:wrapcheck
		}

		if req.HasFieldChanges() {
			if txErr = s.repo.UpdateTx(ctx, sqltx, shared.TransformFields(req, user), filter); txErr != nil {
				return fmt.Errorf("failed to update service: %w", txErr)
			}

			if service, txErr = s.repo.GetTx(ctx, sqltx, filter); txErr != nil {
				return fmt.Errorf("failed to read back service: %w", txErr)
			}
		}

		slots, txErr := s.slotsAfterUpdateTx(ctx, sqltx, id, req.Timeslots, &change)
		if txErr != nil {
			return txErr
		}

		res.FromModel(service, slots)

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to update service")

		return res, fmt.Errorf("failed to update service: %w", err)
	}

	s.slots.AfterCommit(ctx, change)
	s.invalidate(ctx, id)

	return res, nil
}

// slotsAfterUpdateTx applies a requested catalog change and returns the offered set as the
// transaction sees it.
func (s *serviceImpl) slotsAfterUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string, desired *[]string, change *slotDto.SlotChange) ([]string, error) {
	if desired == nil {
		slots, err := s.slotRepo.ListSlotsTx(ctx, sqltx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to list timeslots: %w", err)
		}

		return slots, nil
	}

	applied, err := s.slots.UpdateSlotsTx(ctx, sqltx, id, *desired)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	*change = applied

	return applied.Timeslots, nil
}

func (s *serviceImpl) Moderate(ctx context.Context, req dto.ModerateServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Moderate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	service, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	if string(service.Status) == req.Status {
		return nil
	}

	fields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: req.Status}, user)

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to moderate service")

		return fmt.Errorf("failed to moderate service: %w", err)
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		payload := map[string]string{"serviceid": id, "status": req.Status}
		if err := s.publisher.Publish(c, event.ServiceModerated, id, payload); err != nil {
			log.Error().Err(err).Msg("failed to publish service moderated event")
		}
	}()

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()
}
