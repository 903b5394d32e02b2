package petservice

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/petservice/model"
	"petcare/internal/domains/petservice/model/dto"
	"petcare/internal/domains/petservice/service"
	slotDto "petcare/internal/domains/timeslot/model/dto"
	slotService "petcare/internal/domains/timeslot/service"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PetService
	slots   slotService.Timeslot
	otel    otel.Otel
}

func New(service service.PetService, slots slotService.Timeslot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		slots:   slots,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Put("/{id}", handler.UpdateService)
		routerGroup.Patch("/{id}/status", handler.ModerateService)
		routerGroup.Get("/{id}/timeslots", handler.GetTimeslots)
		routerGroup.Put("/{id}/timeslots", handler.UpdateTimeslots)
		routerGroup.Post("/{id}/timeslots/check", handler.CheckTimeslots)
	})
}

// CreateService registers a service for moderation.
// @Summary Create a service
// @Description The service starts pending and is bookable once a manager approves it.
// @Tags Service
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.ServiceResponse] "Created service"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, created)
}

// GetServices lists approved services.
// @Summary Get services
// @Tags Service
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param name query string false "Filter by name"
// @Param typeid query string false "Filter by service type"
// @Param providerid query string false "Filter by provider"
// @Success 200 {object} response.Data[dto.GetServicesResponse] "List of services"
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	for _, field := range []string{model.FieldTypeID, model.FieldProviderID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	services, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}

// GetServiceByID retrieves a service with its timeslots.
// @Summary Get a service by ID
// @Tags Service
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, found)
}

// UpdateService changes descriptive fields and, when timeslots is present, the slot set.
// @Summary Update a service by ID
// @Description Removing a timeslot that has active bookings fails with 409 and a conflict report; nothing is applied.
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Data[dto.ServiceResponse] "Updated service"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	updated, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, updated)
}

// ModerateService approves or rejects a service.
// @Summary Moderate a service
// @Tags Service
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.ModerateServiceRequest true "Moderate Service Request"
// @Success 200 {object} response.Message "Service status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ModerateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModerateService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ModerateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Moderate(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to moderate service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service status updated successfully")
}

// GetTimeslots lists the slot labels of a service.
// @Summary Get the timeslots of a service
// @Tags Timeslot
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[slotDto.TimeslotsResponse] "Timeslots"
// @Failure 500 {object} response.Error
// @Router /v1/services/{id}/timeslots [get]
func (handler *Handler) GetTimeslots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeslots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	slots, err := handler.slots.List(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list timeslots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

// UpdateTimeslots replaces the slot set of a service.
// @Summary Replace the timeslots of a service
// @Description Fails with 409 and a conflict report when a removed slot has active bookings from today on.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body slotDto.UpdateTimeslotsRequest true "Timeslots"
// @Success 200 {object} response.Data[slotDto.TimeslotsResponse] "Timeslots"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id}/timeslots [put]
// @Security BearerAuth
func (handler *Handler) UpdateTimeslots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTimeslots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := slotDto.UpdateTimeslotsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	slots, err := handler.slots.UpdateSlots(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update timeslots")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Timeslots replaced successfully by user " + user)

	response.WithJSON(w, http.StatusOK, slots)
}

// CheckTimeslots previews a slot update.
// @Summary Check a timeslot update
// @Description Reports the slots that would be removed and added, and the bookings blocking removal.
// @Tags Timeslot
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body slotDto.UpdateTimeslotsRequest true "Timeslots"
// @Success 200 {object} response.Data[slotDto.CheckTimeslotsResponse] "Preview"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id}/timeslots/check [post]
// @Security BearerAuth
func (handler *Handler) CheckTimeslots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckTimeslots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := slotDto.UpdateTimeslotsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	preview, err := handler.slots.CheckSlots(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check timeslots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, preview)
}
