package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/timeslot/model"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/logger"
	gRepo "petcare/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Timeslot is the per-service catalog of bookable slot labels. Only offered (active) rows
// are visible; removed slots are retired so bookings that reference them stay valid.
type Timeslot interface {
	// ListSlots returns the offered slots of a service in ascending order.
	ListSlots(ctx context.Context, serviceID string) ([]string, error)
	ListSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string) ([]string, error)
	SlotExists(ctx context.Context, serviceID, slot string) (bool, error)
	// LockSlotTx locks one offered catalog row and reports whether it exists.
	LockSlotTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot string) (bool, error)
	// LockSlotsTx locks every offered catalog row of a service and returns the slots in ascending order.
	LockSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string) ([]string, error)
	// ReplaceSlotsTx makes the offered set equal to desired. It does not check bookings.
	ReplaceSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, desired []string) error
	// InsertSlotsTx offers the slots, reviving retired rows.
	InsertSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, slots []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Timeslot]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Timeslot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Timeslot](model.EntityName, model.TableName, model.FieldSlot, db, otel),
		otel:       otel,
	}
}

func filterByService(serviceID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceID,
				Operator: gDto.FilterOperatorEq,
				Value:    serviceID,
				Table:    model.TableName,
			},
		},
	}
}

// offered narrows a catalog filter to slots the service still offers.
func offered(filter gDto.FilterGroup) gDto.FilterGroup {
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldActive,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.TableName,
	})

	return filter
}

func filterBySlots(serviceID string, slots ...string) gDto.FilterGroup {
	filter := filterByService(serviceID)

	operator := gDto.FilterOperatorIn
	var value any = slots

	if len(slots) == 1 {
		operator = gDto.FilterOperatorEq
		value = slots[0]
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldSlot,
		Operator: operator,
		Value:    value,
		Table:    model.TableName,
	})

	return filter
}

func orderedBySlot() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldSlot),
		SortDir: "ASC",
	}
}

func toSlots(models []model.Timeslot) []string {
	slots := make([]string, 0, len(models))

	for _, mod := range models {
		slots = append(slots, mod.Slot)
	}

	return slots
}

func (r *repositoryImpl) ListSlots(ctx context.Context, serviceID string) ([]string, error) {
	models, err := r.GetAll(ctx, orderedBySlot(), offered(filterByService(serviceID)))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return toSlots(models), nil
}

func (r *repositoryImpl) ListSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string) ([]string, error) {
	models, err := r.GetAllTx(ctx, sqltx, orderedBySlot(), offered(filterByService(serviceID)))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return toSlots(models), nil
}

func (r *repositoryImpl) SlotExists(ctx context.Context, serviceID, slot string) (bool, error) {
	return r.Exist(ctx, offered(filterBySlots(serviceID, slot))) //nolint:wrapcheck
}

func (r *repositoryImpl) LockSlotTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot string) (bool, error) {
	locked, err := r.GetForUpdateTx(ctx, sqltx, offered(filterBySlots(serviceID, slot)))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return locked.Slot != constant.Empty, nil
}

func (r *repositoryImpl) LockSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string) ([]string, error) {
	models, err := r.GetAllForUpdateTx(ctx, sqltx, orderedBySlot(), offered(filterByService(serviceID)))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return toSlots(models), nil
}

func (r *repositoryImpl) ReplaceSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, desired []string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".timeslot.ReplaceSlotsTx")
	defer scope.End()

	current, err := r.ListSlotsTx(ctx, sqltx, serviceID)
	if err != nil {
		return err
	}

	toRemove, toAdd := model.Diff(current, desired)

	if len(toRemove) > 0 {
		retire := map[string]any{model.FieldActive: false}

		if err := r.UpdateTx(ctx, sqltx, retire, filterBySlots(serviceID, toRemove...)); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return r.InsertSlotsTx(ctx, sqltx, serviceID, toAdd)
}

func upsertSlotsQuery() string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES (:%s, :%s, :%s) ON CONFLICT (%s, %s) DO UPDATE SET %s = TRUE",
		model.TableName, model.FieldServiceID, model.FieldSlot, model.FieldActive,
		model.FieldServiceID, model.FieldSlot, model.FieldActive,
		model.FieldServiceID, model.FieldSlot, model.FieldActive,
	)
}

func (r *repositoryImpl) InsertSlotsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, slots []string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".timeslot.InsertSlotsTx")
	defer scope.End()

	if len(slots) == 0 {
		return nil
	}

	query := upsertSlotsQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, model.ToModels(serviceID, slots)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert timeslots: %w", err)
	}

	return nil
}
