package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/booking/model"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/logger"
	gRepo "petcare/shared/repository"
	"petcare/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// Booking is the ledger of reservations against (service, slot, servedate).
type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingView, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingView, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	InsertPetsTx(ctx context.Context, sqltx *sqlx.Tx, pets []model.BookingPet) error
	// GetPets returns the pet links of the given bookings.
	GetPets(ctx context.Context, bookingIDs []string) ([]model.BookingPet, error)
	// FindActiveBooking returns the active booking on exactly servedate, or the zero value.
	FindActiveBooking(ctx context.Context, serviceID, slot, servedate string) (model.Booking, error)
	FindActiveBookingTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot, servedate string) (model.Booking, error)
	// FindActiveBookingsForSlot returns active bookings on or after fromDate, earliest first.
	FindActiveBookingsForSlot(ctx context.Context, serviceID, slot, fromDate string) ([]model.ActiveBooking, error)
	FindActiveBookingsForSlotTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot, fromDate string) ([]model.ActiveBooking, error)
	// SetStatusTx writes the status without checking the transition.
	SetStatusTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, status model.Status, user string) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type repositoryImpl struct {
	bookings gRepo.Repository[model.Booking]
	views    gRepo.Repository[model.BookingView]
	pets     gRepo.Repository[model.BookingPet]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		views:    gRepo.NewRepository[model.BookingView](model.EntityName, model.TableName, model.FieldID, db, otel),
		pets:     gRepo.NewRepository[model.BookingPet](model.PetEntity, model.PetTableName, model.FieldID, db, otel),
		db:       db,
		otel:     otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingView, error) {
	return r.views.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingView, error) {
	return r.views.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.views.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error) {
	return r.bookings.GetForUpdateTx(ctx, sqltx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error {
	return r.bookings.InsertTx(ctx, sqltx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertPetsTx(ctx context.Context, sqltx *sqlx.Tx, pets []model.BookingPet) error {
	if len(pets) == 0 {
		return nil
	}

	return r.pets.InsertBulkTx(ctx, sqltx, pets) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPets(ctx context.Context, bookingIDs []string) ([]model.BookingPet, error) {
	if len(bookingIDs) == 0 {
		return []model.BookingPet{}, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    bookingIDs,
				Table:    model.PetTableName,
			},
		},
	}

	return r.pets.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func activeFilter(serviceID, slot, servedate, dateOperator string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldServiceID, Operator: gDto.FilterOperatorEq, Value: serviceID, Table: model.TableName},
			gDto.Filter{Field: model.FieldSlot, Operator: gDto.FilterOperatorEq, Value: slot, Table: model.TableName},
			gDto.Filter{Field: model.FieldServeDate, Operator: dateOperator, Value: servedate, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorNotIn, Value: model.TerminalStatuses(), Table: model.TableName},
		},
	}
}

func (r *repositoryImpl) FindActiveBooking(ctx context.Context, serviceID, slot, servedate string) (model.Booking, error) {
	return r.bookings.Get(ctx, activeFilter(serviceID, slot, servedate, gDto.FilterOperatorEq)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindActiveBookingTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot, servedate string) (model.Booking, error) {
	return r.bookings.GetTx(ctx, sqltx, activeFilter(serviceID, slot, servedate, gDto.FilterOperatorEq)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindActiveBookingsForSlot(ctx context.Context, serviceID, slot, fromDate string) ([]model.ActiveBooking, error) {
	return r.findActiveBookingsForSlot(ctx, r.db.Read, serviceID, slot, fromDate)
}

func (r *repositoryImpl) FindActiveBookingsForSlotTx(ctx context.Context, sqltx *sqlx.Tx, serviceID, slot, fromDate string) ([]model.ActiveBooking, error) {
	return r.findActiveBookingsForSlot(ctx, sqltx, serviceID, slot, fromDate)
}

func (r *repositoryImpl) findActiveBookingsForSlot(ctx context.Context, prep preparer, serviceID, slot, fromDate string) ([]model.ActiveBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.findActiveBookingsForSlot")
	defer scope.End()

	filter := activeFilter(serviceID, slot, fromDate, gDto.FilterOperatorGreaterEq)
	where, args := r.bookings.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(`SELECT booking.bookid, booking.servedate, booking.status,
		users.name AS owner_name, users.email AS owner_email,
		COALESCE(STRING_AGG(pet.name, ', ' ORDER BY pet.name), '') AS pet_names
		FROM booking
		JOIN users ON users.userid = booking.poid
		LEFT JOIN booking_pet ON booking_pet.bookid = booking.bookid
		LEFT JOIN pet ON pet.petid = booking_pet.petid
		%s
		GROUP BY booking.bookid, booking.servedate, booking.status, users.name, users.email
		ORDER BY booking.servedate ASC, booking.bookid ASC`, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bookings := []model.ActiveBooking{}

	prepare, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to prepare statement (active bookings): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return bookings, fmt.Errorf("failed to get active bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) SetStatusTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string, status model.Status, user string) error {
	fields := map[string]any{
		model.FieldStatus:        string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.TableName},
		},
	}

	return r.bookings.UpdateTx(ctx, sqltx, fields, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	return r.bookings.UpdateTx(ctx, sqltx, req, filter) //nolint:wrapcheck
}
