package service

//go:generate go run go.uber.org/mock/mockgen -source=./detector.go -destination=../mocks/detector_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/infras/otel"
	"petcare/internal/domains/booking/model"
	"petcare/internal/domains/booking/model/dto"
	"petcare/internal/domains/booking/repository"
	"petcare/shared/constant"
	"petcare/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// ConflictDetector finds active bookings that occupy slots on or after a date.
type ConflictDetector interface {
	// DetectConflicts reads outside any transaction, for previews.
	DetectConflicts(ctx context.Context, serviceID string, slots []string, fromDate string) ([]dto.SlotConflict, error)
	// DetectConflictsTx reads inside the caller's transaction.
	DetectConflictsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, slots []string, fromDate string) ([]dto.SlotConflict, error)
}

type detectorImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func NewConflictDetector(repo repository.Booking, otel otel.Otel) ConflictDetector {
	return &detectorImpl{
		repo: repo,
		otel: otel,
	}
}

type slotLookup func(ctx context.Context, serviceID, slot, fromDate string) ([]model.ActiveBooking, error)

func (d *detectorImpl) DetectConflicts(ctx context.Context, serviceID string, slots []string, fromDate string) (res []dto.SlotConflict, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DetectConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return d.detect(ctx, serviceID, slots, fromDate, d.repo.FindActiveBookingsForSlot)
}

func (d *detectorImpl) DetectConflictsTx(ctx context.Context, sqltx *sqlx.Tx, serviceID string, slots []string, fromDate string) (res []dto.SlotConflict, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DetectConflictsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lookup := func(ctx context.Context, serviceID, slot, fromDate string) ([]model.ActiveBooking, error) {
		return d.repo.FindActiveBookingsForSlotTx(ctx, sqltx, serviceID, slot, fromDate)
	}

	return d.detect(ctx, serviceID, slots, fromDate, lookup)
}

// detect keeps the order of slots and reports only those with at least one active booking.
func (d *detectorImpl) detect(ctx context.Context, serviceID string, slots []string, fromDate string, lookup slotLookup) ([]dto.SlotConflict, error) {
	if fromDate == constant.Empty {
		fromDate = timezone.Today()
	}

	conflicts := []dto.SlotConflict{}

	for _, slot := range slots {
		bookings, err := lookup(ctx, serviceID, slot, fromDate)
		if err != nil {
			log.Error().Err(err).Str("serviceID", serviceID).Str("slot", slot).Msg("failed to find active bookings for slot")

			return nil, fmt.Errorf("failed to find active bookings for slot %s: %w", slot, err)
		}

		if len(bookings) == 0 {
			continue
		}

		conflicts = append(conflicts, dto.NewSlotConflict(slot, bookings))
	}

	return conflicts, nil
}
