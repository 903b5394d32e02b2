package model

import (
	"fmt"
	"petcare/shared/model"
	"slices"
	"time"
)

const (
	TableName    = "booking"
	PetTableName = "booking_pet"
	EntityName   = "booking"
	PetEntity    = "booking_pet"

	FieldID            = "bookid"
	FieldOwnerID       = "poid"
	FieldServiceID     = "svid"
	FieldSlot          = "slot"
	FieldServeDate     = "servedate"
	FieldPaymentMethod = "payment_method"
	FieldStatus        = "status"
	FieldBookTimestamp = "book_timestamp"
	FieldPetID         = "petid"

	// ConstraintActiveSlot is the partial unique index over active bookings.
	ConstraintActiveSlot = "booking_active_slot_uidx"
	// ConstraintTimeslot is the (svid, slot) foreign key into the timeslot catalog.
	ConstraintTimeslot = "booking_timeslot_fkey"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// TerminalStatuses never occupy a slot.
func TerminalStatuses() []string {
	return []string{string(StatusCancelled), string(StatusCompleted)}
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", value)
	}

	return status, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsActive reports whether a booking in this status occupies its slot.
func (s Status) IsActive() bool {
	return s.IsValid() && !s.IsTerminal()
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

type Booking struct {
	ID            string    `db:"bookid"`
	OwnerID       string    `db:"poid"`
	ServiceID     string    `db:"svid"`
	Slot          string    `db:"slot"`
	ServeDate     time.Time `db:"servedate"`
	PaymentMethod string    `db:"payment_method"`
	Status        Status    `db:"status"`
	BookTimestamp time.Time `db:"book_timestamp"`
	model.Metadata
}

// BookingView is a booking joined with the service it reserves.
type BookingView struct {
	Booking
	ServiceName string `column:"name"       db:"service_name" table:"service"`
	Price       int    `column:"price"      db:"price"        table:"service"`
	ProviderID  string `column:"providerid" db:"providerid"   table:"service"`
}

func (BookingView) GetJoinQuery() string {
	return fmt.Sprintf("JOIN service ON service.serviceid = %s.%s", TableName, FieldServiceID)
}

type BookingPet struct {
	BookingID string `db:"bookid"`
	PetID     string `db:"petid"`
}

// ActiveBooking is one occupant of a slot as reported to a provider.
type ActiveBooking struct {
	BookingID  string    `db:"bookid"`
	ServeDate  time.Time `db:"servedate"`
	Status     Status    `db:"status"`
	OwnerName  string    `db:"owner_name"`
	OwnerEmail string    `db:"owner_email"`
	PetNames   string    `db:"pet_names"`
}
