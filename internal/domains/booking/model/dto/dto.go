package dto

import (
	"petcare/internal/domains/booking/model"
	petModel "petcare/internal/domains/pet/model"
	"petcare/shared"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	gModel "petcare/shared/model"
	"petcare/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID     string   `json:"serviceid"      validate:"required"`
	Slot          string   `json:"slot"           validate:"required,slot"`
	ServeDate     string   `json:"servedate"      validate:"required,servedate=future"`
	PaymentMethod string   `json:"payment_method" validate:"required,max=50"`
	PetIDs        []string `json:"petIds"         validate:"required,min=1,max=20,unique,dive,required"`
}

func (c *CreateBookingRequest) ToModel(user string, now time.Time) (model.Booking, error) {
	serveDate, err := timezone.ParseDate(c.ServeDate)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		ID:            uuid.NewString(),
		OwnerID:       user,
		ServiceID:     c.ServiceID,
		Slot:          c.Slot,
		ServeDate:     serveDate,
		PaymentMethod: c.PaymentMethod,
		Status:        model.StatusPending,
		BookTimestamp: now,
		Metadata:      gModel.NewMetadata(user, now),
	}, nil
}

func ToBookingPets(bookingID string, petIDs []string) []model.BookingPet {
	pets := make([]model.BookingPet, 0, len(petIDs))

	for _, petID := range petIDs {
		pets = append(pets, model.BookingPet{BookingID: bookingID, PetID: petID})
	}

	return pets
}

// UpdateBookingRequest is the owner's edit. Only payment_method maps straight to a column;
// servedate and status go through their own checks.
type UpdateBookingRequest struct {
	ServeDate     string `json:"servedate"      validate:"omitempty,servedate=future"`
	PaymentMethod string `db:"payment_method"   json:"payment_method" validate:"omitempty,max=50"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return *u == UpdateBookingRequest{}
}

// AvailabilityRequest is read from the query string.
type AvailabilityRequest struct {
	ServiceID string `json:"serviceid" validate:"required"`
	Slot      string `json:"slot"      validate:"required,slot"`
	ServeDate string `json:"servedate" validate:"required,servedate=future"`
}

type AvailabilityResponse struct {
	ServiceID string `json:"serviceid"`
	Slot      string `json:"slot"`
	ServeDate string `json:"servedate"`
	Available bool   `json:"available"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
}

type PetResponse struct {
	ID    string `json:"petid"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
}

type BookingResponse struct {
	ID            string        `json:"bookingId"`
	OwnerID       string        `json:"poid"`
	ServiceID     string        `json:"serviceid"`
	ServiceName   string        `json:"service_name"`
	Price         int           `json:"price"`
	Slot          string        `json:"slot"`
	ServeDate     string        `json:"servedate"`
	PaymentMethod string        `json:"payment_method"`
	Status        string        `json:"status"`
	BookTimestamp string        `json:"book_timestamp"`
	PetIDs        []string      `json:"petIds"`
	Pets          []PetResponse `json:"pets,omitempty"`
	ProviderID    string        `json:"-"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(view model.BookingView, petIDs []string) {
	r.ID = view.ID
	r.OwnerID = view.OwnerID
	r.ServiceID = view.ServiceID
	r.ServiceName = view.ServiceName
	r.Price = view.Price
	r.Slot = view.Slot
	r.ServeDate = view.ServeDate.Format(constant.DateOnlyFormat)
	r.PaymentMethod = view.PaymentMethod
	r.Status = string(view.Status)
	r.BookTimestamp = timezone.Format(view.BookTimestamp, constant.DateFormat)
	r.ProviderID = view.ProviderID
	r.PetIDs = petIDs

	if r.PetIDs == nil {
		r.PetIDs = []string{}
	}

	r.Metadata.FromModel(view.Metadata)
}

// AttachPets fills Pets from the loaded pet rows, keeping PetIDs order.
func (r *BookingResponse) AttachPets(pets map[string]petModel.Pet) {
	r.Pets = make([]PetResponse, 0, len(r.PetIDs))

	for _, petID := range r.PetIDs {
		pet, ok := pets[petID]
		if !ok {
			continue
		}

		r.Pets = append(r.Pets, PetResponse{ID: pet.ID, Name: pet.Name, Breed: pet.Breed})
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

// FromModels builds the page; petIDs is keyed by booking id.
func (r *GetBookingsResponse) FromModels(models []model.BookingView, petIDs map[string][]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, petIDs[mod.ID])
	}
}

type ActiveBookingResponse struct {
	BookingID  string `json:"bookingId"`
	ServeDate  string `json:"servedate"`
	Status     string `json:"status"`
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
	PetName    string `json:"petName"`
}

// SlotConflict lists the active bookings that keep a slot from being removed.
type SlotConflict struct {
	Slot           string                  `json:"slot"`
	ActiveBookings []ActiveBookingResponse `json:"activeBookings"`
}

func NewSlotConflict(slot string, bookings []model.ActiveBooking) SlotConflict {
	conflict := SlotConflict{
		Slot:           slot,
		ActiveBookings: make([]ActiveBookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		conflict.ActiveBookings = append(conflict.ActiveBookings, ActiveBookingResponse{
			BookingID:  booking.BookingID,
			ServeDate:  booking.ServeDate.Format(constant.DateOnlyFormat),
			Status:     string(booking.Status),
			OwnerName:  booking.OwnerName,
			OwnerEmail: booking.OwnerEmail,
			PetName:    booking.PetNames,
		})
	}

	return conflict
}
