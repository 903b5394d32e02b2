package dto

import (
	bookingDto "petcare/internal/domains/booking/model/dto"
)

type UpdateTimeslotsRequest struct {
	Timeslots []string `json:"timeslots" validate:"required,max=100,dive,slot"`
}

type TimeslotsResponse struct {
	ServiceID string   `json:"serviceid"`
	Timeslots []string `json:"timeslots"`
}

// ConflictReport explains why a slot set could not be applied.
type ConflictReport struct {
	Conflicts   []bookingDto.SlotConflict `json:"conflicts"`
	Suggestions []string                  `json:"suggestions"`
}

func NewConflictReport(conflicts []bookingDto.SlotConflict) ConflictReport {
	if conflicts == nil {
		conflicts = []bookingDto.SlotConflict{}
	}

	return ConflictReport{
		Conflicts:   conflicts,
		Suggestions: Suggestions(),
	}
}

func Suggestions() []string {
	return []string{
		"Keep the existing timeslots that have bookings",
		"Contact the customers to reschedule their bookings",
		"Wait until the bookings are completed or cancelled",
		"Add new timeslots without removing the booked ones",
	}
}

// CheckTimeslotsResponse previews a slot update without applying it.
type CheckTimeslotsResponse struct {
	ServiceID   string                    `json:"serviceid"`
	Safe        bool                      `json:"safe"`
	ToRemove    []string                  `json:"toRemove"`
	ToAdd       []string                  `json:"toAdd"`
	Conflicts   []bookingDto.SlotConflict `json:"conflicts"`
	Suggestions []string                  `json:"suggestions,omitempty"`
}

// SlotChange is the outcome of a committed slot replacement.
type SlotChange struct {
	ServiceID string   `json:"serviceid"`
	Removed   []string `json:"removed"`
	Added     []string `json:"added"`
	Timeslots []string `json:"timeslots"`
}

// Changed reports whether the stored set differs from before.
func (c SlotChange) Changed() bool {
	return len(c.Removed) > 0 || len(c.Added) > 0
}
