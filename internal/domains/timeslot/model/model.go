package model

import (
	"slices"
	"strings"
)

const (
	TableName  = "timeslot"
	EntityName = "timeslot"

	FieldServiceID = "serviceid"
	FieldSlot      = "slot"
	FieldActive    = "active"
)

// Timeslot is a recurring slot label offered by one service, not a calendar instant.
// Removed slots stay as inactive rows so past bookings keep referencing them.
type Timeslot struct {
	ServiceID string `db:"serviceid"`
	Slot      string `db:"slot"`
	Active    bool   `db:"active"`
}

// NormalizeSlots trims labels and drops blanks and duplicates, keeping first-seen order.
func NormalizeSlots(slots []string) []string {
	out := make([]string, 0, len(slots))

	for _, slot := range slots {
		slot = strings.TrimSpace(slot)
		if slot == "" || slices.Contains(out, slot) {
			continue
		}

		out = append(out, slot)
	}

	return out
}

// Diff returns the slots to remove (current - desired) and to add (desired - current).
// Both results keep the order of their source set.
func Diff(current, desired []string) (toRemove, toAdd []string) {
	current = NormalizeSlots(current)
	desired = NormalizeSlots(desired)

	toRemove = []string{}
	toAdd = []string{}

	for _, slot := range current {
		if !slices.Contains(desired, slot) {
			toRemove = append(toRemove, slot)
		}
	}

	for _, slot := range desired {
		if !slices.Contains(current, slot) {
			toAdd = append(toAdd, slot)
		}
	}

	return toRemove, toAdd
}

// Sorted returns a sorted copy of the normalized slots.
func Sorted(slots []string) []string {
	out := NormalizeSlots(slots)
	slices.Sort(out)

	return out
}

func ToModels(serviceID string, slots []string) []Timeslot {
	models := make([]Timeslot, 0, len(slots))

	for _, slot := range slots {
		models = append(models, Timeslot{ServiceID: serviceID, Slot: slot, Active: true})
	}

	return models
}
