package model_test

import (
	"testing"

	"petcare/internal/domains/timeslot/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlots(t *testing.T) {
	got := model.NormalizeSlots([]string{" 10:00", "09:00", "", "10:00", "  ", "11:00 "})

	assert.Equal(t, []string{"10:00", "09:00", "11:00"}, got)
	assert.Equal(t, []string{}, model.NormalizeSlots(nil))
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		desired    []string
		wantRemove []string
		wantAdd    []string
	}{
		{
			name:       "remove one slot",
			current:    []string{"09:00", "10:00", "11:00"},
			desired:    []string{"09:00", "11:00"},
			wantRemove: []string{"10:00"},
			wantAdd:    []string{},
		},
		{
			name:       "add and remove",
			current:    []string{"09:00", "10:00"},
			desired:    []string{"10:00", "12:00"},
			wantRemove: []string{"09:00"},
			wantAdd:    []string{"12:00"},
		},
		{
			name:       "same set is a no-op",
			current:    []string{"09:00", "10:00"},
			desired:    []string{"10:00", "09:00"},
			wantRemove: []string{},
			wantAdd:    []string{},
		},
		{
			name:       "empty desired removes everything",
			current:    []string{"09:00", "10:00"},
			desired:    []string{},
			wantRemove: []string{"09:00", "10:00"},
			wantAdd:    []string{},
		},
		{
			name:       "duplicates in desired are ignored",
			current:    []string{},
			desired:    []string{"09:00", "09:00", " 09:00 "},
			wantRemove: []string{},
			wantAdd:    []string{"09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toRemove, toAdd := model.Diff(tt.current, tt.desired)

			assert.Equal(t, tt.wantRemove, toRemove)
			assert.Equal(t, tt.wantAdd, toAdd)
		})
	}
}

func TestSorted(t *testing.T) {
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, model.Sorted([]string{"11:00", "09:00", "10:00", "09:00"}))
}

func TestToModels(t *testing.T) {
	got := model.ToModels("svc-1", []string{"09:00", "10:00"})

	assert.Equal(t, []model.Timeslot{
		{ServiceID: "svc-1", Slot: "09:00", Active: true},
		{ServiceID: "svc-1", Slot: "10:00", Active: true},
	}, got)
}
