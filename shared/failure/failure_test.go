package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"petcare/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}
		if f.Message != "custom bad request" {
			t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
		}
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusUnauthorized {
			t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
		}
		if f.Message != "token expired" {
			t.Errorf("expected message to be 'token expired', got %s", f.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("User not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "User not found" {
			t.Errorf("expected message to be 'User not found', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    failure.BadRequestFromString("test"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestDomainFailures(t *testing.T) {
	report := []string{"10:00"}

	tests := []struct {
		name    string
		err     error
		code    int
		kind    failure.Kind
		details any
	}{
		{
			name: "service not bookable",
			err:  failure.ServiceNotBookable("Service not found"),
			code: http.StatusNotFound,
			kind: failure.KindServiceNotBookable,
		},
		{
			name: "unknown timeslot",
			err:  failure.UnknownTimeslot("Invalid time slot"),
			code: http.StatusBadRequest,
			kind: failure.KindUnknownTimeslot,
		},
		{
			name:    "pet not owned",
			err:     failure.PetNotOwned("pet-9"),
			code:    http.StatusBadRequest,
			kind:    failure.KindPetNotOwned,
			details: map[string]string{"petId": "pet-9"},
		},
		{
			name: "slot already booked",
			err:  failure.SlotAlreadyBooked("taken"),
			code: http.StatusConflict,
			kind: failure.KindSlotAlreadyBooked,
		},
		{
			name: "not owner",
			err:  failure.NotOwner("not yours"),
			code: http.StatusForbidden,
			kind: failure.KindNotOwner,
		},
		{
			name:    "timeslot conflict",
			err:     failure.TimeslotConflict("conflict", report),
			code:    http.StatusConflict,
			kind:    failure.KindTimeslotConflict,
			details: report,
		},
		{
			name: "invalid booking state",
			err:  failure.InvalidBookingState("Booking is already cancelled"),
			code: http.StatusBadRequest,
			kind: failure.KindInvalidBookingState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)

			assert.Equal(t, tt.code, failure.GetCode(wrapped))
			assert.Equal(t, tt.kind, failure.GetKind(wrapped))
			assert.True(t, failure.IsKind(wrapped, tt.kind))
			assert.Equal(t, tt.details, failure.GetDetails(wrapped))
		})
	}
}

func TestPetNotOwned_NamesPet(t *testing.T) {
	err := failure.PetNotOwned("42")

	assert.Equal(t, "Pet with ID 42 not found or doesn't belong to you", err.Error())
}

func TestGetKind_UnexpectedError(t *testing.T) {
	err := errors.New("connection refused")

	assert.Empty(t, failure.GetKind(err))
	assert.False(t, failure.IsKind(err, failure.KindSlotAlreadyBooked))
	assert.Nil(t, failure.GetDetails(err))
}
