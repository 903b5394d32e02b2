package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind names an expected domain condition so clients can branch on it without parsing messages.
type Kind string

const (
	KindServiceNotBookable  Kind = "ServiceNotBookable"
	KindUnknownTimeslot     Kind = "UnknownTimeslot"
	KindPetNotOwned         Kind = "PetNotOwned"
	KindSlotAlreadyBooked   Kind = "SlotAlreadyBooked"
	KindNotOwner            Kind = "NotOwner"
	KindTimeslotConflict    Kind = "TimeslotConflict"
	KindInvalidBookingState Kind = "InvalidBookingState"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
	Details any    `json:"details,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// ServiceNotBookable is returned when a service is missing or not approved.
func ServiceNotBookable(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
		Kind:    KindServiceNotBookable,
	}
}

// UnknownTimeslot is returned when a slot is not part of the service catalog.
func UnknownTimeslot(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindUnknownTimeslot,
	}
}

// PetNotOwned names the first pet that does not belong to the caller.
func PetNotOwned(petID string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("Pet with ID %s not found or doesn't belong to you", petID),
		Kind:    KindPetNotOwned,
		Details: map[string]string{"petId": petID},
	}
}

func SlotAlreadyBooked(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindSlotAlreadyBooked,
	}
}

func NotOwner(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Kind:    KindNotOwner,
	}
}

// TimeslotConflict carries the conflict report in Details.
func TimeslotConflict(msg string, report any) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
		Kind:    KindTimeslotConflict,
		Details: report,
	}
}

func InvalidBookingState(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindInvalidBookingState,
	}
}

// GetKind returns the kind of an error interface, empty for unexpected errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return kind != "" && GetKind(err) == kind
}

// GetDetails returns the structured details of a Failure, if any.
func GetDetails(err error) any {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
