package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"petcare/config"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/shared/timezone"
	"reflect"
	"strings"
	"unicode/utf8"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerSlotValidation accepts a trimmed, non-empty slot label that fits the catalog column.
func registerSlotValidation(field val.FieldLevel) bool {
	slot, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return slot != "" && strings.TrimSpace(slot) == slot && utf8.RuneCountInString(slot) <= constant.TimeslotMaxSize
}

// registerServeDateValidation accepts a YYYY-MM-DD calendar date. With the "future" param the date
// must not be before today in the application timezone.
func registerServeDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return false
	}

	if field.Param() != "future" {
		return true
	}

	return date.Format(constant.DateOnlyFormat) >= timezone.Today()
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	err := validate.RegisterValidation("petcare", func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if method.IsValid() {
			result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

			return result[0].Interface() == nil
		}

		return false
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("slot", registerSlotValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("servedate", registerServeDateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
