package validator

import (
	"fmt"
	"io"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/failure"
	"reflect"
	"slices"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate *val.Validate

func validatePhone(field val.FieldLevel) bool {
	return len(shared.DigitsOnly(field.Field().String())) >= constant.MinPhoneDigits
}

func validatePaymentMethod(field val.FieldLevel) bool {
	return slices.Contains(constant.PaymentMethods, field.Field().String())
}

func validateRoomStatus(field val.FieldLevel) bool {
	return slices.Contains(constant.RoomStatuses, field.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]val.Func{
		"phone":         validatePhone,
		"paymentmethod": validatePaymentMethod,
		"roomstatus":    validateRoomStatus,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
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
		field, msg := message(err)

		return failure.FieldError(field, msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		_, msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
