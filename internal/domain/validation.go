package domain

import (
	"math"
	"net/http"
	"time"
)

// Сообщения для пользователя. Сайт испаноязычный.
const (
	MsgBadDateFormat           = "Las fechas deben tener formato YYYY-MM-DD."
	MsgCheckInInPast           = "La fecha de check-in no puede ser anterior a hoy."
	MsgCheckOutNotAfterCheckIn = "El check-out debe ser posterior al check-in."
	MsgGuestsOutOfRange        = "La cantidad de huespedes debe estar entre 1 y 8."
	MsgFullNameRequired        = "El nombre es obligatorio."
)

// ValidationError ошибка валидации входных данных.
// Всегда содержит одно сообщение для пользователя и HTTP статус.
type ValidationError struct {
	Err     error
	Message string
	Status  int
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, message string) *ValidationError {
	return &ValidationError{Err: err, Message: message, Status: http.StatusBadRequest}
}

// ValidateStay проверяет даты и количество гостей.
// Правила применяются строго по порядку, возвращается первая ошибка:
//  1. формат дат YYYY-MM-DD
//  2. заезд не раньше сегодняшней полуночи UTC
//  3. выезд строго позже заезда
//  4. гостей от 1 до 8, конечное целое число
func ValidateStay(checkInRaw, checkOutRaw string, guests float64, now time.Time) (DateWindow, error) {
	if !IsISODate(checkInRaw) || !IsISODate(checkOutRaw) {
		return DateWindow{}, newValidationError(ErrBadDateFormat, MsgBadDateFormat)
	}

	checkIn, err := ParseDate(checkInRaw)
	if err != nil {
		return DateWindow{}, newValidationError(ErrBadDateFormat, MsgBadDateFormat)
	}
	checkOut, err := ParseDate(checkOutRaw)
	if err != nil {
		return DateWindow{}, newValidationError(ErrBadDateFormat, MsgBadDateFormat)
	}

	if checkIn.Before(TruncateToUTCDate(now)) {
		return DateWindow{}, newValidationError(ErrCheckInInPast, MsgCheckInInPast)
	}

	window := DateWindow{CheckIn: checkIn, CheckOut: checkOut}
	if window.Nights() < 1 {
		return DateWindow{}, newValidationError(ErrCheckOutNotAfterCheckIn, MsgCheckOutNotAfterCheckIn)
	}

	if !ValidGuests(guests) {
		return DateWindow{}, newValidationError(ErrGuestsOutOfRange, MsgGuestsOutOfRange)
	}

	return window, nil
}

// ValidGuests проверяет, что количество гостей конечное целое число в [MinGuests, MaxGuests]
func ValidGuests(guests float64) bool {
	if math.IsNaN(guests) || math.IsInf(guests, 0) {
		return false
	}
	if guests != math.Trunc(guests) {
		return false
	}
	return guests >= MinGuests && guests <= MaxGuests
}

// FullNameRequiredError ошибка отсутствующего имени для пре-бронирования
func FullNameRequiredError() *ValidationError {
	return newValidationError(ErrFullNameRequired, MsgFullNameRequired)
}
