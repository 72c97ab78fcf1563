package domain

import "errors"

var (
	// ErrBadDateFormat даты не в формате YYYY-MM-DD
	ErrBadDateFormat = errors.New("domain: bad date format")

	// ErrCheckInInPast дата заезда раньше сегодняшнего дня (UTC)
	ErrCheckInInPast = errors.New("domain: check-in is in the past")

	// ErrCheckOutNotAfterCheckIn дата выезда не позже даты заезда
	ErrCheckOutNotAfterCheckIn = errors.New("domain: check-out must be after check-in")

	// ErrGuestsOutOfRange количество гостей вне диапазона
	ErrGuestsOutOfRange = errors.New("domain: guests out of range")

	// ErrFullNameRequired не указано имя гостя
	ErrFullNameRequired = errors.New("domain: full name required")

	// ErrUnknownStatus неизвестный статус в БД
	ErrUnknownStatus = errors.New("domain: unknown status")
)
