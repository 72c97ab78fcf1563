package check_availability

import "errors"

var (
	// ErrReservationsQuery возвращается, когда не удалось получить пересекающиеся бронирования
	ErrReservationsQuery = errors.New("check_availability: reservations query failed")

	// ErrDomesQuery возвращается, когда не удалось посчитать активные домы
	ErrDomesQuery = errors.New("check_availability: domes query failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
