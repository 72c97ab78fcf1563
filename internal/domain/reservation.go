package domain

import (
	"fmt"
	"time"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus конвертирует строку из БД в ReservationStatus.
// Неизвестные значения возвращают ошибку, а не пропускаются молча.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch status := ReservationStatus(s); status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Occupies возвращает true, если бронирование в этом статусе занимает домы
func (s ReservationStatus) Occupies() bool {
	for _, occupying := range OccupyingStatuses {
		if s == occupying {
			return true
		}
	}
	return false
}

// OccupyingReservation бронирование, пересекающееся с запрошенным окном
type OccupyingReservation struct {
	CheckIn     time.Time
	CheckOut    time.Time
	DomesBooked int // NULL в БД читается как 0
	Status      ReservationStatus
}

// Window возвращает интервал проживания бронирования
func (r *OccupyingReservation) Window() DateWindow {
	return DateWindow{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}
