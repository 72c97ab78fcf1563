package check_availability

import "github.com/m04kA/SMC-DomesBooking/internal/domain"

// sumOccupiedDomes суммирует количество занятых домов по бронированиям, пересекающимся с окном.
// Выборка уже отфильтрована в БД, но пересечение и статус проверяются ещё раз:
// граничные бронирования (выезд в день заезда) не учитываются.
//
// Примеры для окна [13.02, 15.02):
// - бронирование [12.02, 14.02) → ЕСТЬ пересечение (ночь 13.02)
// - бронирование [15.02, 16.02) → НЕТ пересечения (граничат)
func sumOccupiedDomes(window domain.DateWindow, reservations []domain.OccupyingReservation) int {
	occupied := 0

	for i := range reservations {
		reservation := &reservations[i]

		if !reservation.Status.Occupies() {
			continue
		}

		if !reservation.Window().Overlaps(window) {
			continue
		}

		occupied += reservation.DomesBooked
	}

	return occupied
}
