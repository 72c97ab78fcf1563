package domain

// Значения по умолчанию, если конфигурация не задана или некорректна
const (
	DefaultTotalDomes = 6
	DefaultBaseRate   = 420.0
	DefaultCurrency   = "PEN"
)

// Бизнес-ограничения
const (
	MinGuests = 1
	MaxGuests = 8

	// С этого количества гостей применяется наценка
	SurchargeGuestsThreshold = 3
	SurchargeMultiplier      = 1.18
)

// Максимальные длины текстовых полей пре-бронирования (лишнее обрезается, не ошибка)
const (
	MaxFullNameLength = 120
	MaxDateLength     = 10
	MaxNotesLength    = 1000
)

// DateFormat формат дат во входных данных и в БД (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// OccupyingStatuses статусы бронирований, которые занимают домы.
// Используется при выборке пересекающихся бронирований.
var OccupyingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}
