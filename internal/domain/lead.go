package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LeadStatus статус пре-бронирования
type LeadStatus string

const (
	LeadStatusNew LeadStatus = "new"
)

// LeadSource источник пре-бронирования
type LeadSource string

const (
	LeadSourceWebsite LeadSource = "website"
)

// BookingLead заявка на бронирование для ручной обработки персоналом.
// Создаётся один раз, этим сервисом не изменяется.
type BookingLead struct {
	ID       uuid.UUID // Назначается хранилищем
	FullName string
	Window   DateWindow
	Guests   int
	Notes    *string

	// Снимок результата проверки доступности на момент отправки (непрозрачный JSON)
	AvailabilitySnapshot json.RawMessage

	Source    LeadSource
	Status    LeadStatus
	CreatedAt time.Time // Назначается хранилищем
}
