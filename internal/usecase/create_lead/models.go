package create_lead

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MsgCreated сообщение об успешной регистрации
const MsgCreated = "Pre-reserva registrada correctamente."

// Request модель запроса на пре-бронирование
type Request struct {
	FullName    string
	CheckInRaw  string
	CheckOutRaw string
	Guests      float64
	Notes       string // Пустая строка означает отсутствие заметок

	// Результат проверки доступности, который видел гость (опционально)
	AvailabilitySnapshot json.RawMessage
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
