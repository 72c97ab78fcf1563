package check_availability

import "github.com/m04kA/SMC-DomesBooking/internal/domain"

// Сообщения для пользователя
const (
	MsgAvailable   = "Tenemos disponibilidad para las fechas seleccionadas."
	MsgUnavailable = "Por ahora no hay domos disponibles en ese rango de fechas."
)

// Request модель запроса на проверку доступности
type Request struct {
	CheckInRaw  string  // Дата заезда, YYYY-MM-DD
	CheckOutRaw string  // Дата выезда, YYYY-MM-DD
	Guests      float64 // Количество гостей (проверяется, что целое)
}

// Response модель ответа с результатом проверки
type Response struct {
	Result   domain.AvailabilityResult
	Currency string
	Window   domain.DateWindow
	Message  string
}
