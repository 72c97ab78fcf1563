package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetOverlapping получает бронирования в указанных статусах, пересекающиеся с окном [checkIn, checkOut)
	GetOverlapping(ctx context.Context, window domain.DateWindow, statuses []domain.ReservationStatus) ([]domain.OccupyingReservation, error)
}

// DomeRepository интерфейс репозитория домов
type DomeRepository interface {
	// CountActive возвращает количество активных домов
	CountActive(ctx context.Context) (int, error)
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	ObserveAvailability(available bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
