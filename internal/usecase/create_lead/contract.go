package create_lead

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// LeadRepository интерфейс репозитория пре-бронирований
type LeadRepository interface {
	// Create сохраняет заявку и возвращает её с назначенными ID и CreatedAt
	Create(ctx context.Context, lead *domain.BookingLead) (*domain.BookingLead, error)
}

// MetricsRecorder интерфейс для записи бизнес-метрик
type MetricsRecorder interface {
	IncLeadsCreated()
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
