package create_lead

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// UseCase use case для регистрации пре-бронирования
type UseCase struct {
	leadRepo     LeadRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(leadRepo LeadRepository, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		leadRepo:     leadRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case пре-бронирования.
// Доступность здесь не пересчитывается, заявка сохраняется для ручной обработки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Очистка текстовых полей
	in := sanitize(req)

	uc.logger.Info("CreateLead: checkIn=%s, checkOut=%s, guests=%v", in.checkInRaw, in.checkOutRaw, req.Guests)

	// 2. Имя обязательно, проверяется раньше дат
	if in.fullName == "" {
		err := domain.FullNameRequiredError()
		uc.logger.Warn("CreateLead: validation failed: %v", err)
		return nil, err
	}

	// 3. Даты и количество гостей
	window, err := domain.ValidateStay(in.checkInRaw, in.checkOutRaw, req.Guests, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateLead: validation failed: %v", err)
		return nil, err
	}

	lead := &domain.BookingLead{
		FullName:             in.fullName,
		Window:               window,
		Guests:               int(req.Guests),
		Notes:                in.notes,
		AvailabilitySnapshot: in.snapshot,
		Source:               domain.LeadSourceWebsite,
		Status:               domain.LeadStatusNew,
	}

	// 4. Сохранение. Повторов нет, ошибка отдаётся вызывающему.
	created, err := uc.leadRepo.Create(ctx, lead)
	if err != nil {
		uc.logger.Error("CreateLead: failed to create lead: %v", err)
		return nil, fmt.Errorf("%w: failed to create lead: %v", ErrInternal, err)
	}

	uc.metrics.IncLeadsCreated()

	uc.logger.Info("CreateLead: lead id=%s created for %s..%s", created.ID, window.CheckInString(), window.CheckOutString())

	return &Response{
		ID:        created.ID,
		CreatedAt: created.CreatedAt,
	}, nil
}
