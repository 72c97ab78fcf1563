package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// UseCase use case для проверки доступности домов на даты
type UseCase struct {
	reservationRepo ReservationRepository
	domeRepo        DomeRepository
	pricing         domain.Pricing
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// pricing разрешается один раз при старте и дальше не перечитывается.
func NewUseCase(
	reservationRepo ReservationRepository,
	domeRepo DomeRepository,
	pricing domain.Pricing,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		domeRepo:        domeRepo,
		pricing:         pricing,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case проверки доступности.
// Ошибка валидации возвращается как *domain.ValidationError до обращения к БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: checkIn=%s, checkOut=%s, guests=%v",
		req.CheckInRaw, req.CheckOutRaw, req.Guests)

	// 1. Валидация входных данных
	window, err := domain.ValidateStay(req.CheckInRaw, req.CheckOutRaw, req.Guests, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем доступность
	result, err := uc.computeAvailability(ctx, window, int(req.Guests))
	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveAvailability(result.Available)

	message := MsgAvailable
	if result.IsFull() {
		message = MsgUnavailable
	}

	uc.logger.Info("CheckAvailability: %s..%s available=%d/%d (occupancy %.0f%%), nights=%d, total=%d %s",
		window.CheckInString(), window.CheckOutString(), result.AvailableDomes, result.TotalDomes,
		result.OccupancyRate(), result.Nights, result.TotalEstimate, uc.pricing.Currency)

	return &Response{
		Result:   result,
		Currency: uc.pricing.Currency,
		Window:   window,
		Message:  message,
	}, nil
}

// computeAvailability считает занятость и стоимость для проверенного окна.
// Два чтения выполняются без общей транзакции: бронирование, созданное между ними,
// может дать устаревшую картину. Результат носит справочный характер, домы не резервируются.
func (uc *UseCase) computeAvailability(ctx context.Context, window domain.DateWindow, guests int) (domain.AvailabilityResult, error) {
	// 1. Бронирования, пересекающиеся с окном
	reservations, err := uc.reservationRepo.GetOverlapping(ctx, window, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping reservations: %v", err)
		return domain.AvailabilityResult{}, fmt.Errorf("%w: %w: %v", ErrInternal, ErrReservationsQuery, err)
	}

	occupied := sumOccupiedDomes(window, reservations)

	// 2. Количество активных домов. Fallback только при успешном ответе с нулём.
	activeDomes, err := uc.domeRepo.CountActive(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count active domes: %v", err)
		return domain.AvailabilityResult{}, fmt.Errorf("%w: %w: %v", ErrInternal, ErrDomesQuery, err)
	}

	totalDomes := domain.ResolveTotalDomes(activeDomes, uc.pricing.TotalDomesFallback)
	if activeDomes <= 0 {
		uc.logger.Info("CheckAvailability: no active domes in storage, using fallback=%d", totalDomes)
	}

	// 3. Стоимость
	nights := window.Nights()
	estimate := domain.CalculateEstimate(guests, nights, uc.pricing.BaseRate)

	return domain.NewAvailabilityResult(totalDomes, occupied, nights, estimate), nil
}
