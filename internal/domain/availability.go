package domain

// AvailabilityResult результат проверки доступности. Не хранится, считается на каждый запрос.
type AvailabilityResult struct {
	Available      bool
	AvailableDomes int
	TotalDomes     int
	NightlyRate    int64
	Nights         int
	TotalEstimate  int64
}

// IsFull возвращает true, если свободных домов нет
func (r *AvailabilityResult) IsFull() bool {
	return r.AvailableDomes <= 0
}

// OccupancyRate возвращает загрузку в процентах (0-100)
func (r *AvailabilityResult) OccupancyRate() float64 {
	if r.TotalDomes == 0 {
		return 0
	}
	occupied := r.TotalDomes - r.AvailableDomes
	return float64(occupied) / float64(r.TotalDomes) * 100
}

// ResolveTotalDomes возвращает живое количество активных домов, если оно больше 0,
// иначе значение из конфигурации
func ResolveTotalDomes(activeCount, fallback int) int {
	if activeCount > 0 {
		return activeCount
	}
	return fallback
}

// NewAvailabilityResult собирает результат из занятости и расчёта стоимости
func NewAvailabilityResult(totalDomes, occupiedDomes, nights int, estimate Estimate) AvailabilityResult {
	available := totalDomes - occupiedDomes
	if available < 0 {
		available = 0
	}

	return AvailabilityResult{
		Available:      available > 0,
		AvailableDomes: available,
		TotalDomes:     totalDomes,
		NightlyRate:    estimate.NightlyRate,
		Nights:         nights,
		TotalEstimate:  estimate.TotalEstimate,
	}
}
