package domain

import "math"

// Pricing параметры расчёта стоимости и инвентаря.
// Разрешается один раз при старте процесса и передаётся по значению.
type Pricing struct {
	TotalDomesFallback int     // Количество домов, если живой подсчёт недоступен или равен 0
	BaseRate           float64 // Базовая цена за ночь
	Currency           string  // Код валюты ISO 4217
}

// DefaultPricing возвращает параметры по умолчанию
func DefaultPricing() Pricing {
	return Pricing{
		TotalDomesFallback: DefaultTotalDomes,
		BaseRate:           DefaultBaseRate,
		Currency:           DefaultCurrency,
	}
}

// Estimate результат расчёта стоимости
type Estimate struct {
	NightlyRate   int64
	TotalEstimate int64
}

// CalculateEstimate считает цену за ночь и итог.
// При guests >= 3 применяется наценка 18%, цена за ночь округляется до целого (half-up).
func CalculateEstimate(guests, nights int, baseRate float64) Estimate {
	surcharge := 1.0
	if guests >= SurchargeGuestsThreshold {
		surcharge = SurchargeMultiplier
	}

	nightlyRate := int64(math.Floor(baseRate*surcharge + 0.5))

	return Estimate{
		NightlyRate:   nightlyRate,
		TotalEstimate: nightlyRate * int64(nights),
	}
}
