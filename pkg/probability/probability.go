package probability

import (
	"errors"
	"math"
)

// MaxProbability верхняя граница результата, выше неё значение не отображается
const MaxProbability = 0.9999999999

// PercentDigits количество знаков после запятой у процентов в истории
const PercentDigits = 8

var (
	ErrProbabilityOutOfRange = errors.New("probability must be within [0, 1]")
	ErrNegativeTimes         = errors.New("times must not be negative")
)

// Calculate вероятность хотя бы одного успеха за times попыток
// с вероятностью p на каждую попытку: 1 - (1 - p)^times.
// Результат больше MaxProbability обрезается до MaxProbability.
func Calculate(p float64, times int) float64 {
	result := 1 - math.Pow(1-p, float64(times))
	if result > MaxProbability {
		return MaxProbability
	}
	return result
}

// Validate проверяет аргументы Calculate
func Validate(p float64, times int) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
		return ErrProbabilityOutOfRange
	}
	if times < 0 {
		return ErrNegativeTimes
	}
	return nil
}

// FromPercent переводит проценты (0-100) в вероятность (0-1)
func FromPercent(percent float64) float64 {
	return percent / 100
}

// ToPercent переводит вероятность в проценты с округлением до PercentDigits знаков
func ToPercent(p float64) float64 {
	return Round(p*100, PercentDigits)
}

// Round округляет v до digits знаков после запятой (половина - от нуля)
func Round(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}
