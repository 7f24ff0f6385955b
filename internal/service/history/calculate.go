package history

import (
	"context"
	"errors"
	"fmt"
	"gacha_calculator/internal/metrics"
	"gacha_calculator/internal/model"
	"gacha_calculator/pkg/probability"
)

// Calculate считает вероятность хотя бы одного выигрыша и сохраняет расчёт в историю
func (s *serv) Calculate(ctx context.Context, calc model.Calculation) (*model.HistoryEntry, error) {
	// Проценты -> вероятность
	p := probability.FromPercent(calc.Probability)

	// Валидация до расчёта
	if err := probability.Validate(p, calc.Times); err != nil {
		s.metrics.CalculationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		switch {
		case errors.Is(err, probability.ErrProbabilityOutOfRange):
			return nil, fmt.Errorf("%w: %v must be between 0 and 100", model.ErrInvalidProbability, calc.Probability)
		case errors.Is(err, probability.ErrNegativeTimes):
			return nil, fmt.Errorf("%w: %d must not be negative", model.ErrInvalidTimes, calc.Times)
		default:
			return nil, err
		}
	}

	entry := &model.HistoryEntry{
		InputProbability:      calc.Probability,
		Times:                 calc.Times,
		CalculatedProbability: probability.ToPercent(probability.Calculate(p, calc.Times)),
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		id, err := s.repo.Create(txCtx, entry)
		if err != nil {
			return err
		}
		entry.ID = id
		return nil
	})
	if err != nil {
		s.metrics.CalculationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, fmt.Errorf("save calculation: %w", err)
	}

	s.metrics.CalculationsTotal.WithLabelValues(metrics.ResultOK).Inc()
	s.metrics.CalculatedProbability.Observe(entry.CalculatedProbability)
	s.log.DebugContext(ctx, "calculation saved",
		"id", entry.ID,
		"input_probability", entry.InputProbability,
		"times", entry.Times,
		"calculated_probability", entry.CalculatedProbability)

	return entry, nil
}
