package history

import (
	"context"
	"fmt"
	"gacha_calculator/internal/metrics"
	"gacha_calculator/internal/model"
)

// Delete удаляет запись истории.
// Проверка и удаление - два отдельных обращения к базе, если запись
// успели удалить между ними, второе удаление ничего не делает
func (s *serv) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		s.metrics.HistoryDeletionsTotal.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("check history entry %d: %w", id, err)
	}
	if !exists {
		s.metrics.HistoryDeletionsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		return fmt.Errorf("%w: id %d", model.ErrHistoryNotFound, id)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		s.metrics.HistoryDeletionsTotal.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("delete history entry %d: %w", id, err)
	}

	s.metrics.HistoryDeletionsTotal.WithLabelValues(metrics.ResultOK).Inc()
	s.log.DebugContext(ctx, "history entry deleted", "id", id)
	return nil
}
