package history

import (
	"gacha_calculator/internal/metrics"
	"gacha_calculator/internal/repository"
	"gacha_calculator/internal/service"
	"log/slog"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.HistoryRepository
	txManager trm.Manager
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewHistoryService сервис расчёта вероятности и истории расчётов
func NewHistoryService(
	repo repository.HistoryRepository,
	txManager trm.Manager,
	m *metrics.Metrics,
	log *slog.Logger,
) service.HistoryService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		metrics:   m,
		log:       log.With("service", "history"),
	}
}
