package memo

import (
	"context"
	"fmt"
	"gacha_calculator/internal/metrics"
	"gacha_calculator/internal/model"
	"gacha_calculator/internal/repository"
	"gacha_calculator/internal/service"
	"log/slog"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.MemoRepository
	txManager trm.Manager
	metrics   *metrics.Metrics
	log       *slog.Logger
}

func NewMemoService(
	repo repository.MemoRepository,
	txManager trm.Manager,
	m *metrics.Metrics,
	log *slog.Logger,
) service.MemoService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		metrics:   m,
		log:       log.With("service", "memo"),
	}
}

func (s *serv) Get(ctx context.Context) (*model.Memo, error) {
	content, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &model.Memo{Content: content}, nil
}

// Save сохраняет заметку. Пустой текст - допустимое значение
func (s *serv) Save(ctx context.Context, content string) error {
	// Обновление и вставка в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.Upsert(txCtx, content)
	})
	if err != nil {
		s.metrics.MemoSavesTotal.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("save memo: %w", err)
	}

	s.metrics.MemoSavesTotal.WithLabelValues(metrics.ResultOK).Inc()
	s.log.DebugContext(ctx, "memo saved", "length", len(content))
	return nil
}
