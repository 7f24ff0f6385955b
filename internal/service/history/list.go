package history

import (
	"context"
	"fmt"
	"gacha_calculator/internal/model"
)

func (s *serv) List(ctx context.Context) ([]model.HistoryEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
