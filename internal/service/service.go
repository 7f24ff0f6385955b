package service

import (
	"context"
	"gacha_calculator/internal/model"
)

type HistoryService interface {
	Calculate(ctx context.Context, calc model.Calculation) (*model.HistoryEntry, error)
	List(ctx context.Context) ([]model.HistoryEntry, error)
	Delete(ctx context.Context, id int64) error
}

type MemoService interface {
	// Get возвращает nil, если заметку ещё не сохраняли
	Get(ctx context.Context) (*model.Memo, error)
	Save(ctx context.Context, content string) error
}
