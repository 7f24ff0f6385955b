package repository

import (
	"context"
	"gacha_calculator/internal/model"
)

type HistoryRepository interface {
	List(ctx context.Context) ([]model.HistoryEntry, error)
	Create(ctx context.Context, entry *model.HistoryEntry) (id int64, err error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type MemoRepository interface {
	Get(ctx context.Context) (content string, found bool, err error)
	Upsert(ctx context.Context, content string) error
}
