package history_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gacha_calculator/internal/client/db"
	"gacha_calculator/internal/model"
	"gacha_calculator/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
)

const (
	table                    = "history"
	colID                    = "id"
	colInputProbability      = "input_probability"
	colTimes                 = "times"
	colCalculatedProbability = "calculated_probability"
)

type repo struct {
	dbc    *db.Client
	getter *trmsql.CtxGetter
}

func NewHistoryRepository(dbc *db.Client) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmsql.DefaultCtxGetter,
	}
}

// List - все записи истории, новые первыми.
// Возвращает пустой слайс, если записей нет
func (r *repo) List(ctx context.Context) ([]model.HistoryEntry, error) {
	// Формируем запрос
	query := sq.Select(colID, colInputProbability, colTimes, colCalculatedProbability).
		From(table).
		OrderBy(colID + " DESC").
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc.DB()).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]model.HistoryEntry, 0)
	for rows.Next() {
		var e model.HistoryEntry
		if err := rows.Scan(&e.ID, &e.InputProbability, &e.Times, &e.CalculatedProbability); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

// Create - добавляет запись в историю.
// Возвращает ID, присвоенный базой
func (r *repo) Create(ctx context.Context, entry *model.HistoryEntry) (int64, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colInputProbability, colTimes, colCalculatedProbability).
		Values(entry.InputProbability, entry.Times, entry.CalculatedProbability).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc.DB()).QueryRowContext(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert history: %w", err)
	}

	return id, nil
}

// Exists - есть ли запись с указанным ID
func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	// Формируем запрос
	query := sq.Select(colID).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var found int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc.DB()).QueryRowContext(ctx, sqlStr, args...).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("select history entry: %w", err)
	}

	return true, nil
}

// Delete - удаляет запись по ID. Отсутствие записи не ошибка
func (r *repo) Delete(ctx context.Context, id int64) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc.DB()).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}

	return nil
}
