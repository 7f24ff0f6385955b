package memo_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gacha_calculator/internal/client/db"
	"gacha_calculator/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
)

const (
	table      = "memo"
	colContent = "content"
)

type repo struct {
	dbc    *db.Client
	getter *trmsql.CtxGetter
}

func NewMemoRepository(dbc *db.Client) repository.MemoRepository {
	return &repo{
		dbc:    dbc,
		getter: trmsql.DefaultCtxGetter,
	}
}

// Get - текст заметки.
// found = false, если заметку ещё ни разу не сохраняли
func (r *repo) Get(ctx context.Context) (string, bool, error) {
	// Формируем запрос
	query := sq.Select(colContent).
		From(table).
		Limit(1).
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var content string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc.DB()).QueryRowContext(ctx, sqlStr, args...).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select memo: %w", err)
	}

	return content, true, nil
}

// Upsert - обновляет заметку, если её нет - создаёт.
// Два запроса, поэтому вызывать внутри транзакции
func (r *repo) Upsert(ctx context.Context, content string) error {
	tr := r.getter.DefaultTrOrDB(ctx, r.dbc.DB())

	// Формируем запрос
	query := sq.Update(table).
		Set(colContent, content).
		PlaceholderFormat(r.dbc.Placeholder())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := tr.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update memo: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update memo: %w", err)
	}

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colContent).
			Values(content).
			PlaceholderFormat(r.dbc.Placeholder())

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = tr.ExecContext(ctx, sqlStr, args...)
		if err != nil {
			return fmt.Errorf("insert memo: %w", err)
		}
	}
	return nil
}
