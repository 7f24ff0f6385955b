package history_repo

import (
	"context"
	"errors"
	"gacha_calculator/internal/client/db"
	"gacha_calculator/internal/model"
	"path/filepath"
	"testing"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *db.Client {
	t.Helper()
	ctx := context.Background()

	dbc, err := db.Open(ctx, db.DriverSQLite, filepath.Join(t.TempDir(), "gacha.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbc.Close() })
	require.NoError(t, dbc.Migrate(ctx))

	return dbc
}

func TestListEmpty(t *testing.T) {
	r := NewHistoryRepository(newTestClient(t))

	entries, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestCreateListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewHistoryRepository(newTestClient(t))

	inputs := []model.HistoryEntry{
		{InputProbability: 1, Times: 100, CalculatedProbability: 63.39676587},
		{InputProbability: 3, Times: 10, CalculatedProbability: 26.25759553},
		{InputProbability: 0.5, Times: 1, CalculatedProbability: 0.5},
	}

	var ids []int64
	for i := range inputs {
		id, err := r.Create(ctx, &inputs[i])
		require.NoError(t, err)
		if len(ids) > 0 {
			assert.Greater(t, id, ids[len(ids)-1])
		}
		ids = append(ids, id)

		// Только что добавленная запись всегда первая
		entries, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, i+1)
		assert.Equal(t, id, entries[0].ID)
		assert.Equal(t, inputs[i].InputProbability, entries[0].InputProbability)
		assert.Equal(t, inputs[i].Times, entries[0].Times)
		assert.Equal(t, inputs[i].CalculatedProbability, entries[0].CalculatedProbability)
	}

	entries, err := r.List(ctx)
	require.NoError(t, err)
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i-1].ID, entries[i].ID)
	}
}

func TestExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewHistoryRepository(newTestClient(t))

	id, err := r.Create(ctx, &model.HistoryEntry{InputProbability: 10, Times: 5, CalculatedProbability: 40.951})
	require.NoError(t, err)

	ok, err := r.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Exists(ctx, id+1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Delete(ctx, id))

	ok, err = r.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	// Повторное удаление ничего не делает
	require.NoError(t, r.Delete(ctx, id))
}

func TestDeleteMissingKeepsList(t *testing.T) {
	ctx := context.Background()
	r := NewHistoryRepository(newTestClient(t))

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, &model.HistoryEntry{InputProbability: 1, Times: i + 1})
		require.NoError(t, err)
	}

	before, err := r.List(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, 9999))

	after, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	r := NewHistoryRepository(newTestClient(t))

	first, err := r.Create(ctx, &model.HistoryEntry{InputProbability: 1, Times: 1})
	require.NoError(t, err)
	require.NoError(t, r.Delete(ctx, first))

	second, err := r.Create(ctx, &model.HistoryEntry{InputProbability: 1, Times: 1})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestCreateRollsBackWithTransaction(t *testing.T) {
	ctx := context.Background()
	dbc := newTestClient(t)
	r := NewHistoryRepository(dbc)

	txManager, err := manager.New(trmsql.NewDefaultFactory(dbc.DB()))
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.Create(ctx, &model.HistoryEntry{InputProbability: 1, Times: 1}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	entries, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
