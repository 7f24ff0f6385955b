package memo

import (
	"context"
	"encoding/json"
	"errors"
	dto "gacha_calculator/internal/api/dto/memo"
	"gacha_calculator/internal/model"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMemoService struct {
	mock.Mock
}

func (m *mockMemoService) Get(ctx context.Context) (*model.Memo, error) {
	args := m.Called(ctx)
	memo, _ := args.Get(0).(*model.Memo)
	return memo, args.Error(1)
}

func (m *mockMemoService) Save(ctx context.Context, content string) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func newTestHandler(serv *mockMemoService) *Handler {
	return NewHandler(HandlerDeps{
		Serv: serv,
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestGet(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Get", mock.Anything).Return(&model.Memo{Content: "pity at 90"}, nil)

	rec := httptest.NewRecorder()
	newTestHandler(serv).Get(rec, httptest.NewRequest(http.MethodGet, "/api/memo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.MemoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, dto.MemoResponse{Content: "pity at 90", Exists: true}, got)
}

func TestGetAbsent(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Get", mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	newTestHandler(serv).Get(rec, httptest.NewRequest(http.MethodGet, "/api/memo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content": "", "exists": false}`, rec.Body.String())
}

func TestGetError(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Get", mock.Anything).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	newTestHandler(serv).Get(rec, httptest.NewRequest(http.MethodGet, "/api/memo", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSave(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Save", mock.Anything, "save for the banner").Return(nil)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"content": "save for the banner"}`)
	newTestHandler(serv).Save(rec, httptest.NewRequest(http.MethodPut, "/api/memo", body))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	serv.AssertExpectations(t)
}

func TestSaveEmptyContent(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Save", mock.Anything, "").Return(nil)

	rec := httptest.NewRecorder()
	newTestHandler(serv).Save(rec, httptest.NewRequest(http.MethodPut, "/api/memo", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	serv.AssertExpectations(t)
}

func TestSaveBadBody(t *testing.T) {
	serv := &mockMemoService{}

	rec := httptest.NewRecorder()
	newTestHandler(serv).Save(rec, httptest.NewRequest(http.MethodPut, "/api/memo", strings.NewReader(`{"text": "x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	serv.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSaveError(t *testing.T) {
	serv := &mockMemoService{}
	serv.On("Save", mock.Anything, "x").Return(errors.New("boom"))

	rec := httptest.NewRecorder()
	newTestHandler(serv).Save(rec, httptest.NewRequest(http.MethodPut, "/api/memo", strings.NewReader(`{"content": "x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
