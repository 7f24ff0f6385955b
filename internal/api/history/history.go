package history

import (
	"errors"
	dto "gacha_calculator/internal/api/dto/history"
	"gacha_calculator/internal/converter"
	"gacha_calculator/internal/model"
	"gacha_calculator/internal/service"
	"gacha_calculator/pkg/req"
	"gacha_calculator/pkg/resp"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.HistoryService
	Log  *slog.Logger
}

type Handler struct {
	serv service.HistoryService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// List история расчётов, новые первыми
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list history failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEntryResponses(entries))
}

// Calculate считает вероятность и сохраняет расчёт, отвечает созданной записью
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CalculateRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.serv.Calculate(r.Context(), converter.ToCalculation(payload))
	if err != nil {
		if errors.Is(err, model.ErrInvalidProbability) || errors.Is(err, model.ErrInvalidTimes) {
			resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "calculate failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToEntryResponse(*entry))
}

// Delete удаляет запись истории по id
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		resp.WriteJSONError(w, http.StatusNotFound, model.ErrHistoryNotFound.Error())
		return
	}

	err = h.serv.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrHistoryNotFound) {
			resp.WriteJSONError(w, http.StatusNotFound, model.ErrHistoryNotFound.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "delete history entry failed", "id", id, "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
