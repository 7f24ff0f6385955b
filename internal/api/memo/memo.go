package memo

import (
	dto "gacha_calculator/internal/api/dto/memo"
	"gacha_calculator/internal/converter"
	"gacha_calculator/internal/service"
	"gacha_calculator/pkg/req"
	"gacha_calculator/pkg/resp"
	"log/slog"
	"net/http"
)

type HandlerDeps struct {
	Serv service.MemoService
	Log  *slog.Logger
}

type Handler struct {
	serv service.MemoService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	memo, err := h.serv.Get(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "get memo failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMemoResponse(memo))
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serv.Save(r.Context(), payload.Content); err != nil {
		h.log.ErrorContext(r.Context(), "save memo failed", "error", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
