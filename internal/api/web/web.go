package web

import (
	"errors"
	"fmt"
	"gacha_calculator/internal/config"
	"gacha_calculator/internal/config/env"
	"gacha_calculator/internal/model"
	"gacha_calculator/internal/service"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

const (
	formProbability = "probability"
	formTimes       = "times"
	formMemoContent = "memo_content"

	indexPath = "/"
)

type HandlerDeps struct {
	HistoryServ service.HistoryService
	MemoServ    service.MemoService
	Sessions    sessions.Store
	UI          config.UIConfig
	Log         *slog.Logger
}

// Handler HTML страница калькулятора.
// Все изменяющие действия заканчиваются редиректом на GET /,
// поэтому обновление страницы повторяет только чтение
type Handler struct {
	historyServ service.HistoryService
	memoServ    service.MemoService
	sessions    sessions.Store
	ui          config.UIConfig
	log         *slog.Logger
	tmpl        *template.Template
}

func NewHandler(deps HandlerDeps) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		historyServ: deps.HistoryServ,
		memoServ:    deps.MemoServ,
		sessions:    deps.Sessions,
		ui:          deps.UI,
		log:         deps.Log,
		tmpl:        tmpl,
	}, nil
}

// Index GET / - история, заметка и одноразовые уведомления
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	histories, err := h.historyServ.List(r.Context())
	if err != nil {
		h.fail(w, r, "list history", err)
		return
	}

	memo, err := h.memoServ.Get(r.Context())
	if err != nil {
		h.fail(w, r, "get memo", err)
		return
	}

	sess := h.session(r)
	f, changed := popFlashes(sess)
	if changed {
		// Сохраняем сессию без показанных уведомлений
		if err := sess.Save(r, w); err != nil {
			h.log.WarnContext(r.Context(), "save session failed", "error", err)
		}
	}

	data := pageData{
		Title:     h.ui.Title(),
		Notices:   f.Notices,
		Histories: histories,
		Memo:      memo,
	}
	if f.Result != nil {
		data.HasResult = true
		data.Result = *f.Result
	}

	h.render(w, r, "index.html", data)
}

// Calculate POST / - расчёт и сохранение в историю
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)

	calc, err := parseCalculation(r)
	if err == nil {
		var entry *model.HistoryEntry
		entry, err = h.historyServ.Calculate(r.Context(), calc)
		if err == nil {
			h.addNotice(sess, model.NoticeSuccess, h.ui.Notice(env.NoticeCalculationSaved))
			h.addResult(sess, entry.CalculatedProbability)
		}
	}

	if err != nil {
		if !errors.Is(err, model.ErrInvalidProbability) && !errors.Is(err, model.ErrInvalidTimes) {
			h.fail(w, r, "calculate", err)
			return
		}
		h.addNotice(sess, model.NoticeDanger, h.ui.Notice(env.NoticeInvalidInput)+": "+err.Error())
	}

	h.redirectToIndex(w, r, sess)
}

// Delete GET /delete/{id} - удаление записи истории
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// Число не влезло в int64, такой записи точно нет
		err = model.ErrHistoryNotFound
	} else {
		err = h.historyServ.Delete(r.Context(), id)
	}

	switch {
	case err == nil:
		h.addNotice(sess, model.NoticeSuccess, h.ui.Notice(env.NoticeHistoryDeleted))
	case errors.Is(err, model.ErrHistoryNotFound):
		h.addNotice(sess, model.NoticeDanger, h.ui.Notice(env.NoticeHistoryNotFound))
	default:
		h.fail(w, r, "delete history entry", err)
		return
	}

	h.redirectToIndex(w, r, sess)
}

// SaveMemo POST /add_memo - сохранение заметки, пустой текст допустим
func (h *Handler) SaveMemo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if err := h.memoServ.Save(r.Context(), r.PostFormValue(formMemoContent)); err != nil {
		h.fail(w, r, "save memo", err)
		return
	}

	sess := h.session(r)
	h.addNotice(sess, model.NoticeSuccess, h.ui.Notice(env.NoticeMemoSaved))
	h.redirectToIndex(w, r, sess)
}

func parseCalculation(r *http.Request) (model.Calculation, error) {
	if err := r.ParseForm(); err != nil {
		return model.Calculation{}, fmt.Errorf("%w: %v", model.ErrInvalidProbability, err)
	}

	rawProbability := strings.TrimSpace(r.PostFormValue(formProbability))
	p, err := strconv.ParseFloat(rawProbability, 64)
	if err != nil {
		return model.Calculation{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidProbability, rawProbability)
	}

	rawTimes := strings.TrimSpace(r.PostFormValue(formTimes))
	times, err := strconv.Atoi(rawTimes)
	if err != nil {
		return model.Calculation{}, fmt.Errorf("%w: %q is not an integer", model.ErrInvalidTimes, rawTimes)
	}

	return model.Calculation{Probability: p, Times: times}, nil
}

func (h *Handler) redirectToIndex(w http.ResponseWriter, r *http.Request, sess *sessions.Session) {
	if err := sess.Save(r, w); err != nil {
		h.log.WarnContext(r.Context(), "save session failed", "error", err)
	}
	http.Redirect(w, r, indexPath, http.StatusSeeOther)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op+" failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
