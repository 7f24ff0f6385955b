package web

import (
	"encoding/gob"
	"gacha_calculator/internal/model"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "gacha_session"

	noticeFlashKey = "_notice"
	resultFlashKey = "_result"
)

func init() {
	// Cookie сессии кодируется через gob
	gob.Register(model.Notice{})
}

// flashes одноразовые данные для следующего показа страницы
type flashes struct {
	Notices []model.Notice
	Result  *float64
}

func (h *Handler) session(r *http.Request) *sessions.Session {
	sess, err := h.sessions.Get(r, sessionName)
	if err != nil {
		// Битая или подписанная другим ключом cookie, начинаем новую сессию
		h.log.WarnContext(r.Context(), "discarding invalid session cookie", "error", err)
	}
	return sess
}

func (h *Handler) addNotice(sess *sessions.Session, category model.NoticeCategory, msg string) {
	sess.AddFlash(model.Notice{Category: category, Message: msg}, noticeFlashKey)
}

func (h *Handler) addResult(sess *sessions.Session, result float64) {
	sess.AddFlash(result, resultFlashKey)
}

// popFlashes забирает одноразовые данные из сессии.
// Возвращает true, если сессию нужно сохранить
func popFlashes(sess *sessions.Session) (flashes, bool) {
	var f flashes

	notices := sess.Flashes(noticeFlashKey)
	for _, v := range notices {
		if n, ok := v.(model.Notice); ok {
			f.Notices = append(f.Notices, n)
		}
	}

	results := sess.Flashes(resultFlashKey)
	for _, v := range results {
		if res, ok := v.(float64); ok {
			f.Result = &res
		}
	}

	return f, len(notices) > 0 || len(results) > 0
}
