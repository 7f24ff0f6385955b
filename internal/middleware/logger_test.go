package middleware

import (
	"bytes"
	"gacha_calculator/internal/metrics"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	m := metrics.NewNop()

	r := chi.NewRouter()
	r.Use(RequestLogger(log, m))
	r.Get("/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/delete/5", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, buf.String(), "path=/delete/5")
	assert.Contains(t, buf.String(), "status=303")
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}
