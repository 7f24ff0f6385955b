package app

import (
	"context"
	historyAPI "gacha_calculator/internal/api/history"
	memoAPI "gacha_calculator/internal/api/memo"
	webAPI "gacha_calculator/internal/api/web"
	"gacha_calculator/internal/client/db"
	"gacha_calculator/internal/config"
	"gacha_calculator/internal/config/env"
	"gacha_calculator/internal/logger"
	"gacha_calculator/internal/metrics"
	"gacha_calculator/internal/middleware"
	"gacha_calculator/internal/repository"
	"gacha_calculator/internal/repository/history_repo"
	"gacha_calculator/internal/repository/memo_repo"
	"gacha_calculator/internal/service"
	"gacha_calculator/internal/service/history"
	"gacha_calculator/internal/service/memo"
	"gacha_calculator/pkg/keys"
	"io"
	"log/slog"
	"net/http"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sessionMaxAge время жизни cookie с уведомлениями, секунды
const sessionMaxAge = 24 * 60 * 60

type ServiceProvider struct {
	// Logging
	logCfg    config.LogConfig
	logger    *slog.Logger
	logCloser io.Closer

	// Metrics
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	//TXManager
	txManager trm.Manager

	// Database
	dbConfig config.DBConfig
	dbClient *db.Client

	// History bits
	historyRepo repository.HistoryRepository
	historyServ service.HistoryService
	historyHand *historyAPI.Handler

	// Memo bits
	memoRepo repository.MemoRepository
	memoServ service.MemoService
	memoHand *memoAPI.Handler

	// HTML page bits
	sessionCfg   config.SessionConfig
	sessionStore sessions.Store
	uiCfg        config.UIConfig
	webHand      *webAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogConfig() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger, sp.logCloser = logger.New(sp.LogConfig())
	}
	return sp.logger
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		m, err := metrics.New(sp.Registry())
		if err != nil {
			panic("failed to create metrics: " + err.Error())
		}
		sp.metrics = m
	}
	return sp.metrics
}

func (sp *ServiceProvider) DBConfig() config.DBConfig {
	if sp.dbConfig == nil {
		cfg, err := env.NewDBConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.dbConfig = cfg
	}
	return sp.dbConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *db.Client {
	if sp.dbClient == nil {
		dbc, err := db.Open(ctx, sp.DBConfig().Driver(), sp.DBConfig().DSN())
		if err != nil {
			panic("failed to open database: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmsql.NewDefaultFactory(sp.DBClient(ctx).DB()))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = history.NewHistoryService(sp.HistoryRepository(ctx), sp.TXManager(ctx), sp.Metrics(), sp.Logger())
	}
	return sp.historyServ
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{
			Serv: sp.HistoryService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) MemoRepository(ctx context.Context) repository.MemoRepository {
	if sp.memoRepo == nil {
		sp.memoRepo = memo_repo.NewMemoRepository(sp.DBClient(ctx))
	}
	return sp.memoRepo
}

func (sp *ServiceProvider) MemoService(ctx context.Context) service.MemoService {
	if sp.memoServ == nil {
		sp.memoServ = memo.NewMemoService(sp.MemoRepository(ctx), sp.TXManager(ctx), sp.Metrics(), sp.Logger())
	}
	return sp.memoServ
}

func (sp *ServiceProvider) MemoHandler(ctx context.Context) *memoAPI.Handler {
	if sp.memoHand == nil {
		sp.memoHand = memoAPI.NewHandler(memoAPI.HandlerDeps{
			Serv: sp.MemoService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.memoHand
}

func (sp *ServiceProvider) SessionConfig() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionStore() sessions.Store {
	if sp.sessionStore == nil {
		hashKey, blockKey, err := keys.DeriveSessionKeys(sp.SessionConfig().SecretKey())
		if err != nil {
			panic("failed to derive session keys: " + err.Error())
		}

		store := sessions.NewCookieStore(hashKey, blockKey)
		store.MaxAge(sessionMaxAge)
		store.Options.Path = "/"
		store.Options.HttpOnly = true
		store.Options.Secure = sp.SessionConfig().Secure()
		store.Options.SameSite = http.SameSiteLaxMode

		sp.sessionStore = store
	}
	return sp.sessionStore
}

func (sp *ServiceProvider) UIConfig() config.UIConfig {
	if sp.uiCfg == nil {
		cfg, err := env.NewUIConfigFromYAML(env.UIConfigPath())
		if err != nil {
			panic("failed to get ui config: " + err.Error())
		}
		sp.uiCfg = cfg
	}
	return sp.uiCfg
}

func (sp *ServiceProvider) WebHandler(ctx context.Context) *webAPI.Handler {
	if sp.webHand == nil {
		h, err := webAPI.NewHandler(webAPI.HandlerDeps{
			HistoryServ: sp.HistoryService(ctx),
			MemoServ:    sp.MemoService(ctx),
			Sessions:    sp.SessionStore(),
			UI:          sp.UIConfig(),
			Log:         sp.Logger(),
		})
		if err != nil {
			panic("failed to create web handler: " + err.Error())
		}
		sp.webHand = h
	}
	return sp.webHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.RequestLogger(sp.Logger(), sp.Metrics()))
		r.Use(chimw.Recoverer)

		// HTML page
		webHandler := sp.WebHandler(ctx)
		r.Get("/", webHandler.Index)
		r.Post("/", webHandler.Calculate)
		r.Get("/delete/{id:[0-9]+}", webHandler.Delete)
		r.Post("/add_memo", webHandler.SaveMemo)

		// JSON endpoints
		historyHandler := sp.HistoryHandler(ctx)
		memoHandler := sp.MemoHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			// CORS middleware
			rr.Use(cors.Handler(cors.Options{
				AllowedOrigins:   []string{"*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: false,
				MaxAge:           60 * 15,
			}))

			rr.Get("/history", historyHandler.List)
			rr.Post("/history", historyHandler.Calculate)
			rr.Delete("/history/{id:[0-9]+}", historyHandler.Delete)
			rr.Get("/memo", memoHandler.Get)
			rr.Put("/memo", memoHandler.Save)
		})

		// Service endpoints
		r.Get("/healthz", sp.healthz(ctx))
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		sp.router = r
	}

	return sp.router
}

func (sp *ServiceProvider) healthz(ctx context.Context) http.HandlerFunc {
	dbc := sp.DBClient(ctx)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := dbc.Ping(r.Context()); err != nil {
			sp.Logger().ErrorContext(r.Context(), "health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	}
}

// Close освобождает базу и файл лога
func (sp *ServiceProvider) Close() error {
	var err error
	if sp.dbClient != nil {
		err = sp.dbClient.Close()
		sp.dbClient = nil
	}
	if sp.logCloser != nil {
		if cerr := sp.logCloser.Close(); cerr != nil && err == nil {
			err = cerr
		}
		sp.logCloser = nil
	}
	return err
}
