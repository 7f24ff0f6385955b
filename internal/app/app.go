package app

import (
	"context"
	"errors"
	"gacha_calculator/internal/config"
	"io/fs"
	"log"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type App struct {
	ServiceProvider *ServiceProvider
	envPath         string
}

// NewApp envPath - путь к .env, отсутствие файла не ошибка
func NewApp(envPath string) *App {
	return &App{envPath: envPath}
}

func (s *App) initConfig() {
	err := config.Load(s.envPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading %s file: %v", s.envPath, err)
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Migrate применяет миграции и выходит
func (s *App) Migrate(ctx context.Context) error {
	s.initConfig()
	s.initServiceProvider()
	defer func() { _ = s.ServiceProvider.Close() }()

	if err := s.ServiceProvider.DBClient(ctx).Migrate(ctx); err != nil {
		return err
	}
	s.ServiceProvider.Logger().InfoContext(ctx, "migrations applied",
		"driver", s.ServiceProvider.DBConfig().Driver())
	return nil
}

// Run поднимает HTTP сервер и работает до отмены ctx
func (s *App) Run(ctx context.Context) error {
	s.initConfig()
	s.initServiceProvider()
	defer func() { _ = s.ServiceProvider.Close() }()

	logger := s.ServiceProvider.Logger()

	if err := s.ServiceProvider.DBClient(ctx).Migrate(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting server", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
