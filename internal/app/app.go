package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tigerbridge/tigerbridge/internal/config"
	"github.com/tigerbridge/tigerbridge/internal/handlers"
	"github.com/tigerbridge/tigerbridge/internal/middleware"
	"github.com/tigerbridge/tigerbridge/internal/pg"
	"github.com/tigerbridge/tigerbridge/internal/repo"
	"github.com/tigerbridge/tigerbridge/internal/service"
	"github.com/tigerbridge/tigerbridge/internal/tb"
	pkgauth "github.com/tigerbridge/tigerbridge/pkg/auth"
	"github.com/tigerbridge/tigerbridge/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	engine tb.Engine

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	engine, err := tb.NewClient(cfg.TBClusterID, cfg.ReplicaAddresses())
	if err != nil {
		zap.L().Error("engine client failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to ledger engine: %w", err)
	}

	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	conn := pg.New(pool)
	a.cfg = cfg
	a.engine = engine
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, engine, jwtService, time.Duration(cfg.TokenTTLMin)*time.Minute)

	if err := a.srv.AuthService.EnsureSuperuser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zap.L().Error("superuser bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't ensure superuser: %w", err)
	}

	authMW := middleware.NewAuth(jwtService, a.srv.AuthService)
	a.api = handlers.New(a.srv, authMW, cfg.RateLimitRPM)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.engine.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); isServeFailure(err) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// isServeFailure reports whether a ListenAndServe return value is a real
// failure. ErrServerClosed is the normal outcome of Shutdown and must not
// abort the process.
func isServeFailure(err error) bool {
	return err != nil && !errors.Is(err, http.ErrServerClosed)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
