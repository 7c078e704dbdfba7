package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/controller"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/middlewareinternal"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/repository"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/service"
)

type App struct {
	cfg    *Config
	Router *chi.Mux
	store  repository.Store
	Logger *zap.Logger
	Server *http.Server
}

func New(cfg *Config, store repository.Store, logger *zap.Logger) *App {
	app := &App{
		cfg:    cfg,
		Router: chi.NewRouter(),
		store:  store,
		Logger: logger,
	}

	app.initRouter()
	return app
}

// OpenStore connects to the store named by the configured connection string.
func OpenStore(cfg *Config, logger *zap.Logger) (repository.Store, error) {
	store, err := repository.Open(repository.StoreConfig{
		URI:            cfg.DatabaseURI,
		MigrationsPath: cfg.MigrationsPath,
		Timeout:        cfg.StoreTimeout,
	})
	if err != nil {
		logger.Error("Store initialization failed",
			zap.String("uri", cfg.MaskDBPassword()),
			zap.Error(err))
		return nil, err
	}

	logger.Info("Store initialized successfully",
		zap.String("uri", cfg.MaskDBPassword()))
	return store, nil
}

func (a *App) Run(ctx context.Context) error {
	a.Server = &http.Server{
		Addr:    a.cfg.RunAddress,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting HTTP server", zap.String("address", a.cfg.RunAddress))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server...")
	return a.shutdown()
}

func (a *App) initRouter() {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(middlewareinternal.RequestLogger(a.Logger))
	a.Router.Use(controller.Recoverer(a.Logger))
	a.Router.Use(middleware.Compress(5))

	a.Router.NotFound(controller.NotFound)
	a.Router.MethodNotAllowed(controller.MethodNotAllowed)

	// Services
	users := a.store.Users()
	costs := a.store.Costs()

	costService := service.NewCostService(users, costs, a.cfg.Location, a.Logger)
	userService := service.NewUserService(users, costs, a.Logger)
	aboutService := service.NewAboutService(service.DefaultTeam)

	// Controllers
	costController := controller.NewCostController(costService, a.Logger)
	userController := controller.NewUserController(userService, a.Logger)
	aboutController := controller.NewAboutController(aboutService)
	healthController := controller.NewHealthController(a.store, a.Logger)

	a.Router.Get("/healthz", healthController.Health)

	a.Router.Route("/api", func(r chi.Router) {
		r.Post("/add", costController.AddCost)
		r.Get("/report", costController.GetMonthlyReport)
		r.Get("/users/{userId}", userController.GetUserDetails)
		r.Get("/about", aboutController.GetAboutInfo)
	})
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.Server.Shutdown(ctx)
}
