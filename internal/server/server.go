// Package server boots the storefront HTTP stack: config, database,
// cache, the service graph and the router, then serves until a
// shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/jobs"
	"github.com/shashiranjanraj/storefront/app/listeners"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/queue"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/response"
	"github.com/shashiranjanraj/storefront/pkg/router"
	"github.com/shashiranjanraj/storefront/pkg/schedule"
	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

const shutdownTimeout = 10 * time.Second

// Start boots the whole application and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	logger.Setup()

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, product cache disabled", "error", err)
	}

	handler, err := BuildHandler(database.DB)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background machinery: receipt jobs, event listeners and the
	// availability reconciler all live outside the request path.
	jobs.RegisterAll()
	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, 4)

	pool := workerpool.New(8)
	defer pool.Shutdown()
	listeners.Register(pool)

	products := repositories.NewProductRepository(database.DB)
	schedule.Every(10).Minutes().Name("availability:reconcile").WithoutOverlapping().Run(func() {
		n, err := products.ReconcileAvailability()
		if err != nil {
			logger.Error("availability reconcile failed", "error", err)
			return
		}
		if n > 0 {
			logger.Warn("availability drift corrected", "rows", n)
		}
	})
	schedule.Start(ctx)

	if !config.HasAppPort() {
		logger.Warn("APP_PORT not set, using default", "port", config.AppPort())
	}

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", srv.Addr, "env", config.AppEnv())
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// BuildHandler assembles the middleware stack, service graph and route
// table on top of the given database handle. Split out from Start so
// tests can run the full stack against an in-memory database.
func BuildHandler(db *gorm.DB) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(config.TokenSecret())
	if err != nil {
		return nil, err
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	deps := routes.Deps{
		Auth:     services.NewAuthService(userRepo, tokens),
		Products: services.NewProductService(productRepo),
		Orders:   services.NewOrderService(orderRepo, productRepo, config.OrderStrictStatus()),
		Tokens:   tokens,
	}

	r := router.New()

	// Global middleware, outermost first: metrics wraps everything so
	// latency includes the whole stack, recovery before anything that
	// can panic, request id before the logger that reads it.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	routes.RegisterAPI(r, deps)

	return r.Handler(), nil
}
