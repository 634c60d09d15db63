package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"foodhub-be/internal/catalog"
	"foodhub-be/internal/config"
	"foodhub-be/internal/es"
	"foodhub-be/internal/handlers"
	"foodhub-be/internal/handlers/cart"
	"foodhub-be/internal/logging"
	authguard "foodhub-be/internal/middleware/auth"
	"foodhub-be/internal/middleware/ratelimit"
	"foodhub-be/internal/mykafka"
	"foodhub-be/internal/remote"
	"foodhub-be/internal/service/search"
	"foodhub-be/internal/service/token"
	httpserver "foodhub-be/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.APP_ENV)
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	refreshSecret := []byte(cfg.REFRESH_SECRET)

	prod := mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
	if prod == nil {
		logger.Info("kafka not configured, events disabled")
	}

	cat := catalog.New(catalog.Mock())

	esClient, err := es.NewClient(cfg)
	if err != nil {
		logger.Fatal("elasticsearch init failed", zap.Error(err))
	}
	const searchIndex = "restaurants"
	if esClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := search.IndexRestaurants(ctx, esClient, searchIndex, cat.Restaurants()); err != nil {
			logger.Fatal("catalog indexing failed", zap.Error(err))
		}
		cancel()
	}

	tokens := &token.TokenService{DB: db, JWTSecret: jwtSecret, RefreshSecret: refreshSecret}
	guard := &authguard.Guard{Tokens: tokens}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.CORS(),
		logging.RequestLogger(logger),
		ratelimit.New(20, 40).Middleware(),
	)

	deps := httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{
			DB:            db,
			JWTSecret:     jwtSecret,
			RefreshSecret: refreshSecret,
			Producer:      prod,
			Backend:       remote.FixedDelay{Delay: 500 * time.Millisecond},
		},
		ProfileHandler: &handlers.ProfileHandler{DB: db, JWTSecret: jwtSecret},
		CatalogHandler: &handlers.CatalogHandler{Catalog: cat, ES: esClient, Index: searchIndex},
		CartHandler:    &cart.CartHandler{DB: db, Catalog: cat, Producer: prod, JWTSecret: jwtSecret},
		OrderHandler: &handlers.OrderHandler{
			DB:        db,
			Catalog:   cat,
			Producer:  prod,
			JWTSecret: jwtSecret,
			Log:       logger,
			Backend:   remote.FixedDelay{Delay: 2 * time.Second},
			Schedule:  handlers.DefaultDeliverySchedule(),
		},
		DashboardHandler: &handlers.DashboardHandler{DB: db, Catalog: cat},
		Guard:            guard,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.APP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", zap.Error(err))
		}
	}
	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
