package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcart "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/cart"
	appcheckout "github.com/Amalina-Hashim/eCommerceAPIs/internal/application/checkout"
	domainadmin "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/admin"
	domaincart "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/cart"
	domaincatalog "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/catalog"
	domainorder "github.com/Amalina-Hashim/eCommerceAPIs/internal/domain/order"
	httptransport "github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/http"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/id"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/memory"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/mongodb"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/infrastructure/stripegw"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/pkg/config"
	"github.com/Amalina-Hashim/eCommerceAPIs/internal/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger := logging.MustNewLogger(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idGen := id.NewUUIDGenerator()

	var (
		cartRepo    domaincart.Repository
		orderRepo   domainorder.Repository
		productRepo domaincatalog.Repository
		adminRepo   domainadmin.Repository
	)
	if cfg.MongoURI != "" {
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatal("mongodb_connect_failed", zap.Error(err))
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		db := client.Database(cfg.MongoDB)
		cartRepo = mongodb.NewCartRepository(db, idGen)
		orderRepo = mongodb.NewOrderRepository(db)
		productRepo = mongodb.NewProductRepository(db)
		adminRepo = mongodb.NewAdminRepository(db)
		logger.Info("store_ready", zap.String("backend", "mongodb"), zap.String("db", cfg.MongoDB))
	} else {
		cartRepo = memory.NewCartRepository(idGen)
		orderRepo = memory.NewOrderRepository()
		productRepo = memory.NewProductRepository()
		adminRepo = memory.NewAdminRepository()
		logger.Info("store_ready", zap.String("backend", "memory"))
	}

	if cfg.AdminUsername != "" {
		if err := seedAdmin(ctx, adminRepo, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logger.Fatal("admin_seed_failed", zap.Error(err))
		}
	}

	gateway := stripegw.New(cfg.StripeSecretKey)

	cartService := appcart.NewService(cartRepo, productRepo, cfg.UploadPathPrefix)
	checkoutService := appcheckout.NewService(gateway, orderRepo, cartRepo, idGen)

	metrics := httptransport.NewMetrics(prometheus.DefaultRegisterer)
	handler := httptransport.NewHandler(cartService, checkoutService)
	middleware := httptransport.ObservabilityMiddleware(logger, metrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", middleware(handler.Router()))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	go func() {
		logger.Info("http_server_start", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error", zap.Error(err))
	} else {
		logger.Info("http_server_stopped")
	}
}

// seedAdmin makes sure the configured admin record exists. Existing records
// are left untouched.
func seedAdmin(ctx context.Context, repo domainadmin.Repository, username, password string) error {
	_, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainadmin.ErrNotFound) {
		return err
	}
	return repo.Save(ctx, &domainadmin.User{Username: username, Password: password})
}
