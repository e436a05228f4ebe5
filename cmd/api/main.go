package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Teodagher/jove-jewelry-sub004/internal/config"
	"github.com/Teodagher/jove-jewelry-sub004/internal/db"
	"github.com/Teodagher/jove-jewelry-sub004/internal/httpserver"
	adminrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/admin"
	cartrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/cart"
	catalogrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/catalog"
	orderrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/order"
	promorepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/promo"
	authsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/auth"
	cartsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/cart"
	catalogsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/catalog"
	checkoutsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	catalogRepo := catalogrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(catalogRepo)
	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo, catalogRepo)
	orderRepo := orderrepo.NewPostgres(dbpool)
	promoRepo := promorepo.NewPostgres(dbpool)
	checkoutService := checkoutsvc.New(cartRepo, orderRepo, promoRepo, checkoutsvc.LogNotifier{Logger: logger}, logger)
	adminRepo := adminrepo.NewPostgres(dbpool)
	authService := authsvc.New(adminRepo, cfg.AdminJWTSecret, cfg.AdminTokenTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		PromoAdmin:  promoRepo,
		OrderAdmin:  orderRepo,
		AuthSvc:     authService,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
