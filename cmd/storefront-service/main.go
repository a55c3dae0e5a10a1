package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/andreasstove999/storefront-service-go/internal/cart"
	"github.com/andreasstove999/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/storefront-service-go/internal/config"
	httpapi "github.com/andreasstove999/storefront-service-go/internal/http"
	"github.com/andreasstove999/storefront-service-go/internal/locale"
	"github.com/andreasstove999/storefront-service-go/internal/storefront"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront-service] ", log.LstdFlags|log.Lmicroseconds)

	sharedHTTP := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	catalogClient, err := catalog.NewClient(cfg.CatalogURL, sharedHTTP)
	if err != nil {
		logger.Fatalf("catalog client: %v", err)
	}

	bundle, err := locale.Load()
	if err != nil {
		logger.Fatalf("locale bundle: %v", err)
	}

	store := cart.NewStore()
	service := storefront.NewService(catalogClient)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:           logger,
		Service:          service,
		Store:            store,
		Catalog:          catalogClient,
		Bundle:           bundle,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Printf("shutdown complete")
}
