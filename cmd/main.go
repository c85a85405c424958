package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/config"
	router "taskboard/internal/http"
	"taskboard/internal/http/handlers"
	"taskboard/internal/service"
	"taskboard/internal/store/memory"
)

func main() {
	cfg := config.New()

	store := memory.New()

	service, err := service.New(store, cfg.Delays)
	if err != nil {
		log.Fatalf("service initiation failed: %v", err)
	}

	handler := handlers.New(service, store)

	router := router.New(handler)

	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %s\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	log.Printf("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	// cancel in-flight operations and wait for them to drain
	service.Close()
	service.Wait()

	log.Printf("shut down gracefully")
}
