// cmd/diagnostics/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alkavf71/pump-basic/internal/alerting"
	"github.com/alkavf71/pump-basic/internal/api"
	"github.com/alkavf71/pump-basic/internal/auth"
	"github.com/alkavf71/pump-basic/internal/config"
	"github.com/alkavf71/pump-basic/internal/data"
	"github.com/alkavf71/pump-basic/internal/diagnosis"
	"github.com/alkavf71/pump-basic/internal/storage"
	"github.com/alkavf71/pump-basic/internal/websocket"
)

func main() {
	configPath := flag.String("config", ".", "Path to the configuration file directory")
	flag.Parse()

	// Local .env overrides are optional.
	_ = godotenv.Load()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	cfg := &config.AppConfig

	// --- Initialize Components ---
	store := storage.NewReportStore()
	hub := websocket.NewHub()
	alerter := alerting.NewAlerter(hub)
	authManager := auth.NewManager(cfg.Auth)

	limits := diagnosis.ElectricalLimits{
		VoltageUnbalancePct:      cfg.Diagnosis.VoltageUnbalancePct,
		CurrentUnbalanceMinorPct: cfg.Diagnosis.CurrentUnbalanceMinorPct,
		CurrentUnbalanceMajorPct: cfg.Diagnosis.CurrentUnbalanceMajorPct,
	}
	handler := api.NewAPIHandler(store, hub, alerter, authManager, limits,
		data.PumpStandard(cfg.Diagnosis.DefaultStandard))

	go hub.Run()

	dataServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.DataPort),
		Handler: api.SetupDataRouter(handler),
	}
	uiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.UIPort),
		Handler: api.SetupUIRouter(handler),
	}

	go func() {
		log.Printf("Starting diagnostic API on port %d", cfg.Server.DataPort)
		if err := dataServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Data server error: %v", err)
		}
	}()
	go func() {
		log.Printf("Starting websocket feed on port %d", cfg.Server.UIPort)
		if err := uiServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("UI server error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := dataServer.Shutdown(ctx); err != nil {
		log.Printf("Data server shutdown error: %v", err)
	}
	if err := uiServer.Shutdown(ctx); err != nil {
		log.Printf("UI server shutdown error: %v", err)
	}

	log.Println("Servers gracefully stopped.")
}
