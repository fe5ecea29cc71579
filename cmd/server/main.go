// Package main - Entry point for the port-tariff API server
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"port-tariff/api"
	"port-tariff/core/engine"
	"port-tariff/core/loader"
	"port-tariff/internal/config"
	"port-tariff/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	rulesPath := flag.String("rules", "", "rule database file (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Error("loading config", zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	path := cfg.Rules.Path
	if *rulesPath != "" {
		path = *rulesPath
	}
	db, err := loader.Load(path)
	if err != nil {
		logging.Error("loading tariff rules", zap.Error(err))
		os.Exit(1)
	}

	calc := engine.New(db, cfg.Engine)

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      api.NewServer(calc, version),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("port-tariff server listening",
			zap.String("addr", listenAddr),
			zap.String("port", db.PortName),
			zap.Int("rules", db.Len()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("shutdown error", zap.Error(err))
	}
	logging.Info("server stopped")
}
