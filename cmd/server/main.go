// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/crypto"
	"github.com/MKhiriev/go-locker/internal/handler"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
	"github.com/MKhiriev/go-locker/internal/server"
	"github.com/MKhiriev/go-locker/internal/service"
	"github.com/MKhiriev/go-locker/internal/store"
	"github.com/MKhiriev/go-locker/internal/workers"
	"github.com/MKhiriev/go-locker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	log := logger.NewLogger("locker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	codec, err := crypto.Init()
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising crypto engine")
	}

	m := metrics.New()

	services, err := service.NewServices(storages, codec, cfg.App, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var health workers.HealthChecker
	if handlers.GRPC != nil {
		health = handlers.GRPC
	}
	bg := workers.NewWorkers(services.SessionService, health, cfg.Workers, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		bg.Run(ctx)
	}()

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
