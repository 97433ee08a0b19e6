// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-locker/internal/config"
	"github.com/MKhiriev/go-locker/internal/handler"
	myGRPC "github.com/MKhiriev/go-locker/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-locker/internal/handler/http"
	"github.com/MKhiriev/go-locker/internal/logger"
	"github.com/MKhiriev/go-locker/internal/metrics"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testHandlers(cfg config.Server) *handler.Handlers {
	full := config.StructuredConfig{Server: cfg}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, full, metrics.New(), logger.Nop()),
		GRPC: myGRPC.NewHandler(okPinger{}, logger.Nop()),
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(testHandlers(config.Server{}), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     "127.0.0.1:0",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
	s, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailureStopsAll(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		GRPCAddress:     busy.Addr().String(),
		ShutdownTimeout: time.Second,
	}
	s, err := NewServer(testHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.RunServer(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after a listen failure")
	}
}
