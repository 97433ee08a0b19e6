// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the locker server.
//
// All recording methods are safe to call on a nil *Metrics, so services can
// be constructed without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-locker/models"
)

const (
	namespace = "locker"

	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Metrics is a set of collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	lockerWrites    *prometheus.CounterVec
	lockerReads     prometheus.Counter
	recoveryReads   *prometheus.CounterVec
	sessionsOpened  *prometheus.CounterVec
	sessionsExpired prometheus.Counter
	rateLimited     *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lockerWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "server",
				Name:      "locker_writes_total",
				Help:      "Locker writes submitted to the server, by admission result.",
			}, []string{"result"}),
		lockerReads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "server",
				Name:      "locker_reads_total",
				Help:      "Lockers handed out to password sessions.",
			}),
		recoveryReads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "server",
				Name:      "recovery_reads_total",
				Help:      "Recovery locker reads, by result.",
			}, []string{"result"}),
		sessionsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "server",
				Name:      "sessions_opened_total",
				Help:      "Sessions opened by the login gateway, by session kind.",
			}, []string{"kind"}),
		sessionsExpired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "worker",
				Name:      "expired_sessions_removed_total",
				Help:      "Expired sessions removed by the cleanup worker.",
			}),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "server",
				Name:      "rate_limited_requests_total",
				Help:      "Requests rejected by a rate limiter, by route.",
			}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.lockerWrites,
		m.lockerReads,
		m.recoveryReads,
		m.sessionsOpened,
		m.sessionsExpired,
		m.rateLimited,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) LockerWrite(accepted bool) {
	if m == nil {
		return
	}
	m.lockerWrites.WithLabelValues(result(accepted)).Inc()
}

func (m *Metrics) LockerRead() {
	if m == nil {
		return
	}
	m.lockerReads.Inc()
}

func (m *Metrics) RecoveryRead(served bool) {
	if m == nil {
		return
	}
	m.recoveryReads.WithLabelValues(result(served)).Inc()
}

func (m *Metrics) SessionOpened(kind models.SessionKind) {
	if m == nil {
		return
	}
	m.sessionsOpened.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) SessionsExpired(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.sessionsExpired.Add(float64(n))
}

func (m *Metrics) RateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(route).Inc()
}

func result(ok bool) string {
	if ok {
		return ResultAccepted
	}
	return ResultRejected
}
