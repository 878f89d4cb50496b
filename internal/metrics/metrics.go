// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the auth server's Prometheus counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	otpIssued      *prometheus.CounterVec
	otpValidations *prometheus.CounterVec
	logins         *prometheus.CounterVec
	registrations  prometheus.Counter
	otpSwept       prometheus.Counter
	httpDuration   *prometheus.HistogramVec
}

// New builds the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		otpIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_otp_issued_total",
			Help: "Total number of OTP codes issued",
		}, []string{"purpose"}),
		otpValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_otp_validations_total",
			Help: "Total number of OTP validations by outcome",
		}, []string{"purpose", "result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"result"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of registered accounts",
		}),
		otpSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auth_otp_swept_total",
			Help: "Total number of users whose expired OTP codes were cleared by the sweeper",
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auth_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.otpIssued,
		m.otpValidations,
		m.logins,
		m.registrations,
		m.otpSwept,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) OtpIssued(purpose string) {
	m.otpIssued.WithLabelValues(purpose).Inc()
}

// OtpValidated records a validation outcome; result is "success" or the
// failure reason.
func (m *Metrics) OtpValidated(purpose, result string) {
	m.otpValidations.WithLabelValues(purpose, result).Inc()
}

func (m *Metrics) Login(success bool) {
	m.logins.WithLabelValues(resultLabel(success)).Inc()
}

func (m *Metrics) Registered() {
	m.registrations.Inc()
}

func (m *Metrics) OtpSwept(n int64) {
	if n > 0 {
		m.otpSwept.Add(float64(n))
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func resultLabel(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}
