// Package metrics exposes prometheus counters for the auth pipeline.
package metrics

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess         = "success"
	OutcomeFailure         = "failure"
	OutcomeMissing         = "missing"
	OutcomeInvalid         = "invalid"
	OutcomeMismatch        = "mismatch"
	OutcomeUnknownIdentity = "unknown_identity"
)

type Collector struct {
	logins        *prometheus.CounterVec
	verifications *prometheus.CounterVec
	rotations     *prometheus.CounterVec
}

// NewCollector registers the auth counters on reg and returns the collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_token_verifications_total",
			Help: "Bearer token verifications at the gate by outcome.",
		}, []string{"outcome"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_refresh_rotations_total",
			Help: "Refresh token rotations by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.logins, c.verifications, c.rotations)

	return c
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordVerification(outcome string) {
	c.verifications.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRotation(outcome string) {
	c.rotations.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in prometheus text format as a fiber handler.
func Handler(reg *prometheus.Registry) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}
