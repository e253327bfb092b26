// Package metrics implements the CommandRecorder port with Prometheus
// counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommandRecorder = (*Recorder)(nil)

// Recorder counts list commands by name and outcome.
type Recorder struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry so tests and
// multiple instances never collide on the global default registerer.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "grocerylist",
		Name:      "commands_total",
		Help:      "List commands handled, partitioned by command and outcome.",
	}, []string{"command", "outcome"})
	reg.MustRegister(commands)

	return &Recorder{registry: reg, commands: commands}
}

// RecordCommand increments the counter for command and outcome.
func (r *Recorder) RecordCommand(command string, outcome model.Outcome) {
	r.commands.WithLabelValues(command, string(outcome)).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
