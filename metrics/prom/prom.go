// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prom adapts ringmpsc.Metrics to Prometheus counters.
package prom

import (
	"github.com/boonzy00/ringmpsc"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements ringmpsc.Metrics and exports Prometheus counters.
// Safe for concurrent use; all Prometheus metric types are
// goroutine-safe on their own.
type Adapter struct {
	produced  prometheus.Counter
	consumed  prometheus.Counter
	contended prometheus.Counter
}

// New constructs a Prometheus metrics adapter and registers its
// counters.
//   - reg:         registry to register with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		produced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "items_produced_total",
			Help:        "Items committed across all rings",
			ConstLabels: constLabels,
		}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "items_consumed_total",
			Help:        "Items drained across all rings",
			ConstLabels: constLabels,
		}),
		contended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "contention_total",
			Help:        "Reserve/drain calls that observed a full or empty ring",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.produced, a.consumed, a.contended)
	return a
}

// Produced increments the produced counter.
func (a *Adapter) Produced(n int) { a.produced.Add(float64(n)) }

// Consumed increments the consumed counter.
func (a *Adapter) Consumed(n int) { a.consumed.Add(float64(n)) }

// Contended increments the contention counter.
func (a *Adapter) Contended() { a.contended.Inc() }

var _ ringmpsc.Metrics = &Adapter{}
