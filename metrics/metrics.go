package metrics

import (
	"net/http"

	"github.com/oomph-ac/voxelsim/movement"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voxelsim"

// Collector holds the prometheus metrics of a session. Every Collector has its own registry, so that multiple
// collectors may exist in the same process.
type Collector struct {
	registry *prometheus.Registry

	ticks         prometheus.Counter
	landings      prometheus.Counter
	headBumps     prometheus.Counter
	jumps         prometheus.Counter
	flightToggles prometheus.Counter
	blockedSteps  *prometheus.CounterVec
	flying        prometheus.Gauge
	verticalSpeed prometheus.Gauge
	worldCells    prometheus.Gauge
}

// New returns a Collector with every metric registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Movement ticks simulated.",
		}),
		landings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "landings_total",
			Help:      "Ticks in which a downward move stopped on a cell.",
		}),
		headBumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "head_bumps_total",
			Help:      "Ticks in which an upward move stopped beneath a cell.",
		}),
		jumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jumps_total",
			Help:      "Jumps performed.",
		}),
		flightToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_toggles_total",
			Help:      "Switches between grounded and flying mode.",
		}),
		blockedSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_steps_total",
			Help:      "Horizontal steps rejected by a collision, by movement axis.",
		}, []string{"axis"}),
		flying: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flying",
			Help:      "1 while the player is flying.",
		}),
		verticalSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vertical_velocity",
			Help:      "Vertical velocity of the player in blocks per tick.",
		}),
		worldCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_cells",
			Help:      "Occupied cells in the world.",
		}),
	}
	c.registry.MustRegister(
		c.ticks, c.landings, c.headBumps, c.jumps, c.flightToggles,
		c.blockedSteps, c.flying, c.verticalSpeed, c.worldCells,
	)
	return c
}

// Observe records the result of a single tick.
func (c *Collector) Observe(res movement.Result) {
	c.ticks.Inc()
	if res.Landed {
		c.landings.Inc()
	}
	if res.HeadBumped {
		c.headBumps.Inc()
	}
	if res.Jumped {
		c.jumps.Inc()
	}
	if res.ToggledFlight {
		c.flightToggles.Inc()
	}
	if res.BlockedForward {
		c.blockedSteps.WithLabelValues("forward").Inc()
	}
	if res.BlockedRight {
		c.blockedSteps.WithLabelValues("right").Inc()
	}
	if res.Flying {
		c.flying.Set(1)
	} else {
		c.flying.Set(0)
	}
	c.verticalSpeed.Set(float64(res.Vy))
}

// SetWorldSize records the amount of occupied cells.
func (c *Collector) SetWorldSize(n int) {
	c.worldCells.Set(float64(n))
}

// Registry returns the registry the metrics are registered in.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an http.Handler serving the metrics in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
