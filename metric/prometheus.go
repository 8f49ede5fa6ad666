package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Recorder's snapshot as Prometheus metrics. Register
// it with a prometheus.Registerer:
//
//	reg.MustRegister(metric.NewCollector(rec))
type Collector struct {
	recorder *Recorder

	countDesc *prometheus.Desc
	totalDesc *prometheus.Desc
	maxDesc   *prometheus.Desc
}

// NewCollector creates a Collector over rec.
func NewCollector(rec *Recorder) *Collector {
	return &Collector{
		recorder: rec,
		countDesc: prometheus.NewDesc(
			"algokit_operation_count",
			"Number of recorded operation invocations.",
			[]string{"op"}, nil,
		),
		totalDesc: prometheus.NewDesc(
			"algokit_operation_duration_seconds_total",
			"Cumulative duration of recorded operations.",
			[]string{"op"}, nil,
		),
		maxDesc: prometheus.NewDesc(
			"algokit_operation_duration_seconds_max",
			"Maximum observed duration per operation.",
			[]string{"op"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.countDesc
	ch <- c.totalDesc
	ch <- c.maxDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for op, s := range c.recorder.Snapshot() {
		ch <- prometheus.MustNewConstMetric(
			c.countDesc, prometheus.CounterValue, float64(s.Count), op)
		ch <- prometheus.MustNewConstMetric(
			c.totalDesc, prometheus.CounterValue, s.Total.Seconds(), op)
		ch <- prometheus.MustNewConstMetric(
			c.maxDesc, prometheus.GaugeValue, s.Max.Seconds(), op)
	}
}
