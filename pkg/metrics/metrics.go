package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/freqcache/pkg/cache"
)

const namespace = "freqcache"

// StatsSource is anything that reports cache counters, typically an
// *cache.LFUCache or *cache.SyncLFUCache.
type StatsSource interface {
	Stats() cache.Stats
}

type metricSpec struct {
	name      string
	help      string
	valueType prometheus.ValueType
}

// Order matches the values emitted by Collect.
var cacheMetrics = []metricSpec{
	{"hits_total", "Cumulative number of lookups that found a resident key.", prometheus.CounterValue},
	{"misses_total", "Cumulative number of lookups for a key that was not resident.", prometheus.CounterValue},
	{"evictions_total", "Cumulative number of entries evicted to make room for new keys.", prometheus.CounterValue},
	{"puts_total", "Cumulative number of accepted inserts and updates.", prometheus.CounterValue},
	{"entries", "Number of entries currently resident.", prometheus.GaugeValue},
	{"capacity", "Maximum number of resident entries.", prometheus.GaugeValue},
}

// CacheCollector exports one cache's Stats as Prometheus metrics.
// Values are read at scrape time, so the cache itself carries no Prometheus
// dependency. Every metric carries a constant "cache" label.
type CacheCollector struct {
	src   StatsSource
	descs []*prometheus.Desc
}

// NewCacheCollector creates a collector for src labeled cache=name.
func NewCacheCollector(name string, src StatsSource) *CacheCollector {
	labels := prometheus.Labels{"cache": name}
	c := &CacheCollector{src: src, descs: make([]*prometheus.Desc, len(cacheMetrics))}
	for i, m := range cacheMetrics {
		c.descs[i] = prometheus.NewDesc(prometheus.BuildFQName(namespace, "", m.name), m.help, nil, labels)
	}
	return c
}

func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	values := [...]float64{
		float64(s.Hits),
		float64(s.Misses),
		float64(s.Evictions),
		float64(s.Puts),
		float64(s.Len),
		float64(s.Cap),
	}
	for i, m := range cacheMetrics {
		ch <- prometheus.MustNewConstMetric(c.descs[i], m.valueType, values[i])
	}
}

// Register registers every collector with reg, collecting all failures.
func Register(reg prometheus.Registerer, collectors ...prometheus.Collector) error {
	var errs []error
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
