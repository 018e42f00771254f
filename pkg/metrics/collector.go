package metrics

import "time"

// StoreSizer reports the current size of a store. *store.Store satisfies
// this structurally so pkg/metrics never has to import pkg/store (which
// imports pkg/metrics for inline update instrumentation — importing back
// would cycle).
type StoreSizer interface {
	Sizes() (hosts, services, metrics, attributes int)
}

// Collector periodically refreshes the store-size gauges.
type Collector struct {
	sizer  StoreSizer
	period time.Duration
	stopCh chan struct{}
}

// NewCollector creates a new metrics collector polling sizer every period
// (15s if period is <= 0).
func NewCollector(sizer StoreSizer, period time.Duration) *Collector {
	if period <= 0 {
		period = 15 * time.Second
	}
	return &Collector{sizer: sizer, period: period, stopCh: make(chan struct{})}
}

// Start begins collecting metrics in a background goroutine.
func (c *Collector) Start() {
	ticker := time.NewTicker(c.period)
	go func() {
		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	hosts, services, metricsN, attrs := c.sizer.Sizes()
	HostsTotal.Set(float64(hosts))
	ServicesTotal.Set(float64(services))
	MetricsTotal.Set(float64(metricsN))
	AttributesTotal.Set(float64(attrs))
}
