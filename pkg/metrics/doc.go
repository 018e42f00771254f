/*
Package metrics instruments the store with Prometheus gauges, counters,
and histograms, and tracks the daemon's health/readiness status.

Size gauges (HostsTotal, ServicesTotal, ...) are refreshed by a Collector
polling a StoreSizer on a timer; per-call counters (UpdatesTotal,
UpdateIntervalSeconds) are updated inline by pkg/store at the point of
each write that returns a result; writes refused with an error are not
counted. Handler returns the promhttp exposition
handler for mounting under /metrics.
*/
package metrics
