/*
Package log provides structured logging for sysdbd using zerolog.

It wraps a single global zerolog.Logger, configured once via Init, with
helpers for attaching host/service/metric context to a line without
repeating the field names at every call site.

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})
	log.WithHost("web01").Warn().Msg("stale update rejected")
*/
package log
