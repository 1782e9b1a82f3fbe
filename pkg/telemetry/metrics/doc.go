// Package metrics exposes Prometheus instrumentation for the HTTP
// surface, the export pipeline, and the record store.
package metrics
