/*
Package middleware provides the HTTP middleware chain: panic recovery,
request id propagation, structured request logging, CORS, per-request
timeouts, and Prometheus instrumentation.

Order matters. The server composes them outermost-first as recovery,
request id, logging, metrics, CORS, timeout, so a panic anywhere in the
chain still produces a well-formed 500 and every response carries a
request id.
*/
package middleware
