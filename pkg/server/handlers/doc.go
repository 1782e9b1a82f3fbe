/*
Package handlers implements the HTTP API: competitor CRUD, the
capability and market-segment catalogs, the export endpoint, and the
health check.

Errors follow a single taxonomy. Unknown ids map to 404, malformed
bodies and unsupported export formats to 400 with a machine-readable
code, and everything unexpected to a generic 500; storage errors never
reach the client raw.
*/
package handlers
