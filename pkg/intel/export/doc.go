/*
Package export turns projected competitor records into downloadable
payloads.

Three encoders are supported: a JSON envelope, a CSV table with per-team
column schemas, and a styled HTML report rendered to PDF through an
external wkhtmltopdf binary. When PDF rendering fails the report encoder
falls back to a plain-text rendering with the same per-team sections;
the fallback is part of the contract, not best-effort cleanup, so a
missing binary never turns into a server error.

All encoders consume []projection.Record and the team's Schema; field
selection is decided once, in the projection package. An Exporter is
cheap to construct and safe for concurrent use.

The package also contains a cron-driven Scheduler that writes periodic
export snapshots to disk for teams that want files without hitting the
HTTP surface.
*/
package export
