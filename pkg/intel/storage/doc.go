/*
Package storage provides the in-memory repository for competitor,
capability, and market segment records.

The store is process-resident only: records live for the lifetime of the
process and are gone on restart. The service is a low-volume,
human-edited dashboard backend and durability is out of scope.

Ids are assigned per collection from a monotonically increasing counter and
are never reused after deletion. Listing returns records in creation order.
All accessors hand out deep copies, so callers can never mutate stored
state through a returned value.

A Store is constructed explicitly at process start and passed to request
handlers; there is no package-level singleton. Tests construct fresh stores
the same way.

The package also ships the embedded seed dataset (Seed) and an optional
fsnotify-based Watcher that reloads a dataset override file when it changes
on disk.
*/
package storage
