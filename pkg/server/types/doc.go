// Package types defines the wire-level error envelope shared by the
// HTTP handlers and middleware.
package types
