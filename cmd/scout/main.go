// Scout is the Onebeat competitive intelligence service.
//
// It serves the competitor database over HTTP, providing:
//   - CRUD endpoints for competitors, capabilities, and market segments
//   - Team-scoped exports in JSON, CSV, and PDF formats
//   - Optional dataset hot reload from a YAML override file
//   - Optional scheduled export snapshots
//
// Usage:
//
//	# Start the server with default configuration
//	scout serve
//
//	# Start with a custom configuration file
//	scout serve --config /path/to/config.yaml
//
//	# Write an export to disk without starting the server
//	scout export --format csv --team sales --output sales.csv
//
//	# Show version information
//	scout version
package main

func main() {
	Execute()
}
