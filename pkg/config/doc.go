/*
Package config defines the service configuration, loaded from a YAML
file with defaults applied, environment overrides layered on top, and
validation run last.

Environment variables use the SCOUT_SECTION_FIELD naming convention
(e.g. SCOUT_SERVER_LISTEN_ADDRESS) and always win over file values.
*/
package config
