// Package config loads and validates the server configuration from
// environment variables, command-line flags, and an optional JSON file.
// Sources are merged in that order with the first non-zero value winning.
// Validation runs once at startup; any problem (weak encryption secret,
// missing DSN or token settings) aborts the process before a single
// request is served.
package config
