// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a usage error (bad args, unknown command, wrong destination).
	UserError = 1

	// ConfigError indicates a missing or placeholder setting, or missing credentials.
	ConfigError = 2

	// RemoteError indicates a backend/API/network error.
	RemoteError = 3
)
