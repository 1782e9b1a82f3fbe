/*
Package cli provides command-line interface utilities for the scout
command.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown

Errors:

Commands wrap failures in typed errors so the caller can distinguish
configuration problems from runtime failures:

	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("server.listen_address", err.Error())
	}
*/
package cli
