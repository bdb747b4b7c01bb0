// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success also covers "todo not found", which is a normal outcome.
	Success = 0

	// Failure indicates an I/O or parse failure on the todo file.
	Failure = 1

	// Usage indicates bad arguments, flags or an unknown subcommand.
	Usage = 2
)
