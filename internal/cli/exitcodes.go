package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error
// reporting across all commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: storage faults, unexpected
	// failures, anything without a more specific category below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage, such as a malformed
	// record ID argument.
	ExitUsage = 2

	// ExitNotFound indicates the requested record does not exist.
	ExitNotFound = 3

	// ExitValidation indicates input that fails the record invariants:
	// a blank field or a non-digit phone number.
	ExitValidation = 5
)
