package cli

import "github.com/yaklabco/subtext/pkg/runner"

// Exit codes for subtext.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitDecodeErrors indicates one or more inputs failed to decode.
	ExitDecodeErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a decode run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitDecodeErrors
	}
	return ExitSuccess
}
