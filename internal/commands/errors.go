package commands

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"goaltask/internal/config"
	"goaltask/internal/exitcode"
	"goaltask/internal/service"
)

// reportError logs err with a stack trace, prints the one-line summary and
// maps it to an exit code.
func reportError(rt *Runtime, errOut io.Writer, err error) int {
	rt.Log.Error("command failed", zap.Error(err))

	var cerr *config.ConfigError
	if errors.As(err, &cerr) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}

	var rerr *service.RemoteError
	if errors.As(err, &rerr) {
		fmt.Fprintf(errOut, "error: remote error: %v\n", err)
		return exitcode.RemoteError
	}

	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.RemoteError
}

// usageError prints a usage problem and returns exitcode.UserError.
func usageError(errOut io.Writer, format string, args ...any) int {
	fmt.Fprintf(errOut, "error: "+format+"\n", args...)
	return exitcode.UserError
}
