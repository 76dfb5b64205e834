package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(os.Stderr, userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
// With --verbose the full technical error chain is printed instead.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintln(w, ui.StyleError.Render(fmt.Sprintf("Error: %v", technicalErr)))
		return
	}
	fmt.Fprintln(w, ui.StyleError.Render(userMsg))
}

// LogError records a diagnostic at debug level. It is visible with --verbose.
func LogError(msg string, err error) {
	if err != nil {
		slog.Debug(msg, "error", err)
		return
	}
	slog.Debug(msg)
}

// userMessage picks the message shown for err: the task error itself when
// one is in the chain, otherwise the full error text.
func userMessage(err error) string {
	var taskErr *types.TaskError
	if errors.As(err, &taskErr) {
		return "Error: " + taskErr.Error()
	}
	return "Error: " + err.Error()
}
