// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs a tool with a SIGINT/SIGTERM-aware context and exits with its code.
// Without arguments the tool reads stdin when it is a pipe or file, and shows
// help otherwise.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = DefaultArgs(os.Stdin)
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

// DefaultArgs returns the argv used when none is given: "-" (read stdin) if
// stdin is redirected, "-h" if it is a terminal or cannot be inspected.
func DefaultArgs(stdin *os.File) []string {
	if fi, err := stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		return []string{"-"}
	}
	return []string{"-h"}
}
