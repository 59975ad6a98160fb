package notify

import (
	"fmt"
	"io"
)

// Notifier is the user-visible notification sink. Calls are
// fire-and-forget; nothing is returned to the caller.
type Notifier interface {
	Success(message string)
	Info(message string)
}

// Terminal prints notifications as plain lines.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal notifier writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Success prints a success notification.
func (t *Terminal) Success(message string) {
	fmt.Fprintf(t.out, "✔ %s\n", message)
}

// Info prints an informational notification.
func (t *Terminal) Info(message string) {
	fmt.Fprintf(t.out, "ℹ %s\n", message)
}
