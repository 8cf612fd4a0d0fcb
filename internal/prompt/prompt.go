// Package prompt implements the acknowledgment gate shown before committer
// exits after a failed iteration.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Message is printed before waiting for the user's acknowledgment.
const Message = "Press any key to exit..."

// Acknowledger blocks until the user confirms they have seen a failure.
type Acknowledger interface {
	// WaitForAcknowledgment displays the prompt and returns once one line of
	// input (or end of input) has been read.
	WaitForAcknowledgment()
}

// DefaultAcknowledger is the standard implementation of Acknowledger
// that reads from stdin and writes to stdout
type DefaultAcknowledger struct {
	Reader io.Reader
	Writer io.Writer
}

// NewDefaultAcknowledger creates a new DefaultAcknowledger
func NewDefaultAcknowledger() *DefaultAcknowledger {
	return &DefaultAcknowledger{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// WaitForAcknowledgment prints Message and reads a single line.
// Read errors, including EOF, count as acknowledgment.
func (a *DefaultAcknowledger) WaitForAcknowledgment() {
	_, _ = fmt.Fprintln(a.Writer, Message)

	reader := bufio.NewReader(a.Reader)
	_, _ = reader.ReadString('\n')
}

// NonInteractiveAcknowledger returns immediately without prompting
type NonInteractiveAcknowledger struct{}

// NewNonInteractiveAcknowledger creates a new NonInteractiveAcknowledger
func NewNonInteractiveAcknowledger() *NonInteractiveAcknowledger {
	return &NonInteractiveAcknowledger{}
}

// WaitForAcknowledgment does nothing
func (a *NonInteractiveAcknowledger) WaitForAcknowledgment() {}
