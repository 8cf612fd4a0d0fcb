package git

import (
	"context"
	"strings"
	"sync"
)

// MockCommandExecutor is a mock of the CommandExecutor interface that records
// every invocation and fails chosen git subcommands.
type MockCommandExecutor struct {
	mu sync.Mutex

	// Calls holds the full argument list of every invocation, in order.
	Calls [][]string

	// FailOn maps a git subcommand (add, commit, push) to the error it returns.
	FailOn map[string]error
}

// NewMockCommandExecutor creates a MockCommandExecutor where every command succeeds.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{FailOn: map[string]error{}}
}

// ExecuteWithContext implements CommandExecutor
func (m *MockCommandExecutor) ExecuteWithContext(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, append([]string{name}, args...))

	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := m.FailOn[subcommand(args)]; ok && err != nil {
		return err
	}
	return nil
}

// Subcommands returns the git subcommand of every recorded call, in order.
func (m *MockCommandExecutor) Subcommands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		subs = append(subs, subcommand(call[1:]))
	}
	return subs
}

// CommandLines returns every recorded call without the "-C <path>" option,
// joined with spaces, e.g. "git push origin main".
func (m *MockCommandExecutor) CommandLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		parts := []string{call[0]}
		for i := 1; i < len(call); i++ {
			if call[i] == "-C" {
				i++
				continue
			}
			parts = append(parts, call[i])
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}
