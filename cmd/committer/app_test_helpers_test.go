package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/bashhack/committer/internal/scheduler"
)

// MockRunner implements the Runner interface for testing
type MockRunner struct {
	RunCalled     bool
	SummaryCalled bool
	RunErr        error
	CurrentState  scheduler.State
}

func (m *MockRunner) PrintSummary() {
	m.SummaryCalled = true
}

func (m *MockRunner) Run(ctx context.Context) error {
	m.RunCalled = true
	return m.RunErr
}

func (m *MockRunner) State() scheduler.State {
	return m.CurrentState
}

// MockLocker implements the Locker interface for testing
type MockLocker struct {
	AcquireErr    error
	ReleaseErr    error
	AcquireCalled bool
	ReleaseCalled bool
}

func (m *MockLocker) Acquire() error {
	m.AcquireCalled = true
	return m.AcquireErr
}

func (m *MockLocker) Release() error {
	m.ReleaseCalled = true
	return m.ReleaseErr
}

// MockLogger implements the Logger interface for testing and records every
// message by level.
type MockLogger struct {
	mu       sync.Mutex
	Messages map[string][]string
	CloseErr error
}

func NewMockLogger() *MockLogger {
	return &MockLogger{Messages: map[string][]string{}}
}

func (m *MockLogger) record(level, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages[level] = append(m.Messages[level], fmt.Sprintf(format, args...))
}

func (m *MockLogger) Info(format string, args ...interface{}) { m.record("info", format, args...) }

func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.record("warning", format, args...)
}

func (m *MockLogger) Error(format string, args ...interface{}) { m.record("error", format, args...) }

func (m *MockLogger) InfoToUser(format string, args ...interface{}) {
	m.record("info", format, args...)
}

func (m *MockLogger) WarningToUser(format string, args ...interface{}) {
	m.record("warning", format, args...)
}

func (m *MockLogger) Success(format string, args ...interface{}) {
	m.record("success", format, args...)
}

func (m *MockLogger) StatusMessage(format string, args ...interface{}) {
	m.record("status", format, args...)
}

func (m *MockLogger) Close() error {
	return m.CloseErr
}

// Get returns a copy of the messages logged at level.
func (m *MockLogger) Get(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Messages[level]...)
}
