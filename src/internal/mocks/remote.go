// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
package mocks

import (
	"context"
	"sync"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/remote"
)

// MockCommandRunner is a mock implementation of remote.CommandRunner.
//
// It records every command it receives. If RunFunc is nil, Run returns a
// successful result with empty output.
//
// Example usage:
//
//	runner := &MockCommandRunner{
//	    RunFunc: func(ctx context.Context, cmd string) (*remote.Result, error) {
//	        return &remote.Result{ExitCode: 1, Stderr: []byte("no such interface")}, nil
//	    },
//	}
type MockCommandRunner struct {
	RunFunc func(ctx context.Context, remoteCommand string) (*remote.Result, error)

	mu       sync.Mutex
	commands []string
}

// NewMockCommandRunnerWithOutput returns a runner that always exits 0 with stdout.
func NewMockCommandRunnerWithOutput(stdout []byte) *MockCommandRunner {
	return &MockCommandRunner{
		RunFunc: func(ctx context.Context, remoteCommand string) (*remote.Result, error) {
			return &remote.Result{Stdout: stdout}, nil
		},
	}
}

// NewMockCommandRunnerWithExit returns a runner that always exits with code and stderr.
func NewMockCommandRunnerWithExit(code int, stderr string) *MockCommandRunner {
	return &MockCommandRunner{
		RunFunc: func(ctx context.Context, remoteCommand string) (*remote.Result, error) {
			return &remote.Result{Stderr: []byte(stderr), ExitCode: code}, nil
		},
	}
}

// Run records the command and delegates to RunFunc.
func (m *MockCommandRunner) Run(ctx context.Context, remoteCommand string) (*remote.Result, error) {
	m.mu.Lock()
	m.commands = append(m.commands, remoteCommand)
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, remoteCommand)
	}
	return &remote.Result{}, nil
}

// Commands returns the commands received so far.
func (m *MockCommandRunner) Commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.commands...)
}
