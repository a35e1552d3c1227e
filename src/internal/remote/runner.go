// Package remote runs a single command on the router over SSH.
//
// Two transports implement CommandRunner: ExecRunner spawns the system ssh
// client, NativeRunner speaks SSH in-process. Both report a command that ran
// but exited non-zero as a Result with a non-zero ExitCode; an error means the
// command could not be run at all.
package remote

import (
	"context"
	"fmt"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
)

// Result is the captured outcome of one remote command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner executes a command on the router and waits for it to finish.
type CommandRunner interface {
	Run(ctx context.Context, remoteCommand string) (*Result, error)
}

// NewRunner returns the transport selected by cfg.Transport.
func NewRunner(cfg config.Config) (CommandRunner, error) {
	switch cfg.Transport {
	case config.TransportExec, "":
		return NewExecRunner(cfg), nil
	case config.TransportNative:
		return NewNativeRunner(cfg), nil
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}
