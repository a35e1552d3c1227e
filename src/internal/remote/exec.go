package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
)

const defaultSSHPort = 22

// relaxedHostKeyArgs skip host key verification and never record keys.
// Lab routers get reflashed and change keys often; set
// strict_host_key_checking to drop these.
var relaxedHostKeyArgs = []string{
	"-o", "StrictHostKeyChecking=no",
	"-o", "UserKnownHostsFile=/dev/null",
}

// BuildSSHArgs returns the ssh client arguments for running remoteCommand:
// host key options, "-p" for a non-default port, "-i" when a key is set,
// the "user@host" destination and finally the command as one argument.
func BuildSSHArgs(cfg config.Config, remoteCommand string) []string {
	args := make([]string, 0, 10)

	if !cfg.StrictHostKeyChecking {
		args = append(args, relaxedHostKeyArgs...)
	}

	if cfg.Port != 0 && cfg.Port != defaultSSHPort {
		args = append(args, "-p", strconv.Itoa(int(cfg.Port)))
	}

	if cfg.PrivateKeyPath != "" {
		args = append(args, "-i", cfg.PrivateKeyPath)
	}

	args = append(args, cfg.Destination(), remoteCommand)
	return args
}

// ExecRunner runs remote commands by spawning the system ssh client.
type ExecRunner struct {
	cfg config.Config
}

// NewExecRunner creates an ExecRunner for cfg.
func NewExecRunner(cfg config.Config) *ExecRunner {
	return &ExecRunner{cfg: cfg}
}

// Run spawns ssh and waits for it to exit. Failing to start the process is a
// PROCESS_SPAWN_ERROR; any exit status, including ssh's own 255, is a Result.
// Cancelling ctx kills the process and returns the context error.
func (r *ExecRunner) Run(ctx context.Context, remoteCommand string) (*Result, error) {
	binary := r.cfg.SSHBinary
	if binary == "" {
		binary = "ssh"
	}
	args := BuildSSHArgs(r.cfg, remoteCommand)

	log.Debugf("Running %s %q", binary, args)

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s interrupted: %w", binary, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, ierrors.NewProcessSpawnError("failed to start "+binary, err)
		}
		return &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), ExitCode: exitErr.ExitCode()}, nil
	}

	return &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
}
