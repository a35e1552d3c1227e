package openwrt

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/remote"
)

// Fetcher retrieves the status of the configured interface. It holds no
// mutable state; every call runs exactly one remote command.
type Fetcher struct {
	cfg    config.Config
	runner remote.CommandRunner
}

// NewFetcher creates a Fetcher. If runner is nil, the transport selected by
// cfg.Transport is used.
func NewFetcher(cfg config.Config, runner remote.CommandRunner) (*Fetcher, error) {
	if runner == nil {
		r, err := remote.NewRunner(cfg)
		if err != nil {
			return nil, ierrors.NewConfigError("failed to create transport", err)
		}
		runner = r
	}

	return &Fetcher{cfg: cfg, runner: runner}, nil
}

// FetchInterfaceStatus runs the status command once and parses its output.
//
// Failures abort immediately and no partial status is returned:
//   - COMMAND_FAILED when the command exits non-zero (carries stderr),
//   - ENCODING_ERROR when stdout is not UTF-8 (checked before parsing),
//   - PARSE_ERROR when stdout is not a complete interface status,
//   - PROCESS_SPAWN_ERROR or CONNECTION_ERROR from the transport.
//
// There are no retries and no timeout; ctx is only honoured for cancellation.
func (f *Fetcher) FetchInterfaceStatus(ctx context.Context) (*InterfaceStatus, error) {
	command, err := BuildRemoteCommand(f.cfg)
	if err != nil {
		return nil, ierrors.NewConfigError("failed to build remote command", err)
	}

	result, err := f.runner.Run(ctx, command)
	if err != nil {
		return nil, err
	}

	if !result.Success() {
		stderr := strings.ToValidUTF8(string(result.Stderr), string(utf8.RuneError))
		log.Warnf("Remote command %q on %s exited with code %d", command, f.cfg.Host, result.ExitCode)
		return nil, ierrors.NewCommandFailedError(result.ExitCode, stderr)
	}

	if !utf8.Valid(result.Stdout) {
		return nil, ierrors.NewEncodingError("output of " + command + " is not valid UTF-8")
	}

	status, err := ParseInterfaceStatus(string(result.Stdout))
	if err != nil {
		return nil, err
	}

	log.Debugf("Interface %s: up=%t uptime=%s", f.cfg.Interface, status.Up, status.FormatUptime())
	return status, nil
}

// FetchInterfaceStatus fetches the status with the default configuration and
// the system ssh client.
func FetchInterfaceStatus(ctx context.Context) (*InterfaceStatus, error) {
	fetcher, err := NewFetcher(config.Default(), nil)
	if err != nil {
		return nil, err
	}
	return fetcher.FetchInterfaceStatus(ctx)
}
