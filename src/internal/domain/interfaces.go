// Package domain defines the interfaces commands depend on, so that the CLI can
// be tested without a router.
package domain

import (
	"context"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/openwrt"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/remote"
)

// StatusFetcher retrieves the status of one interface.
//
// *openwrt.Fetcher is the production implementation.
type StatusFetcher interface {
	// FetchInterfaceStatus runs the status command once and parses its output.
	FetchInterfaceStatus(ctx context.Context) (*openwrt.InterfaceStatus, error)
}

// CommandRunner is re-exported so that callers only need this package for wiring.
type CommandRunner = remote.CommandRunner
