package domain

import (
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/openwrt"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/remote"
)

// AppDependencies holds the transport and fetcher built for one configuration.
//
// Usage:
//
//	deps, err := domain.NewAppDependencies(cfg)
//	status, err := deps.StatusFetcher().FetchInterfaceStatus(ctx)
type AppDependencies struct {
	cfg     config.Config
	runner  CommandRunner
	fetcher StatusFetcher
}

// NewAppDependencies creates the transport selected by cfg.Transport and a
// fetcher using it.
func NewAppDependencies(cfg config.Config) (*AppDependencies, error) {
	runner, err := remote.NewRunner(cfg)
	if err != nil {
		return nil, err
	}

	fetcher, err := openwrt.NewFetcher(cfg, runner)
	if err != nil {
		return nil, err
	}

	return &AppDependencies{
		cfg:     cfg,
		runner:  runner,
		fetcher: fetcher,
	}, nil
}

// NewTestDependencies creates a container around a provided fetcher, typically a mock.
func NewTestDependencies(cfg config.Config, runner CommandRunner, fetcher StatusFetcher) *AppDependencies {
	return &AppDependencies{
		cfg:     cfg,
		runner:  runner,
		fetcher: fetcher,
	}
}

// Config returns the configuration the dependencies were built for.
func (d *AppDependencies) Config() config.Config {
	return d.cfg
}

// CommandRunner returns the remote transport.
func (d *AppDependencies) CommandRunner() CommandRunner {
	return d.runner
}

// StatusFetcher returns the interface status fetcher.
func (d *AppDependencies) StatusFetcher() StatusFetcher {
	return d.fetcher
}
