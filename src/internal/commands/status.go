package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/domain"
	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/openwrt"
)

func CreateStatusCommand() *StatusCommand {
	gc := &StatusCommand{
		fs:      flag.NewFlagSet("status", flag.ExitOnError),
		out:     os.Stdout,
		newDeps: domain.NewAppDependencies,
	}

	gc.fs.StringVar(&gc.iface, "interface", "", "Interface to query (overrides configuration)")
	gc.fs.StringVar(&gc.host, "host", "", "Router address (overrides configuration)")
	gc.fs.BoolVar(&gc.asJSON, "json", false, "Print the status as JSON")

	return gc
}

type StatusCommand struct {
	fs      *flag.FlagSet
	ctx     *AppContext
	cfg     *config.Config
	deps    *domain.AppDependencies
	out     io.Writer
	newDeps func(cfg config.Config) (*domain.AppDependencies, error)

	iface  string
	host   string
	asJSON bool
}

func (g *StatusCommand) Name() string {
	return g.fs.Name()
}

func (g *StatusCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(ctx.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, g.host, g.iface)

	if err := validateConfigOrFail(cfg); err != nil {
		return err
	}
	g.cfg = cfg

	if g.deps, err = g.newDeps(*cfg); err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return nil
}

func (g *StatusCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	status, err := g.deps.StatusFetcher().FetchInterfaceStatus(ctx)
	if err != nil {
		if code := ierrors.CodeOf(err); code != "" {
			log.Errorf("Failed to fetch status of %s from %s (%s)", g.cfg.Interface, g.cfg.Host, code)
		}
		return err
	}

	if log.IsVerbose() {
		log.Infof("Fetched status of %s from %s via %s transport", g.cfg.Interface, g.cfg.Host, g.cfg.Transport)
	}

	if g.asJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize status: %w", err)
		}
		_, err = fmt.Fprintln(g.out, string(data))
		return err
	}

	_, err = fmt.Fprint(g.out, FormatStatusForCLI(g.cfg.Interface, status))
	return err
}

// FormatStatusForCLI renders a human readable summary of status.
func FormatStatusForCLI(name string, status *openwrt.InterfaceStatus) string {
	var b strings.Builder

	state := "down"
	switch {
	case status.IsConnected():
		state = "up"
	case status.Up:
		state = "up (unavailable)"
	case status.Pending:
		state = "pending"
	}

	fmt.Fprintf(&b, "Interface %s: %s\n", name, state)
	if status.Up {
		fmt.Fprintf(&b, "  Uptime:    %s\n", status.FormatUptime())
	}
	if status.Proto != nil {
		fmt.Fprintf(&b, "  Protocol:  %s\n", *status.Proto)
	}
	if status.L3Device != nil {
		fmt.Fprintf(&b, "  Device:    %s\n", *status.L3Device)
	}
	fmt.Fprintf(&b, "  Metric:    %d\n", status.Metric)

	for _, addr := range status.IPv4Address {
		fmt.Fprintf(&b, "  IPv4:      %s/%d\n", addr.Address, addr.Mask)
	}
	for _, addr := range status.IPv6Address {
		fmt.Fprintf(&b, "  IPv6:      %s\n", addr)
	}
	for _, route := range status.Route {
		fmt.Fprintf(&b, "  Route:     %s/%d via %s", route.Target, route.Mask, route.Nexthop)
		if route.Source != nil {
			fmt.Fprintf(&b, " from %s", *route.Source)
		}
		b.WriteString("\n")
	}
	if len(status.DNSServer) > 0 {
		fmt.Fprintf(&b, "  DNS:       %s\n", strings.Join(status.DNSServer, ", "))
	}
	if len(status.DNSSearch) > 0 {
		fmt.Fprintf(&b, "  Search:    %s\n", strings.Join(status.DNSSearch, ", "))
	}

	return b.String()
}
