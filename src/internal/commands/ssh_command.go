package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alessio/shellescape"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/openwrt"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/remote"
)

func CreateSSHCommandCommand() *SSHCommandCommand {
	gc := &SSHCommandCommand{
		fs:  flag.NewFlagSet("ssh-command", flag.ExitOnError),
		out: os.Stdout,
	}

	gc.fs.StringVar(&gc.iface, "interface", "", "Interface to query (overrides configuration)")
	gc.fs.StringVar(&gc.host, "host", "", "Router address (overrides configuration)")

	return gc
}

// SSHCommandCommand prints the ssh invocation the status command would run
// without connecting to the router.
type SSHCommandCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer

	iface string
	host  string
}

func (g *SSHCommandCommand) Name() string {
	return g.fs.Name()
}

func (g *SSHCommandCommand) Init(args []string, ctx *AppContext) error {
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

	return nil
}

func (g *SSHCommandCommand) Run() error {
	if g.cfg.Transport != config.TransportExec {
		return fmt.Errorf("transport %q does not spawn an ssh client", g.cfg.Transport)
	}

	remoteCommand, err := openwrt.BuildRemoteCommand(*g.cfg)
	if err != nil {
		return err
	}

	argv := append([]string{g.cfg.SSHBinary}, remote.BuildSSHArgs(*g.cfg, remoteCommand)...)
	_, err = fmt.Fprintln(g.out, shellescape.QuoteCommand(argv))
	return err
}
