package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
)

func CreateShowConfigCommand() *ShowConfigCommand {
	return &ShowConfigCommand{
		fs:  flag.NewFlagSet("show-config", flag.ExitOnError),
		out: os.Stdout,
	}
}

// ShowConfigCommand prints the effective configuration, defaults included.
type ShowConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
	out io.Writer
}

func (g *ShowConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *ShowConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *ShowConfigCommand) Run() error {
	data, err := g.cfg.SerializeConfig()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}
	_, err = g.out.Write(data)
	return err
}
