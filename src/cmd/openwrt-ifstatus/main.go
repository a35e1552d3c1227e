package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/commands"
	"github.com/maksimkurb/openwrt-ifstatus/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (defaults are used when omitted)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "OpenWrt interface status over SSH\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  status [-interface name] [-host h] [-json]   Fetch and print the interface status\n")
		fmt.Fprintf(os.Stderr, "  ssh-command [-interface name] [-host h]      Print the ssh command status would run\n")
		fmt.Fprintf(os.Stderr, "  show-config                                  Print the effective configuration\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// stdout carries the status itself
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateStatusCommand(),
		commands.CreateSSHCommandCommand(),
		commands.CreateShowConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
