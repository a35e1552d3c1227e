// Package commands implements CLI command handlers for openwrt-ifstatus.
//
// Each command implements the Runner interface: Init parses the command's own
// flags and loads the configuration, Run performs the work and Name is used by
// main to dispatch on the first positional argument.
//
// # Available Commands
//
//   - status: fetch the interface status once and print it
//   - ssh-command: print the ssh invocation status would run
//   - show-config: print the effective configuration as TOML
//
// # Example Usage
//
//	cmd := commands.CreateStatusCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/openwrt-ifstatus.toml"}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
