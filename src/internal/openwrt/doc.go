// Package openwrt fetches and models the status of an OpenWrt netifd interface.
//
// The status is obtained by running
//
//	ubus call network.interface.<name> status
//
// on the router over SSH and decoding the JSON it prints into an
// InterfaceStatus. Multi-word wire fields are hyphenated ("ipv4-address",
// "dns-server"); the Go fields use regular names and struct tags translate
// between the two, so a parsed status serializes back to the same shape.
//
// # Example Usage
//
//	cfg := config.Default()
//	cfg.Host = "10.0.0.1"
//
//	fetcher, err := openwrt.NewFetcher(cfg, nil)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	status, err := fetcher.FetchInterfaceStatus(ctx)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Printf("up=%t for %s\n", status.Up, status.FormatUptime())
//
// Errors are classified with codes from the internal errors package
// (COMMAND_FAILED, ENCODING_ERROR, PARSE_ERROR, PROCESS_SPAWN_ERROR,
// CONNECTION_ERROR).
package openwrt
