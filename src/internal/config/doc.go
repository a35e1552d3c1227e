// Package config holds the connection parameters for fetching an interface status.
//
// Default returns values that work without any external input (root@192.168.1.1:22,
// interface "wan", the system ssh client). LoadConfig overlays an optional TOML
// file on top of those defaults, and ValidateConfig checks every field before
// anything is interpolated into an ssh invocation.
//
// # Example Configuration
//
//	host = "10.0.0.1"
//	port = 2222
//	username = "root"
//	interface = "wan6"
//	private_key_path = "~/.ssh/openwrt"
//	transport = "native"
//	strict_host_key_checking = true
//
// Relative key and known_hosts paths are resolved against the directory of the
// configuration file.
package config
