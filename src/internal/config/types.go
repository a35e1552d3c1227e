package config

import (
	"net"
	"strconv"
)

const (
	TransportExec   = "exec"
	TransportNative = "native"

	InterfaceTemplateTag   = "interface"
	DefaultCommandTemplate = "ubus call network.interface.{{" + InterfaceTemplateTag + "}} status"
)

// Config is the set of connection parameters for one status fetch.
// It is passed by value and never modified after construction.
type Config struct {
	// Host is the router address or host name.
	Host string `toml:"host" json:"host" validate:"required,hostname_or_ip"`
	// Port is the SSH port (default: 22).
	Port uint16 `toml:"port" json:"port" validate:"required,min=1"`
	// Username is the remote login (default: root).
	Username string `toml:"username" json:"username" validate:"required,login_name"`
	// Interface is the netifd interface to query (default: wan).
	Interface string `toml:"interface" json:"interface" validate:"required,ifname"`
	// PrivateKeyPath is an optional identity file. Empty means the client's default authentication.
	PrivateKeyPath string `toml:"private_key_path,omitempty" json:"private_key_path,omitempty" validate:"omitempty,readable_file"`

	// Transport selects how the remote command is run: "exec" spawns SSHBinary, "native" uses the built-in client.
	Transport string `toml:"transport" json:"transport" validate:"required,oneof=exec native"`
	// SSHBinary is the ssh client used by the exec transport (default: ssh).
	SSHBinary string `toml:"ssh_binary" json:"ssh_binary" validate:"required_if=Transport exec"`
	// StrictHostKeyChecking enables host key verification. Disabled by default for lab routers that are reflashed often.
	StrictHostKeyChecking bool `toml:"strict_host_key_checking" json:"strict_host_key_checking"`
	// KnownHostsFile is used by the native transport when StrictHostKeyChecking is on.
	KnownHostsFile string `toml:"known_hosts_file" json:"known_hosts_file"`
	// CommandTemplate is the remote command. Available variables: {{interface}}.
	CommandTemplate string `toml:"command_template" json:"command_template" validate:"required,template_has_interface"`
}

// Default returns a configuration usable without any external input.
func Default() Config {
	return Config{
		Host:            "192.168.1.1",
		Port:            22,
		Username:        "root",
		Interface:       "wan",
		Transport:       TransportExec,
		SSHBinary:       "ssh",
		KnownHostsFile:  "~/.ssh/known_hosts",
		CommandTemplate: DefaultCommandTemplate,
	}
}

// Destination returns the ssh destination argument, "{username}@{host}".
func (c Config) Destination() string {
	return c.Username + "@" + c.Host
}

// Address returns host:port for dialing, bracketing IPv6 literals.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
