package openwrt

import "fmt"

// IPv4Address is one address assigned to the interface.
type IPv4Address struct {
	Address string `json:"address"`
	Mask    uint8  `json:"mask" validate:"max=32"`
}

// Route is one routing table entry netifd associates with the interface.
type Route struct {
	Target  string  `json:"target"`
	Mask    uint8   `json:"mask" validate:"max=32"`
	Nexthop string  `json:"nexthop"`
	Source  *string `json:"source,omitempty"`
}

// InterfaceStatus is the state of one netifd interface as reported by
// "ubus call network.interface.<name> status".
//
// Instances are only produced by ParseInterfaceStatus. Sequence fields are never
// nil after parsing, so an interface without routes has an empty Route slice.
type InterfaceStatus struct {
	Up         bool     `json:"up"`
	Pending    bool     `json:"pending"`
	Available  bool     `json:"available"`
	Autostart  bool     `json:"autostart"`
	Dynamic    bool     `json:"dynamic"`
	Uptime     uint64   `json:"uptime"`
	L3Device   *string  `json:"l3_device,omitempty"`
	Proto      *string  `json:"proto,omitempty"`
	Updated    []string `json:"updated"`
	Metric     int32    `json:"metric"`
	DNSMetric  int32    `json:"dns_metric"`
	Delegation bool     `json:"delegation"`

	IPv4Address          []IPv4Address `json:"ipv4-address" validate:"dive"`
	IPv6Address          []string      `json:"ipv6-address"`
	IPv6Prefix           []string      `json:"ipv6-prefix"`
	IPv6PrefixAssignment []string      `json:"ipv6-prefix-assignment"`
	Route                []Route       `json:"route" validate:"dive"`
	DNSServer            []string      `json:"dns-server"`
	DNSSearch            []string      `json:"dns-search"`
	Neighbors            []string      `json:"neighbors"`

	// Inactive carries the addresses and routes netifd keeps for a down interface.
	Inactive *Value `json:"inactive,omitempty"`
	// Data holds protocol specific fields that are not modeled.
	Data Value `json:"data"`
}

// IsConnected reports whether the interface is both up and available.
func (s *InterfaceStatus) IsConnected() bool {
	return s.Up && s.Available
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FormatUptime renders Uptime starting from the largest non-zero unit,
// e.g. "1d 1h 1m 1s", "1h 0m 5s", "1m 5s" or "0s".
func (s *InterfaceStatus) FormatUptime() string {
	days := s.Uptime / secondsPerDay
	hours := (s.Uptime % secondsPerDay) / secondsPerHour
	minutes := (s.Uptime % secondsPerHour) / secondsPerMinute
	seconds := s.Uptime % secondsPerMinute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// normalize replaces nil sequences with empty ones.
func (s *InterfaceStatus) normalize() {
	s.Updated = emptyIfNil(s.Updated)
	s.IPv4Address = emptyIfNil(s.IPv4Address)
	s.IPv6Address = emptyIfNil(s.IPv6Address)
	s.IPv6Prefix = emptyIfNil(s.IPv6Prefix)
	s.IPv6PrefixAssignment = emptyIfNil(s.IPv6PrefixAssignment)
	s.Route = emptyIfNil(s.Route)
	s.DNSServer = emptyIfNil(s.DNSServer)
	s.DNSSearch = emptyIfNil(s.DNSSearch)
	s.Neighbors = emptyIfNil(s.Neighbors)
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
