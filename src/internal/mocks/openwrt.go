package mocks

import (
	"context"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/openwrt"
)

// MockStatusFetcher is a mock implementation of domain.StatusFetcher.
//
// If FetchFunc is nil, a connected "wan" status with one address is returned.
type MockStatusFetcher struct {
	FetchFunc func(ctx context.Context) (*openwrt.InterfaceStatus, error)

	Calls int
}

// FetchInterfaceStatus delegates to FetchFunc.
func (m *MockStatusFetcher) FetchInterfaceStatus(ctx context.Context) (*openwrt.InterfaceStatus, error) {
	m.Calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return DefaultInterfaceStatus(), nil
}

// DefaultInterfaceStatus returns the status the mock reports by default.
func DefaultInterfaceStatus() *openwrt.InterfaceStatus {
	device := "eth1"
	proto := "dhcp"
	return &openwrt.InterfaceStatus{
		Up:                   true,
		Available:            true,
		Autostart:            true,
		Uptime:               3661,
		L3Device:             &device,
		Proto:                &proto,
		Updated:              []string{"addresses", "routes"},
		IPv4Address:          []openwrt.IPv4Address{{Address: "203.0.113.10", Mask: 24}},
		IPv6Address:          []string{},
		IPv6Prefix:           []string{},
		IPv6PrefixAssignment: []string{},
		Route:                []openwrt.Route{{Target: "0.0.0.0", Mask: 0, Nexthop: "203.0.113.1"}},
		DNSServer:            []string{"203.0.113.1"},
		DNSSearch:            []string{},
		Neighbors:            []string{},
	}
}
