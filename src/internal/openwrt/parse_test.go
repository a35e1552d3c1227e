package openwrt

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
)

func loadFixture(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile("testdata/wan_status.json")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return string(data)
}

// fixtureWith decodes the fixture, applies modify and encodes it again.
func fixtureWith(t *testing.T, modify func(fields map[string]any)) string {
	t.Helper()

	var fields map[string]any
	if err := json.Unmarshal([]byte(loadFixture(t)), &fields); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	modify(fields)

	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("Failed to encode fixture: %v", err)
	}
	return string(data)
}

func assertParseError(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected parse error, got nil")
	}
	if !errors.Is(err, ierrors.New(ierrors.ErrCodeParse, "")) {
		t.Fatalf("Expected PARSE_ERROR, got: %v", err)
	}
}

func TestParseInterfaceStatus_Full(t *testing.T) {
	status, err := ParseInterfaceStatus(loadFixture(t))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !status.Up || status.Pending || !status.Available || !status.Autostart || status.Dynamic || !status.Delegation {
		t.Errorf("Unexpected flags: %+v", status)
	}
	if status.Uptime != 90061 {
		t.Errorf("Expected uptime 90061, got %d", status.Uptime)
	}
	if status.L3Device == nil || *status.L3Device != "eth1" {
		t.Errorf("Expected l3_device eth1, got %v", status.L3Device)
	}
	if status.Proto == nil || *status.Proto != "dhcp" {
		t.Errorf("Expected proto dhcp, got %v", status.Proto)
	}
	if !reflect.DeepEqual(status.Updated, []string{"addresses", "routes", "data"}) {
		t.Errorf("Unexpected updated: %v", status.Updated)
	}
	if !reflect.DeepEqual(status.IPv4Address, []IPv4Address{{Address: "203.0.113.10", Mask: 24}}) {
		t.Errorf("Unexpected ipv4-address: %+v", status.IPv4Address)
	}
	if !reflect.DeepEqual(status.IPv6Address, []string{"2001:db8::10/64"}) {
		t.Errorf("Unexpected ipv6-address: %v", status.IPv6Address)
	}
	if len(status.Route) != 1 {
		t.Fatalf("Expected 1 route, got %d", len(status.Route))
	}
	route := status.Route[0]
	if route.Target != "0.0.0.0" || route.Mask != 0 || route.Nexthop != "203.0.113.1" || route.Source == nil || *route.Source != "203.0.113.10/32" {
		t.Errorf("Unexpected route: %+v", route)
	}
	if !reflect.DeepEqual(status.DNSServer, []string{"203.0.113.1", "198.51.100.53"}) {
		t.Errorf("Unexpected dns-server: %v", status.DNSServer)
	}
	if !reflect.DeepEqual(status.DNSSearch, []string{"lan"}) {
		t.Errorf("Unexpected dns-search: %v", status.DNSSearch)
	}
	if status.Inactive == nil || status.Inactive.Kind() != KindObject {
		t.Errorf("Expected inactive object, got %v", status.Inactive)
	}
	if zone, ok := status.Data.Get("zone"); !ok {
		t.Error("Expected data.zone to be present")
	} else if s, _ := zone.Str(); s != "wan" {
		t.Errorf("Expected data.zone wan, got %v", zone)
	}
}

func TestParseInterfaceStatus_EmptyCollections(t *testing.T) {
	text := `{"up": false, "pending": false, "available": true, "autostart": true, "dynamic": false,
		"uptime": 0, "metric": 0, "dns_metric": 0, "delegation": true, "data": {}}`

	status, err := ParseInterfaceStatus(text)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sequences := map[string]int{
		"updated":                len(status.Updated),
		"ipv4-address":           len(status.IPv4Address),
		"ipv6-address":           len(status.IPv6Address),
		"ipv6-prefix":            len(status.IPv6Prefix),
		"ipv6-prefix-assignment": len(status.IPv6PrefixAssignment),
		"route":                  len(status.Route),
		"dns-server":             len(status.DNSServer),
		"dns-search":             len(status.DNSSearch),
		"neighbors":              len(status.Neighbors),
	}
	for name, n := range sequences {
		if n != 0 {
			t.Errorf("Expected empty %s, got %d items", name, n)
		}
	}
	if status.Route == nil || status.DNSServer == nil || status.IPv4Address == nil || status.Neighbors == nil {
		t.Error("Expected absent sequences to be empty, not nil")
	}
	if status.L3Device != nil || status.Proto != nil || status.Inactive != nil {
		t.Errorf("Expected optional fields to be absent, got %+v", status)
	}

	out, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), `"route":[]`) || !strings.Contains(string(out), `"dns-server":[]`) {
		t.Errorf("Expected empty sequences to serialize as [], got %s", out)
	}
}

func TestParseInterfaceStatus_NullCollections(t *testing.T) {
	text := fixtureWith(t, func(fields map[string]any) {
		fields["route"] = nil
		fields["dns-server"] = nil
	})

	status, err := ParseInterfaceStatus(text)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if status.Route == nil || len(status.Route) != 0 || status.DNSServer == nil {
		t.Errorf("Expected null sequences to become empty, got route=%v dns-server=%v", status.Route, status.DNSServer)
	}
}

func TestParseInterfaceStatus_MissingRequiredField(t *testing.T) {
	for _, field := range statusRequiredFields {
		t.Run(field, func(t *testing.T) {
			text := fixtureWith(t, func(fields map[string]any) {
				delete(fields, field)
			})

			status, err := ParseInterfaceStatus(text)
			assertParseError(t, err)
			if status != nil {
				t.Error("Expected no partial status on failure")
			}
			if !strings.Contains(err.Error(), field) {
				t.Errorf("Expected diagnostic to name %q, got: %v", field, err)
			}
		})
	}
}

func TestParseInterfaceStatus_NullRequiredField(t *testing.T) {
	text := fixtureWith(t, func(fields map[string]any) {
		fields["up"] = nil
	})

	_, err := ParseInterfaceStatus(text)
	assertParseError(t, err)
}

func TestParseInterfaceStatus_NullData(t *testing.T) {
	text := fixtureWith(t, func(fields map[string]any) {
		fields["data"] = nil
	})

	status, err := ParseInterfaceStatus(text)
	if err != nil {
		t.Fatalf("Expected null data to be accepted, got: %v", err)
	}
	if !status.Data.IsNull() {
		t.Errorf("Expected null data, got %v", status.Data)
	}
}

func TestParseInterfaceStatus_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		modify func(fields map[string]any)
	}{
		{name: "empty", text: ""},
		{name: "malformed", text: `{"up": true,`},
		{name: "not an object", text: `["up"]`},
		{name: "null", text: `null`},
		{name: "wrong flag type", modify: func(f map[string]any) { f["up"] = "yes" }},
		{name: "negative uptime", modify: func(f map[string]any) { f["uptime"] = -1 }},
		{name: "fractional metric", modify: func(f map[string]any) { f["metric"] = 1.5 }},
		{name: "address without mask", modify: func(f map[string]any) {
			f["ipv4-address"] = []any{map[string]any{"address": "203.0.113.10"}}
		}},
		{name: "address mask over 32", modify: func(f map[string]any) {
			f["ipv4-address"] = []any{map[string]any{"address": "203.0.113.10", "mask": 33}}
		}},
		{name: "route without nexthop", modify: func(f map[string]any) {
			f["route"] = []any{map[string]any{"target": "0.0.0.0", "mask": 0}}
		}},
		{name: "route mask over 32", modify: func(f map[string]any) {
			f["route"] = []any{map[string]any{"target": "0.0.0.0", "mask": 64, "nexthop": "203.0.113.1"}}
		}},
		{name: "ipv6 address object", modify: func(f map[string]any) {
			f["ipv6-address"] = []any{map[string]any{"address": "2001:db8::10", "mask": 64}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.text
			if tt.modify != nil {
				text = fixtureWith(t, tt.modify)
			}

			status, err := ParseInterfaceStatus(text)
			assertParseError(t, err)
			if status != nil {
				t.Error("Expected no partial status on failure")
			}
		})
	}
}

func TestParseInterfaceStatus_MaskDiagnostic(t *testing.T) {
	text := fixtureWith(t, func(f map[string]any) {
		f["route"] = []any{map[string]any{"target": "0.0.0.0", "mask": 40, "nexthop": "203.0.113.1"}}
	})

	_, err := ParseInterfaceStatus(text)
	assertParseError(t, err)
	if !strings.Contains(err.Error(), "route[0].mask must be <= 32") {
		t.Errorf("Expected wire field path in diagnostic, got: %v", err)
	}
}

func TestInterfaceStatus_RoundTrip(t *testing.T) {
	text := loadFixture(t)

	status, err := ParseInterfaceStatus(text)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	out, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var want, got map[string]any
	if err := json.Unmarshal([]byte(text), &want); err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch:\n got: %s\nwant: %s", out, text)
	}

	// Large integers in data must not go through float64
	if !strings.Contains(string(out), `"lease_id":18446744073709551615`) {
		t.Errorf("Expected exact lease_id in output, got %s", out)
	}

	reparsed, err := ParseInterfaceStatus(string(out))
	if err != nil {
		t.Fatalf("Failed to parse serialized status: %v", err)
	}
	if !reflect.DeepEqual(reparsed, status) {
		t.Errorf("Reparsed status differs:\n got: %+v\nwant: %+v", reparsed, status)
	}
}

func TestParseInterfaceStatus_NullListElement(t *testing.T) {
	if len(stringListFields) != 7 {
		t.Fatalf("Expected 7 string list fields, got %v", stringListFields)
	}

	for _, field := range stringListFields {
		t.Run(field, func(t *testing.T) {
			text := fixtureWith(t, func(fields map[string]any) {
				fields[field] = []any{"x", nil}
			})

			status, err := ParseInterfaceStatus(text)
			assertParseError(t, err)
			if status != nil {
				t.Error("Expected no partial status on failure")
			}
			if !strings.Contains(err.Error(), field) {
				t.Errorf("Expected diagnostic to name %q, got: %v", field, err)
			}
		})
	}
}

func TestParseInterfaceStatus_KeyCase(t *testing.T) {
	// appendMember adds a raw member to the end of the fixture object.
	appendMember := func(t *testing.T, member string) string {
		text := strings.TrimSpace(loadFixture(t))
		return strings.TrimSuffix(text, "}") + ", " + member + "}"
	}

	tests := []struct {
		name string
		text string
	}{
		{name: "case variant of up", text: appendMember(t, `"Up": false`)},
		{name: "case variant of dns_metric", text: appendMember(t, `"DNS_METRIC": 5`)},
		{name: "duplicate up", text: appendMember(t, `"up": false`)},
		{name: "case variant in route", text: fixtureWith(t, func(f map[string]any) {
			f["route"] = []any{map[string]any{"target": "0.0.0.0", "mask": 0, "nexthop": "203.0.113.1", "Mask": 8}}
		})},
		{name: "case variant in address", text: fixtureWith(t, func(f map[string]any) {
			f["ipv4-address"] = []any{map[string]any{"address": "203.0.113.10", "mask": 24, "ADDRESS": "10.0.0.1"}}
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseInterfaceStatus(tt.text)
			assertParseError(t, err)
			if status != nil {
				t.Errorf("Expected no status, got up=%t", status.Up)
			}
		})
	}
}

func TestParseInterfaceStatus_UnknownFieldsIgnored(t *testing.T) {
	text := fixtureWith(t, func(f map[string]any) {
		f["ip4table"] = "main"
	})

	if _, err := ParseInterfaceStatus(text); err != nil {
		t.Errorf("Expected unmodeled field to be ignored, got: %v", err)
	}
}

func TestParseInterfaceStatus_NullInactive(t *testing.T) {
	text := fixtureWith(t, func(f map[string]any) {
		f["inactive"] = nil
	})

	status, err := ParseInterfaceStatus(text)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if status.Inactive == nil || !status.Inactive.IsNull() {
		t.Fatalf("Expected present null inactive, got %v", status.Inactive)
	}

	out, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(out), `"inactive":null`) {
		t.Errorf("Expected inactive to be kept as null, got %s", out)
	}
}
