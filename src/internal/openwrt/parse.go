package openwrt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	ierrors "github.com/maksimkurb/openwrt-ifstatus/src/internal/errors"
)

var (
	statusRequiredFields = []string{
		"up", "pending", "available", "autostart", "dynamic",
		"uptime", "metric", "dns_metric", "delegation", "data",
	}
	ipv4AddressRequiredFields = []string{"address", "mask"}
	routeRequiredFields       = []string{"target", "mask", "nexthop"}

	// nullableFields may be present with a JSON null value.
	nullableFields = map[string]bool{"data": true}

	statusWireNames      = wireNames(reflect.TypeOf(InterfaceStatus{}))
	ipv4AddressWireNames = wireNames(reflect.TypeOf(IPv4Address{}))
	routeWireNames       = wireNames(reflect.TypeOf(Route{}))

	// stringListFields are the []string members of InterfaceStatus, whose
	// elements must not be null.
	stringListFields = stringSliceNames(reflect.TypeOf(InterfaceStatus{}))
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their wire name
	validate.RegisterTagNameFunc(jsonName)
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func wireNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			names[name] = true
		}
	}
	return names
}

func stringSliceNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if fld.Type == reflect.TypeOf([]string(nil)) {
			names = append(names, jsonName(fld))
		}
	}
	return names
}

// ParseInterfaceStatus parses the JSON emitted by "ubus call network.interface.<name> status".
//
// Every failure is returned as an *errors.Error with code PARSE_ERROR wrapping
// the underlying diagnostic.
func ParseInterfaceStatus(text string) (*InterfaceStatus, error) {
	var status InterfaceStatus
	if err := json.Unmarshal([]byte(text), &status); err != nil {
		return nil, ierrors.NewParseError("invalid interface status", err)
	}

	if err := validate.Struct(&status); err != nil {
		return nil, ierrors.NewParseError("invalid interface status", describeValidationError(err))
	}

	return &status, nil
}

// UnmarshalJSON implements json.Unmarshaler, requiring every non-optional field.
func (s *InterfaceStatus) UnmarshalJSON(data []byte) error {
	fields, err := requireFields(data, statusRequiredFields, statusWireNames)
	if err != nil {
		return err
	}
	for _, name := range stringListFields {
		if err := rejectNullElements(fields[name]); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}

	type plain InterfaceStatus
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*s = InterfaceStatus(decoded)
	s.normalize()

	// Keep an explicit "inactive": null so it survives re-serialization
	if raw, ok := fields["inactive"]; ok && isNull(raw) {
		s.Inactive = &Value{}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, requiring address and mask.
func (a *IPv4Address) UnmarshalJSON(data []byte) error {
	if _, err := requireFields(data, ipv4AddressRequiredFields, ipv4AddressWireNames); err != nil {
		return fmt.Errorf("ipv4-address: %w", err)
	}

	type plain IPv4Address
	return json.Unmarshal(data, (*plain)(a))
}

// UnmarshalJSON implements json.Unmarshaler, requiring target, mask and nexthop.
func (r *Route) UnmarshalJSON(data []byte) error {
	if _, err := requireFields(data, routeRequiredFields, routeWireNames); err != nil {
		return fmt.Errorf("route: %w", err)
	}

	type plain Route
	return json.Unmarshal(data, (*plain)(r))
}

// requireFields checks that data is a JSON object containing every name in
// required, with a non-null value unless the name is listed in nullableFields.
// Keys must be unique, and a key that matches one of known only when case is
// ignored is rejected, since encoding/json would otherwise assign it to that
// field. It returns the raw object members.
func requireFields(data []byte, required []string, known map[string]bool) (map[string]json.RawMessage, error) {
	keys, err := objectKeys(data)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			return nil, fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = true

		if known[key] {
			continue
		}
		for name := range known {
			if strings.EqualFold(name, key) {
				return nil, fmt.Errorf("unknown field %q, expected %q", key, name)
			}
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	for _, name := range required {
		raw, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("missing field %q", name)
		}
		if !nullableFields[name] && isNull(raw) {
			return nil, fmt.Errorf("field %q must not be null", name)
		}
	}
	return fields, nil
}

// objectKeys returns the member names of the JSON object in data, in order.
func objectKeys(data []byte) ([]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errors.New("expected an object, got null")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	var keys []string
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		keys = append(keys, key)

		var member json.RawMessage
		if err := decoder.Decode(&member); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// rejectNullElements fails if raw is an array holding a null element.
// An absent or null array is accepted.
func rejectNullElements(raw json.RawMessage) error {
	if raw == nil {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	for i, item := range items {
		if isNull(item) {
			return fmt.Errorf("element %d must not be null", i)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func describeValidationError(err error) error {
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) || len(validatorErrs) == 0 {
		return err
	}

	messages := make([]string, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		// Drop the leading struct name from "InterfaceStatus.route[0].mask"
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch e.Tag() {
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be <= %s, got %v", field, e.Param(), e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
