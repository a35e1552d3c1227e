package config

import (
	"errors"
	"net"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/miekg/dns"
	"golang.org/x/sys/unix"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/utils"
)

var (
	ifnameRegexp    = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	loginNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("hostname_or_ip", validateHostnameOrIP); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("login_name", validateLoginName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("ifname", validateIfname); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("readable_file", validateReadableFile); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("template_has_interface", validateTemplateHasInterface); err != nil {
		panic(err)
	}

	// Report fields by their TOML key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if err := validate.Struct(c); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err)...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

// Custom validator: IPv4/IPv6 literal or a DNS host name. Leading '-' is rejected
// because the host ends up in an ssh argument.
func validateHostnameOrIP(fl validator.FieldLevel) bool {
	host := fl.Field().String()
	if host == "" || strings.HasPrefix(host, "-") || strings.ContainsAny(host, " \t\r\n@") {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	_, ok := dns.IsDomainName(host)
	return ok
}

// Custom validator: remote login name
func validateLoginName(fl validator.FieldLevel) bool {
	return loginNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: netifd interface name, interpolated into the remote command
func validateIfname(fl validator.FieldLevel) bool {
	return ifnameRegexp.MatchString(fl.Field().String())
}

// Custom validator: file exists and can be read by the current user
func validateReadableFile(fl validator.FieldLevel) bool {
	path := utils.ExpandHome(fl.Field().String())
	return unix.Access(path, unix.R_OK) == nil
}

// Custom validator: command template references the interface variable
func validateTemplateHasInterface(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), "{{"+InterfaceTemplateTag+"}}")
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: e.Field(),
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
