package openwrt

import (
	"fmt"
	"io"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/openwrt-ifstatus/src/internal/config"
)

// BuildRemoteCommand renders cfg.CommandTemplate for cfg.Interface, producing
// "ubus call network.interface.wan status" with the default configuration.
// Unknown template variables are an error.
func BuildRemoteCommand(cfg config.Config) (string, error) {
	t, err := fasttemplate.NewTemplate(cfg.CommandTemplate, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("invalid command template %q: %w", cfg.CommandTemplate, err)
	}

	return t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		switch tag {
		case config.InterfaceTemplateTag:
			return w.Write([]byte(cfg.Interface))
		default:
			return 0, fmt.Errorf("unknown command template variable {{%s}}", tag)
		}
	})
}
