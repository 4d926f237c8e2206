// Package device turns a User-Agent header into a human readable device name
// for audit events.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent returns a display name such as "Chrome on macOS".
func ParseUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return "Unknown Device"
	}
	parsed := useragent.New(ua)
	browser, _ := parsed.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	os := parsed.OSInfo().Name
	if parsed.Mobile() {
		if p := parsed.Platform(); p != "" {
			os = p
		}
	}
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + os)
}
