package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kaptinlin/jsonpointer"
)

// formatChecker is a pure predicate on a string instance.
type formatChecker func(value string) bool

func formatDateTime(value string) bool {
	_, err := time.Parse(time.RFC3339, value)
	return err == nil
}

func formatDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

func formatTime(value string) bool {
	_, err := time.Parse("15:04:05", value)
	if err == nil {
		return true
	}
	_, err = time.Parse("15:04:05Z07:00", value)
	return err == nil
}

func formatEmail(value string) bool {
	_, err := mail.ParseAddress(value)
	return err == nil && strings.Contains(value, "@")
}

func formatHostname(value string) bool {
	if value == "" || len(value) > 253 {
		return false
	}
	labels := strings.Split(value, ".")
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, c := range label {
			if !(c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
				return false
			}
		}
	}
	return true
}

func formatIPv4(value string) bool {
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil && strings.Count(value, ":") == 0
}

func formatIPv6(value string) bool {
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() == nil
}

// formatURI and formatURIReference are permissive: both check only that
// net/url can parse the value, and formatURI additionally requires an
// absolute URI (one with a scheme). No further RFC 3986 grammar is checked.
func formatURI(value string) bool {
	u, err := url.Parse(value)
	return err == nil && u.IsAbs()
}

func formatURIReference(value string) bool {
	_, err := url.Parse(value)
	return err == nil
}

// formatURITemplate accepts anything; no RFC 6570 template grammar is
// implemented, matching the traced original source's own permissiveness.
func formatURITemplate(value string) bool {
	return true
}

func formatJSONPointer(value string) bool {
	if value == "" {
		return true
	}
	_, err := jsonpointer.Parse(value)
	return err == nil
}

func formatRegex(value string) bool {
	_, err := regexp.Compile(value)
	return err == nil
}
