package rules

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// Email holds for bare email addresses ("a@example.com", not "A <a@example.com>")
// whose domain has at least one dot and no empty labels.
func Email() Rule[string] {
	return func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}

		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return false
		}

		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}

		if !strings.Contains(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	}
}

// URL holds for absolute URLs with both a scheme and a host.
func URL() Rule[string] {
	return func(s string) bool {
		u, ok := parseAbsoluteURL(s)
		return ok && u.Host != ""
	}
}

// URLWithScheme holds for absolute URLs whose scheme is one of schemes.
func URLWithScheme(schemes ...string) Rule[string] {
	return func(s string) bool {
		u, ok := parseAbsoluteURL(s)
		return ok && u.Host != "" && slices.Contains(schemes, u.Scheme)
	}
}

func parseAbsoluteURL(s string) (*url.URL, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
}
