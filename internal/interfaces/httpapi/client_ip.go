package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// clientIP picks the first parseable address from proxy headers, falling
// back to the socket peer.
func clientIP(r *http.Request) string {
	for _, candidate := range []string{
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	} {
		if ip := parseIP(candidate); ip != "" {
			return ip
		}
	}
	return ""
}

func parseIP(raw string) string {
	value, _, _ := strings.Cut(strings.TrimSpace(raw), ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
