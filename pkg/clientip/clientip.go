package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Headers are checked in this order before falling back to RemoteAddr.
var forwardHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client's IP address. Proxy headers win over the TCP
// peer address; the first valid entry of X-Forwarded-For is used.
// Returns an empty string when nothing parses.
func GetIP(r *http.Request) string {
	for _, h := range forwardHeaders {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
