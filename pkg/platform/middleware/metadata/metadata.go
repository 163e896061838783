package metadata

import (
	"fmt"
	"net/http"
	"net/netip"
	"slices"
	"strings"

	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/requestcontext"
)

// MaxXFFHeaderLength caps the X-Forwarded-For value we are willing to parse.
const MaxXFFHeaderLength = 500

type Config struct {
	// TrustedProxies may set X-Forwarded-For and X-Real-IP. When empty the
	// connection address is always used.
	TrustedProxies []netip.Prefix
}

// ParseTrustedProxies turns configured CIDR strings into prefixes.
// A bare address is accepted as a single-host prefix.
func ParseTrustedProxies(cidrs []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, raw := range cidrs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "/") {
			addr, err := netip.ParseAddr(raw)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("invalid trusted proxy %q", raw))
			}
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("invalid trusted proxy %q", raw))
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}

// Middleware stores client metadata in the request context.
type Middleware struct {
	config *Config
}

func NewMiddleware(cfg *Config) *Middleware {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Middleware{config: cfg}
}

// Handler stores the client IP and User-Agent in the context. The login
// lockout keys on the IP and the session records a device label from the
// User-Agent.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), m.extractClientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractClientIP only honours forwarding headers set by a trusted proxy.
func (m *Middleware) extractClientIP(r *http.Request) string {
	remote, ok := parseRemoteAddr(r.RemoteAddr)
	if !ok {
		return "unknown"
	}
	if !m.isTrustedProxy(remote) {
		return remote.String()
	}
	if client, ok := forwardedClient(r.Header); ok {
		return client.String()
	}
	return remote.String()
}

func (m *Middleware) isTrustedProxy(addr netip.Addr) bool {
	return slices.ContainsFunc(m.config.TrustedProxies, func(p netip.Prefix) bool {
		return p.Contains(addr)
	})
}

// forwardedClient returns the left-most X-Forwarded-For address, falling back
// to X-Real-IP.
func forwardedClient(h http.Header) (netip.Addr, bool) {
	value := h.Get("X-Forwarded-For")
	if value == "" {
		value = h.Get("X-Real-IP")
	}
	if value == "" || len(value) > MaxXFFHeaderLength {
		return netip.Addr{}, false
	}
	first, _, _ := strings.Cut(value, ",")
	addr, err := netip.ParseAddr(strings.TrimSpace(first))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func parseRemoteAddr(remoteAddr string) (netip.Addr, bool) {
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(remoteAddr)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
