// Package extract pulls structural and SEO facts out of a parsed page.
// Every function is a pure read over the document.
package extract

import (
	"net/url"
	"strings"
)

// resolve returns the absolute form of ref against base together with the
// URL used to classify it. http and https references are returned exactly
// as written. The error is non-nil only when ref cannot be parsed even
// after repairing stray percent signs; ref is then returned unchanged.
func resolve(ref string, base *url.URL) (string, *url.URL, error) {
	parsed, err := parseRef(ref)
	if err != nil {
		return ref, nil, err
	}
	if hasHTTPScheme(ref) {
		return ref, parsed, nil
	}
	resolved := base.ResolveReference(parsed)
	return resolved.String(), resolved, nil
}

// resolveURL resolves a potentially relative reference against base using
// RFC 3986 reference resolution. Unparsable references are returned as-is.
func resolveURL(ref string, base *url.URL) string {
	resolved, _, _ := resolve(ref, base)
	return resolved
}

// parseRef parses ref, retrying with stray "%" signs escaped as "%25".
// Browsers accept references like "/sale-50%"; url.Parse does not.
func parseRef(ref string) (*url.URL, error) {
	parsed, err := url.Parse(ref)
	if err == nil {
		return parsed, nil
	}
	escaped := escapeStrayPercent(ref)
	if escaped == ref {
		return nil, err
	}
	return url.Parse(escaped)
}

// escapeStrayPercent escapes every "%" not followed by two hex digits.
func escapeStrayPercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// hasHTTPScheme reports whether ref starts with http:// or https://.
func hasHTTPScheme(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// isAbsoluteRef reports whether ref already names a scheme and host, or is
// protocol-relative.
func isAbsoluteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//")
}

// authority returns the network location of u: userinfo, host and port.
func authority(u *url.URL) string {
	if u.User != nil {
		return u.User.String() + "@" + u.Host
	}
	return u.Host
}
