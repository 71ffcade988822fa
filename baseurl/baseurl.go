// Package baseurl resolves the site's canonical base URL from the environment.
package baseurl

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Fallback is used when no environment variable names the site.
const Fallback = "http://localhost:3000"

// ErrInvalid reports a base URL that cannot prefix absolute page URLs.
var ErrInvalid = errors.New("baseurl: invalid base URL")

// Resolve returns the base URL without a trailing slash. SITE_URL wins; a bare
// deployment host from VERCEL_URL or DEPLOY_URL is served over https.
func Resolve() string {
	return resolve(os.Getenv)
}

func resolve(getenv func(string) string) string {
	if v := strings.TrimSpace(getenv("SITE_URL")); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	for _, key := range []string{"VERCEL_URL", "DEPLOY_URL"} {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			continue
		}
		v = strings.TrimSuffix(v, "/")
		if strings.Contains(v, "://") {
			return v
		}
		return "https://" + v
	}
	return Fallback
}

// Validate checks that u is an absolute http(s) URL with a host.
func Validate(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch parsed.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("%w: scheme %q in %q", ErrInvalid, parsed.Scheme, u)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalid, u)
	}
	return nil
}
