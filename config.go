package portfolio

import (
	"time"

	"github.com/sarmadgardezi/portfolio/baseurl"
	"github.com/sarmadgardezi/portfolio/theme"
)

// SiteConfig holds all configuration for the portfolio server.
type SiteConfig struct {
	URL  string // Canonical base URL (default: baseurl.Resolve())
	Addr string // Listen address (default ":3000")

	SessionSecret string // Required: signs the preferences cookie
	CookieSecure  bool   // Set true for HTTPS

	DefaultTheme string        // Palette before the visitor picks one (default "light")
	SitemapPaths []string      // Paths listed in sitemap.xml (default ["/"])
	AssetMaxAge  time.Duration // Cache-Control max-age for logo.svg, the OG image and /public (default 24h)

	ThemeRequests int           // POST /theme/ requests allowed per IP and window (default 20)
	ThemeWindow   time.Duration // (default 1min)
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = baseurl.Resolve()
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	c.DefaultTheme = string(theme.ParseName(c.DefaultTheme))
	if len(c.SitemapPaths) == 0 {
		c.SitemapPaths = []string{"/"}
	}
	if c.AssetMaxAge == 0 {
		c.AssetMaxAge = 24 * time.Hour
	}
	if c.ThemeRequests == 0 {
		c.ThemeRequests = 20
	}
	if c.ThemeWindow == 0 {
		c.ThemeWindow = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithViews replaces the built-in page templates. Nil fields keep the default.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		if v.Home != nil {
			a.Views.Home = v.Home
		}
		if v.NotFound != nil {
			a.Views.NotFound = v.NotFound
		}
		if v.ServerError != nil {
			a.Views.ServerError = v.ServerError
		}
	}
}
