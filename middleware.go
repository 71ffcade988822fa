package portfolio

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sarmadgardezi/portfolio/theme"
)

const (
	sessionName = "prefs"
	themeKey    = "theme"

	// MountedHeader is set by hydrate.js on requests made after the page
	// has mounted in the browser.
	MountedHeader = "X-Client-Mounted"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/default-og-image.png"
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'; form-action 'self'; frame-ancestors 'none'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:  middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup: "header:X-CSRF-Token,form:_csrf",
		CookieName:  "_csrf",
		CookiePath:  "/",
		CookieSameSite: func() http.SameSite {
			return http.SameSiteLaxMode
		}(),
		CookieSecure: a.Config.CookieSecure,
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public") || isFile(path)
		},
	}))

	e.Use(a.cacheControlMiddleware)
}

// isFile reports whether path names a non-HTML resource served without a
// trailing slash.
func isFile(path string) bool {
	switch path {
	case "/logo.svg", "/default-og-image.png", "/sitemap.xml", "/robots.txt":
		return true
	}
	return false
}

func (a *App) cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	assetAge := "public, max-age=" + strconv.Itoa(int(a.Config.AssetMaxAge.Seconds()))
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/public/"), isFile(path):
			c.Response().Header().Set("Cache-Control", assetAge)
		default:
			// Pages carry the visitor's CSRF token and theme.
			c.Response().Header().Set("Cache-Control", "private, no-cache")
		}
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// ThemeFor resolves the palette for the current request: the stored
// preference, then the ?theme= hint, then the configured default.
func (a *App) ThemeFor(c echo.Context) theme.Name {
	if sess, err := session.Get(sessionName, c); err == nil {
		if v, ok := sess.Values[themeKey].(string); ok && theme.IsKnown(v) {
			return theme.ParseName(v)
		}
	}
	if v := c.QueryParam("theme"); theme.IsKnown(v) {
		return theme.ParseName(v)
	}
	return theme.Name(a.Config.DefaultTheme)
}

func setThemePreference(c echo.Context, name theme.Name) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[themeKey] = string(name)
	return sess.Save(c.Request(), c.Response())
}

// ClientMounted reports whether the request was made by the hydrated page.
func ClientMounted(c echo.Context) bool {
	return c.Request().Header.Get(MountedHeader) == "true"
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
