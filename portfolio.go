// Package portfolio serves a personal portfolio site built with Go, Echo, and templ.
// It renders the theme-aware brand logo, the search and social metadata of
// every page, and the default Open Graph card.
//
// Page templates are replaceable through ViewFuncs; the handlers resolve the
// visitor's theme and hydration state and pass them down explicitly.
package portfolio

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/sarmadgardezi/portfolio/baseurl"
	"github.com/sarmadgardezi/portfolio/ogimage"
	"github.com/sarmadgardezi/portfolio/seo"
	"github.com/sarmadgardezi/portfolio/theme"
)

// App is the central portfolio application. It wires together the
// configuration, middleware, handlers, and page templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Views  ViewFuncs

	themeLimiter *RateLimiter
	defaultMeta  seo.Metadata
	ogImage      []byte
	customRoutes []func(*App)
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  defaultViews(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init prepares everything Start needs without listening: the default
// metadata, the Open Graph card, middleware and routes.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("portfolio: SessionSecret is required")
	}
	if err := baseurl.Validate(a.Config.URL); err != nil {
		a.Echo.Logger.Warnf("portfolio: %v; absolute URLs will be malformed", err)
	}

	// Built once here and read-only afterwards.
	if a.Config.URL == baseurl.Resolve() {
		a.defaultMeta = seo.Default()
	} else {
		a.defaultMeta = seo.DefaultFor(a.Config.URL)
	}
	img, err := ogimage.Render(theme.MustLookup(theme.Name(a.Config.DefaultTheme)))
	if err != nil {
		return fmt.Errorf("portfolio: render og image: %w", err)
	}
	png, err := ogimage.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}
	a.ogImage = png

	a.themeLimiter = NewRateLimiter(a.Config.ThemeRequests, a.Config.ThemeWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/hydrate.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/logo.svg", a.handleLogoSVG)
	e.GET(seo.DefaultImagePath, a.handleOGImage)

	pageMethods := []string{http.MethodGet, http.MethodHead}
	e.Match(pageMethods, "/", a.handleHome)
	e.Match(pageMethods, "/logo/", a.handleLogo)
	e.POST("/theme/", a.handleTheme)
}

// Close releases background resources.
func (a *App) Close() error {
	if a.themeLimiter != nil {
		a.themeLimiter.Stop()
	}
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
