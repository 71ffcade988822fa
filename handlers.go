package portfolio

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarmadgardezi/portfolio/logo"
	"github.com/sarmadgardezi/portfolio/ogimage"
	"github.com/sarmadgardezi/portfolio/theme"
	"github.com/sarmadgardezi/portfolio/views"
)

// logoPartial is the fragment hydrate.js fetches to fill the header slot.
const logoPartial = "/logo/?link=1"

func (a *App) page(c echo.Context) views.Page {
	name := a.ThemeFor(c)
	return views.Page{
		Meta:      a.defaultMeta,
		BaseURL:   a.Config.URL,
		Theme:     name,
		Logo:      logo.Render(ClientMounted(c), theme.MustLookup(name), logo.Props{AsLink: true}),
		LogoSrc:   logoPartial,
		CSRFToken: CsrfToken(c),
	}
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.page(c)))
}

func (a *App) handleLogo(c echo.Context) error {
	colors, err := colorOverride(c.QueryParam("text"), c.QueryParam("circle"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name := a.ThemeFor(c)
	props := logo.Props{Colors: colors, AsLink: c.QueryParam("link") == "1"}

	c.Response().Header().Add(echo.HeaderVary, MountedHeader)
	c.Response().Header().Add(echo.HeaderVary, "Cookie")
	return Render(c, logo.Render(ClientMounted(c), theme.MustLookup(name), props))
}

// handleLogoSVG serves the favicon. It is publicly cached, so only the URL
// selects the palette, never the session.
func (a *App) handleLogoSVG(c echo.Context) error {
	name := theme.Name(a.Config.DefaultTheme)
	if v := c.QueryParam("theme"); theme.IsKnown(v) {
		name = theme.ParseName(v)
	}
	svg := logo.SVG(theme.MustLookup(name), nil)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

func (a *App) handleTheme(c echo.Context) error {
	if !a.themeLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
	}
	v := c.FormValue("theme")
	if !theme.IsKnown(v) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown theme")
	}
	if err := setThemePreference(c, theme.ParseName(v)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleOGImage(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/png", a.ogImage)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + BuildURL(a.Config.URL) + "sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Config.SitemapPaths)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.page(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.page(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// colorOverride builds logo fill overrides from query values. Both empty
// means no override.
func colorOverride(text, circle string) (*logo.Colors, error) {
	if text == "" && circle == "" {
		return nil, nil
	}
	for _, v := range []string{text, circle} {
		if v == "" {
			continue
		}
		if _, err := ogimage.ParseHex(v); err != nil {
			return nil, err
		}
	}
	return &logo.Colors{Text: text, Circle: circle}, nil
}
