package portfolio

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/sarmadgardezi/portfolio/baseurl"
	"github.com/sarmadgardezi/portfolio/seo"
	"github.com/sarmadgardezi/portfolio/theme"
	"github.com/sarmadgardezi/portfolio/views"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	a := New(SiteConfig{
		URL:           "https://example.com",
		SessionSecret: "test-secret-test-secret-test-secret",
		SitemapPaths:  []string{"/", "/about/", "about"},
	})
	require.NoError(t, a.Init())
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func serve(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestHomeServesShell(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))

	doc := parseHTML(t, rec.Body.String())
	require.Equal(t, "https://example.com", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "https://example.com/default-og-image.png", doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	require.Equal(t, 0, doc.Find("[data-logo-slot] svg path").Length())
	require.NotEmpty(t, doc.Find(`input[name="_csrf"]`).AttrOr("value", ""))
}

func TestLogoPartialHydration(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/logo/?link=1", nil)
	rec := serve(a, req)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	require.Equal(t, 0, doc.Find("svg path").Length())
	require.Equal(t, 0, doc.Find("a").Length())

	req = httptest.NewRequest(http.MethodGet, "/logo/?link=1", nil)
	req.Header.Set(MountedHeader, "true")
	rec = serve(a, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	require.Contains(t, rec.Header().Values("Vary"), MountedHeader)

	doc = parseHTML(t, rec.Body.String())
	require.Equal(t, "/", doc.Find("a.logo").AttrOr("href", ""))
	require.Equal(t, theme.Light.Primary900, doc.Find("svg path").AttrOr("fill", ""))
	require.Equal(t, theme.Light.Primary500, doc.Find("svg circle").AttrOr("fill", ""))
}

func TestLogoPartialThemeHintAndOverrides(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/logo/?theme=dark&circle=%23ff0000", nil)
	req.Header.Set(MountedHeader, "true")
	rec := serve(a, req)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parseHTML(t, rec.Body.String())
	require.Equal(t, 0, doc.Find("a").Length())
	require.Equal(t, theme.Dark.Primary900, doc.Find("svg path").AttrOr("fill", ""))
	require.Equal(t, "#ff0000", doc.Find("svg circle").AttrOr("fill", ""))
}

func TestLogoPartialRejectsBadColor(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/logo/?text=red%22%3E", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// storeTheme runs the toggle form flow and returns the preferences cookie.
func storeTheme(t *testing.T, a *App, name string) *http.Cookie {
	t.Helper()

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	token := parseHTML(t, rec.Body.String()).Find(`input[name="_csrf"]`).AttrOr("value", "")
	require.NotEmpty(t, token)

	form := url.Values{"theme": {name}, "_csrf": {token}}
	req := httptest.NewRequest(http.MethodPost, "/theme/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec = serve(a, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionName {
			return ck
		}
	}
	t.Fatalf("no %s cookie after POST /theme/", sessionName)
	return nil
}

func TestThemePreferenceFlow(t *testing.T) {
	a := newTestApp(t)
	prefs := storeTheme(t, a, "dark")

	req := httptest.NewRequest(http.MethodGet, "/logo/", nil)
	req.Header.Set(MountedHeader, "true")
	req.AddCookie(prefs)
	rec := serve(a, req)
	require.Equal(t, theme.Dark.Primary900, parseHTML(t, rec.Body.String()).Find("svg path").AttrOr("fill", ""))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(prefs)
	rec = serve(a, req)
	require.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
	require.Equal(t, "dark", parseHTML(t, rec.Body.String()).Find("html").AttrOr("data-theme", ""))
}

func TestThemeRequiresCSRF(t *testing.T) {
	a := newTestApp(t)

	form := url.Values{"theme": {"dark"}}
	req := httptest.NewRequest(http.MethodPost, "/theme/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(a, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogoSVG(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/logo.svg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "<svg "))
}

func TestLogoSVGIgnoresSessionTheme(t *testing.T) {
	a := newTestApp(t)
	prefs := storeTheme(t, a, "dark")

	req := httptest.NewRequest(http.MethodGet, "/logo.svg", nil)
	req.AddCookie(prefs)
	rec := serve(a, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	require.Contains(t, rec.Body.String(), `fill="`+theme.Light.Primary900+`"`)
	require.NotContains(t, rec.Body.String(), theme.Dark.Primary900)

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/logo.svg?theme=dark", nil))
	require.Contains(t, rec.Body.String(), `fill="`+theme.Dark.Primary900+`"`)
}

func TestHeadRequests(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/", "/logo/"} {
		rec := serve(a, httptest.NewRequest(http.MethodHead, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType), path)
		require.Zero(t, rec.Body.Len(), path)
	}
}

func TestDefaultMetadataFromResolvedBaseURL(t *testing.T) {
	a := New(SiteConfig{SessionSecret: "test-secret-test-secret-test-secret"})
	require.NoError(t, a.Init())
	t.Cleanup(func() { _ = a.Close() })

	base := baseurl.Resolve()
	require.Equal(t, base, a.Config.URL)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec.Body.String())
	require.Equal(t, base, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, base, doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
	require.Equal(t, base+seo.DefaultImagePath, doc.Find(`meta[property="og:image"]`).AttrOr("content", ""))
}

func TestOGImage(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/default-og-image.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 1200, img.Bounds().Dx())
	require.Equal(t, 630, img.Bounds().Dy())
}

func TestSitemapAndRobots(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "<loc>https://example.com/</loc>")
	require.Contains(t, body, "<loc>https://example.com/about/</loc>")
	require.Equal(t, 2, strings.Count(body, "<loc>"))

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestNotFoundRendersPage(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/missing/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Page not found")
}

func TestHydrateScriptServed(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/public/hydrate.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), MountedHeader)
}

func TestInitRequiresSecret(t *testing.T) {
	a := New(SiteConfig{URL: "https://example.com"})
	require.Error(t, a.Init())
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", nil, "https://example.com/"},
		{"https://example.com", []string{"about"}, "https://example.com/about/"},
		{"https://example.com/sub", []string{"a", "b"}, "https://example.com/sub/a/b/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestColorOverride(t *testing.T) {
	c, err := colorOverride("", "")
	require.NoError(t, err)
	require.Nil(t, c)

	c, err = colorOverride("#fff", "")
	require.NoError(t, err)
	require.Equal(t, "#fff", c.Text)
	require.Empty(t, c.Circle)

	_, err = colorOverride("", "blue")
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	custom := func(p views.Page) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "custom home "+string(p.Theme))
			return err
		})
	}
	a := New(SiteConfig{URL: "https://example.com", SessionSecret: "secret"},
		WithViews(ViewFuncs{Home: custom}),
		WithCustomRoutes(func(a *App) {
			a.Echo.GET("/ping/", func(c echo.Context) error {
				return c.String(http.StatusOK, "pong")
			})
		}),
	)
	require.NoError(t, a.Init())
	t.Cleanup(func() { _ = a.Close() })

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "custom home light", rec.Body.String())

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/ping/", nil))
	require.Equal(t, "pong", rec.Body.String())

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/nope/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Page not found")
}
