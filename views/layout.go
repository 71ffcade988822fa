package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/sarmadgardezi/portfolio/seo"
)

// Layout wraps body in the site document: metadata head, header with the
// logo slot and theme toggle, and the hydration script.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"`)
		attr(&buf, "data-theme", string(p.Theme))
		buf.WriteString(`><head><meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		if err := seo.Head(p.Meta).Render(ctx, &buf); err != nil {
			return err
		}
		writeJSONLD(&buf, seo.WebsiteJSONLD(p.BaseURL))
		writeJSONLD(&buf, seo.PersonJSONLD(p.BaseURL))
		buf.WriteString(`<link rel="icon" href="/logo.svg" type="image/svg+xml"/>`)
		buf.WriteString(`<script src="/public/hydrate.js" defer></script>`)
		buf.WriteString(`</head><body><header class="site-header"><div data-logo-slot`)
		attr(&buf, "data-logo-src", p.LogoSrc)
		buf.WriteString(`>`)
		if p.Logo != nil {
			if err := p.Logo.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`<noscript><a href="/" class="logo">`)
		buf.WriteString(html.EscapeString(displayName()))
		buf.WriteString(`</a></noscript></div>`)
		writeThemeToggle(&buf, p.Theme, p.CSRFToken)
		buf.WriteString(`</header><main>`)
		if body != nil {
			if err := body.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</main></body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
