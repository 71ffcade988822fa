package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Home is the landing page.
func Home(p Page) templ.Component {
	return Layout(p, section(func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="intro"><h1>Hi, I'm `)
		buf.WriteString(html.EscapeString(displayName()))
		buf.WriteString(`</h1>`)
		if p.Meta.Description != "" {
			buf.WriteString(`<p>`)
			buf.WriteString(html.EscapeString(p.Meta.Description))
			buf.WriteString(`</p>`)
		}
		buf.WriteString(`</section>`)
	}))
}

// NotFound is rendered for unknown routes.
func NotFound(p Page) templ.Component {
	return Layout(p, section(func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error"><h1>Page not found</h1>`)
		buf.WriteString(`<p>The page you are looking for does not exist.</p>`)
		buf.WriteString(`<p><a href="/">Back to the home page</a></p></section>`)
	}))
}

// ServerError is rendered when a handler fails.
func ServerError(p Page) templ.Component {
	return Layout(p, section(func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error"><h1>Something went wrong</h1>`)
		buf.WriteString(`<p>Please try again in a moment.</p></section>`)
	}))
}

func section(write func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		write(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
