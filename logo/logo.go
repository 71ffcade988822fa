// Package logo renders the brand logo as inline SVG through templ.
//
// The renderer is a pure function of its inputs. Callers decide whether the
// client has finished hydrating and pass that in as the mounted flag; until
// then only an empty, fixed-size canvas is emitted so no theme-dependent
// colors reach the markup.
package logo

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/sarmadgardezi/portfolio/theme"
)

// HomeLabel is the accessible label of the link-wrapped logo.
const HomeLabel = "Go to home page"

// LinkClass is the styling hook on the link-wrapped logo.
const LinkClass = "logo"

// Colors overrides the theme fills. An empty field falls back to the theme.
type Colors struct {
	Text   string
	Circle string
}

// Props are the optional render inputs.
type Props struct {
	Colors *Colors
	AsLink bool
}

// Fills resolves the wordmark and accent fills for th and the optional
// override c.
func Fills(th theme.Colors, c *Colors) (text, circle string) {
	text, circle = th.Primary900, th.Primary500
	if c == nil {
		return text, circle
	}
	if c.Text != "" {
		text = c.Text
	}
	if c.Circle != "" {
		circle = c.Circle
	}
	return text, circle
}

// Render returns the logo component.
//
// When mounted is false the result is the empty SVG canvas, whatever the
// other inputs. Otherwise the wordmark and accent are drawn, and wrapped in a
// link to "/" when props.AsLink is set.
func Render(mounted bool, th theme.Colors, props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeLogo(&buf, mounted, th, props)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// SVG returns the standalone mounted graphic as a string.
func SVG(th theme.Colors, c *Colors) string {
	var buf bytes.Buffer
	writeGraphic(&buf, th, c)
	return buf.String()
}

func writeLogo(buf *bytes.Buffer, mounted bool, th theme.Colors, props Props) {
	if !mounted {
		writeShellOpen(buf)
		writeShellClose(buf)
		return
	}
	if !props.AsLink {
		writeGraphic(buf, th, props.Colors)
		return
	}
	buf.WriteString(`<a href="/" aria-label="`)
	buf.WriteString(HomeLabel)
	buf.WriteString(`" class="`)
	buf.WriteString(LinkClass)
	buf.WriteString(`">`)
	writeGraphic(buf, th, props.Colors)
	buf.WriteString(`<span class="sr-only">`)
	buf.WriteString(html.EscapeString(DisplayName))
	buf.WriteString(`</span></a>`)
}

func writeGraphic(buf *bytes.Buffer, th theme.Colors, c *Colors) {
	text, circle := Fills(th, c)
	writeShellOpen(buf)
	buf.WriteString(`<path d="`)
	buf.WriteString(WordmarkPath)
	buf.WriteString(`" fill="`)
	buf.WriteString(html.EscapeString(text))
	buf.WriteString(`"></path><circle cx="`)
	buf.WriteString(formatUnit(AccentCircle.CX))
	buf.WriteString(`" cy="`)
	buf.WriteString(formatUnit(AccentCircle.CY))
	buf.WriteString(`" r="`)
	buf.WriteString(formatUnit(AccentCircle.R))
	buf.WriteString(`" fill="`)
	buf.WriteString(html.EscapeString(circle))
	buf.WriteString(`"></circle>`)
	writeShellClose(buf)
}

func writeShellOpen(buf *bytes.Buffer) {
	buf.WriteString(`<svg width="`)
	buf.WriteString(strconv.Itoa(Width))
	buf.WriteString(`" height="`)
	buf.WriteString(strconv.Itoa(Height))
	buf.WriteString(`" viewBox="0 0 `)
	buf.WriteString(strconv.Itoa(Width))
	buf.WriteString(` `)
	buf.WriteString(strconv.Itoa(Height))
	buf.WriteString(`" fill="none" xmlns="http://www.w3.org/2000/svg">`)
}

func writeShellClose(buf *bytes.Buffer) {
	buf.WriteString(`</svg>`)
}

func formatUnit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
