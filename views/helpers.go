package views

import (
	"bytes"
	"html"

	"github.com/sarmadgardezi/portfolio/seo"
	"github.com/sarmadgardezi/portfolio/theme"
)

func attr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(html.EscapeString(value))
	buf.WriteString(`"`)
}

// writeJSONLD embeds a structured-data block. json.Marshal already escapes
// '<' and '>', so the payload cannot close the script element.
func writeJSONLD(buf *bytes.Buffer, payload string) {
	buf.WriteString(`<script type="application/ld+json">`)
	buf.WriteString(payload)
	buf.WriteString(`</script>`)
}

func writeThemeToggle(buf *bytes.Buffer, current theme.Name, csrfToken string) {
	buf.WriteString(`<form method="post" action="/theme/" class="theme-toggle" data-theme-toggle>`)
	buf.WriteString(`<input type="hidden" name="_csrf"`)
	attr(buf, "value", csrfToken)
	buf.WriteString(`/>`)
	for _, name := range theme.Names() {
		buf.WriteString(`<button type="submit" name="theme"`)
		attr(buf, "value", string(name))
		if name == current {
			buf.WriteString(` aria-pressed="true"`)
		} else {
			buf.WriteString(` aria-pressed="false"`)
		}
		buf.WriteString(`>`)
		buf.WriteString(html.EscapeString(label(name)))
		buf.WriteString(`</button>`)
	}
	buf.WriteString(`</form>`)
}

func label(name theme.Name) string {
	switch name {
	case theme.NameDark:
		return "Dark"
	case theme.NameLight:
		return "Light"
	}
	return string(name)
}

// displayName is the author's full name for visible copy.
func displayName() string {
	return seo.AuthorFirstName + " " + seo.AuthorLastName
}
