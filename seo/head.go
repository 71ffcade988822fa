package seo

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Head renders m as the metadata tags of a document head. Tags whose value is
// absent are left out.
func Head(m Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeHead(&buf, m)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeHead(buf *bytes.Buffer, m Metadata) {
	if m.Title != "" {
		buf.WriteString("<title>")
		buf.WriteString(html.EscapeString(m.Title))
		buf.WriteString("</title>")
	}
	nameTag(buf, "description", m.Description)
	if m.Canonical != "" {
		buf.WriteString(`<link rel="canonical" href="`)
		buf.WriteString(html.EscapeString(m.Canonical))
		buf.WriteString(`"/>`)
	}
	nameTag(buf, "author", strings.TrimSpace(m.OpenGraph.Profile.FirstName+" "+m.OpenGraph.Profile.LastName))

	nameTag(buf, "twitter:card", m.Twitter.CardType)
	nameTag(buf, "twitter:creator", m.Twitter.Handle)

	og := m.OpenGraph
	propertyTag(buf, "og:url", og.URL)
	propertyTag(buf, "og:type", string(og.Type))
	propertyTag(buf, "og:title", og.Title)
	propertyTag(buf, "og:description", og.Description)
	propertyTag(buf, "og:site_name", og.SiteName)
	for _, img := range og.Images {
		propertyTag(buf, "og:image", img.URL)
		if img.Width > 0 {
			propertyTag(buf, "og:image:width", strconv.Itoa(img.Width))
		}
		if img.Height > 0 {
			propertyTag(buf, "og:image:height", strconv.Itoa(img.Height))
		}
		propertyTag(buf, "og:image:alt", img.Alt)
	}
	if og.Type == TypeArticle && og.Article != nil {
		a := og.Article
		propertyTag(buf, "article:published_time", a.PublishedTime)
		propertyTag(buf, "article:modified_time", a.ModifiedTime)
		propertyTag(buf, "article:expiration_time", a.ExpirationTime)
		propertyTag(buf, "article:section", a.Section)
		for _, author := range a.Authors {
			propertyTag(buf, "article:author", author)
		}
		for _, tag := range a.Tags {
			propertyTag(buf, "article:tag", tag)
		}
	}
}

func nameTag(buf *bytes.Buffer, name, content string) {
	if content == "" {
		return
	}
	buf.WriteString(`<meta name="`)
	buf.WriteString(name)
	buf.WriteString(`" content="`)
	buf.WriteString(html.EscapeString(content))
	buf.WriteString(`"/>`)
}

func propertyTag(buf *bytes.Buffer, property, content string) {
	if content == "" {
		return
	}
	buf.WriteString(`<meta property="`)
	buf.WriteString(property)
	buf.WriteString(`" content="`)
	buf.WriteString(html.EscapeString(content))
	buf.WriteString(`"/>`)
}
