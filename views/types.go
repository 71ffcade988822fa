package views

import (
	"github.com/a-h/templ"

	"github.com/sarmadgardezi/portfolio/seo"
	"github.com/sarmadgardezi/portfolio/theme"
)

// Page carries everything a full-page template needs. Handlers build one per
// request; templates only read it.
type Page struct {
	Meta      seo.Metadata
	BaseURL   string     // site root without trailing slash, for JSON-LD
	Theme     theme.Name // palette the server resolved for this request
	Logo      templ.Component
	LogoSrc   string // partial the client fetches once hydrated
	CSRFToken string
}
