package portfolio

import (
	"github.com/a-h/templ"

	"github.com/sarmadgardezi/portfolio/views"
)

// ViewFuncs holds the page templates the handlers render. Defaults come from
// the views package; override them with WithViews.
type ViewFuncs struct {
	Home        func(p views.Page) templ.Component
	NotFound    func(p views.Page) templ.Component
	ServerError func(p views.Page) templ.Component
}

func defaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}
