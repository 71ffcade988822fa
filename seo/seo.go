// Package seo builds the search-engine and social metadata rendered into each
// page's <head>.
//
// Build is a total function: every input field is optional and absent values
// stay absent (empty) in the output. The fixed site identity lives in the
// constants below.
package seo

import (
	"slices"
	"sync"

	"github.com/sarmadgardezi/portfolio/baseurl"
)

// Site identity.
const (
	SiteName         = "SarmadGardezi"
	TwitterHandle    = "@sarmadgardezi"
	AuthorFirstName  = "Sarmad"
	AuthorLastName   = "Gardezi"
	AuthorUsername   = "sarmadgardezi"
	TwitterCardLarge = "summary_large_image"
)

// Defaults used for pages that bring no metadata of their own.
const (
	DefaultTitle       = "Sarmad Gardezi – A Full Stack Developer"
	DefaultDescription = "I am a freelance developer who helps individuals and companies build better web applications."
	DefaultImagePath   = "/default-og-image.png"
	DefaultImageWidth  = 1200
	DefaultImageHeight = 630
)

// PageType is the Open Graph object type of a page.
type PageType string

const (
	TypeWebsite PageType = "website"
	TypeArticle PageType = "article"
)

// Article is the Open Graph article metadata.
type Article struct {
	PublishedTime  string   `json:"publishedTime,omitempty"`
	ModifiedTime   string   `json:"modifiedTime,omitempty"`
	ExpirationTime string   `json:"expirationTime,omitempty"`
	Section        string   `json:"section,omitempty"`
	Authors        []string `json:"authors,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Input is the per-page metadata a caller may supply.
type Input struct {
	URL         string
	Title       string
	Description string
	Image       string
	Type        PageType
	Article     *Article
}

// Metadata is the complete metadata handed to the page renderer.
type Metadata struct {
	Canonical   string    `json:"canonical,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Twitter     Twitter   `json:"twitter"`
	OpenGraph   OpenGraph `json:"openGraph"`
}

// Twitter holds the Twitter card fields.
type Twitter struct {
	CardType string `json:"cardType"`
	Handle   string `json:"handle"`
}

// OpenGraph holds the Open Graph fields.
type OpenGraph struct {
	URL         string   `json:"url,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        PageType `json:"type"`
	SiteName    string   `json:"siteName"`
	Images      []Image  `json:"images,omitempty"`
	Article     *Article `json:"article,omitempty"`
	Profile     Profile  `json:"profile"`
}

// Image is an Open Graph image reference.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

// Profile is the author identity attached to every page.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// Author returns the fixed author identity.
func Author() Profile {
	return Profile{
		FirstName: AuthorFirstName,
		LastName:  AuthorLastName,
		Username:  AuthorUsername,
	}
}

// Build completes in with the site constants. The page type defaults to
// website; the article pointer is passed through as given.
func Build(in Input) Metadata {
	pageType := in.Type
	if pageType == "" {
		pageType = TypeWebsite
	}
	m := Metadata{
		Canonical:   in.URL,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Twitter: Twitter{
			CardType: TwitterCardLarge,
			Handle:   TwitterHandle,
		},
		OpenGraph: OpenGraph{
			URL:         in.URL,
			Title:       in.Title,
			Description: in.Description,
			Type:        pageType,
			SiteName:    SiteName,
			Article:     in.Article,
			Profile:     Author(),
		},
	}
	if in.Image != "" {
		m.OpenGraph.Images = []Image{{URL: in.Image}}
	}
	return m
}

// DefaultFor builds the fallback metadata for a site served at baseURL.
func DefaultFor(baseURL string) Metadata {
	m := Build(Input{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		URL:         baseURL,
		Image:       baseURL + DefaultImagePath,
	})
	m.OpenGraph.Images[0].Width = DefaultImageWidth
	m.OpenGraph.Images[0].Height = DefaultImageHeight
	m.OpenGraph.Images[0].Alt = DefaultTitle
	return m
}

var defaultMetadata = sync.OnceValue(func() Metadata {
	return DefaultFor(baseurl.Resolve())
})

// Default returns the process-wide fallback metadata. The base URL is resolved
// on first use. Each call returns its own copy of the image list.
func Default() Metadata {
	m := defaultMetadata()
	m.OpenGraph.Images = slices.Clone(m.OpenGraph.Images)
	return m
}
