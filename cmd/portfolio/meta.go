package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarmadgardezi/portfolio/seo"
)

type metaOptions struct {
	url         string
	title       string
	description string
	image       string
	pageType    string
	published   string
	section     string
	tags        []string
}

// page reports whether any page-level flag was given.
func (o metaOptions) page() bool {
	return o.url != "" || o.title != "" || o.description != "" || o.image != "" || o.pageType != ""
}

func (o metaOptions) article() bool {
	return o.published != "" || o.section != "" || len(o.tags) > 0
}

var metaFlags metaOptions

var errArticleFlags = errors.New("--published, --section and --tag require --type article")

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Print page metadata as JSON",
	Long: `meta prints the site-wide default metadata, or the metadata built for a single
page when any of --url, --title, --description, --image or --type is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := buildMeta(metaFlags)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	},
}

func buildMeta(o metaOptions) (seo.Metadata, error) {
	if !o.page() {
		if o.article() {
			return seo.Metadata{}, errArticleFlags
		}
		if appConfig.URL != "" {
			return seo.DefaultFor(appConfig.URL), nil
		}
		return seo.Default(), nil
	}

	in := seo.Input{
		URL:         o.url,
		Title:       o.title,
		Description: o.description,
		Image:       o.image,
	}
	switch seo.PageType(o.pageType) {
	case "", seo.TypeWebsite:
		if o.article() {
			return seo.Metadata{}, errArticleFlags
		}
		in.Type = seo.PageType(o.pageType)
	case seo.TypeArticle:
		in.Type = seo.TypeArticle
		in.Article = &seo.Article{
			PublishedTime: o.published,
			Section:       o.section,
			Tags:          o.tags,
		}
	default:
		return seo.Metadata{}, fmt.Errorf("unknown page type %q (want %s or %s)", o.pageType, seo.TypeWebsite, seo.TypeArticle)
	}
	return seo.Build(in), nil
}

func init() {
	f := metaCmd.Flags()
	f.StringVar(&metaFlags.url, "url", "", "canonical page URL")
	f.StringVar(&metaFlags.title, "title", "", "page title")
	f.StringVar(&metaFlags.description, "description", "", "page description")
	f.StringVar(&metaFlags.image, "image", "", "preview image URL")
	f.StringVar(&metaFlags.pageType, "type", "", "website or article")
	f.StringVar(&metaFlags.published, "published", "", "article publish time (RFC 3339)")
	f.StringVar(&metaFlags.section, "section", "", "article section")
	f.StringSliceVar(&metaFlags.tags, "tag", nil, "article tag (repeatable)")
}
