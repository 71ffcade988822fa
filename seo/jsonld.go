package seo

import (
	"encoding/json"
	"strings"
)

// PersonJSONLD returns a schema.org Person block for the site author.
func PersonJSONLD(baseURL string) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Person",
		"name":          AuthorFirstName + " " + AuthorLastName,
		"givenName":     AuthorFirstName,
		"familyName":    AuthorLastName,
		"alternateName": AuthorUsername,
		"sameAs":        []string{"https://twitter.com/" + strings.TrimPrefix(TwitterHandle, "@")},
	}
	if baseURL != "" {
		data["url"] = baseURL
	}
	return marshalJSONLD(data)
}

// WebsiteJSONLD returns a schema.org WebSite block for the site at baseURL.
func WebsiteJSONLD(baseURL string) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        SiteName,
		"description": DefaultDescription,
		"author": map[string]string{
			"@type": "Person",
			"name":  AuthorFirstName + " " + AuthorLastName,
		},
	}
	if baseURL != "" {
		data["url"] = baseURL + "/"
	}
	return marshalJSONLD(data)
}

func marshalJSONLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
