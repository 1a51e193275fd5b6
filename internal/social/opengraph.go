package social

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PagePreview is the metadata extracted from a shared link, used to
// seed comment topics and hashtags.
type PagePreview struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
}

// Previewer fetches a URL and extracts its OpenGraph metadata
type Previewer struct {
	fetcher *Fetcher
}

// NewPreviewer creates a previewer backed by the given fetcher
func NewPreviewer(fetcher *Fetcher) *Previewer {
	return &Previewer{fetcher: fetcher}
}

// Preview fetches the page and extracts its metadata
func (p *Previewer) Preview(ctx context.Context, rawURL string) (*PagePreview, error) {
	body, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	preview, err := ParsePreview(body)
	if err != nil {
		return nil, err
	}
	preview.URL = rawURL
	return preview, nil
}

// ParsePreview extracts OpenGraph tags from an HTML document, falling
// back to <title> and the meta description when og tags are absent.
func ParsePreview(body []byte) (*PagePreview, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}

	preview := &PagePreview{}
	var titleTag string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				property := attr(n, "property")
				if property == "" {
					property = attr(n, "name")
				}
				content := attr(n, "content")

				switch property {
				case "og:title":
					preview.Title = content
				case "og:description":
					preview.Description = content
				case "og:image":
					preview.Image = content
				case "og:site_name":
					preview.SiteName = content
				case "description":
					if preview.Description == "" {
						preview.Description = content
					}
				}

			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					titleTag = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if preview.Title == "" {
		preview.Title = titleTag
	}
	return preview, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
