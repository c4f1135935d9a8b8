// Package htmlconv wraps the html-to-markdown converter with the per-tag
// overrides the course renderer needs: image sources are rewritten to the
// sibling images/ directory and YouTube iframes become video-embed lines.
package htmlconv

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"github.com/Traeelyn/xml-html-to-markdown/internal/fileutil"
)

// Converter converts free-form HTML prose to Markdown.
type Converter struct {
	conv *md.Converter
}

// New creates a Converter with the course-specific tag overrides installed.
func New() *Converter {
	conv := md.NewConverter("", true, nil)
	conv.AddRules(
		md.Rule{
			Filter: []string{"img"},
			Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
				src := selec.AttrOr("src", "")
				if src == "" {
					return md.String("")
				}
				alt := selec.AttrOr("alt", "")
				if alt == "" {
					alt = fileutil.Stem(src)
				}
				// Hotlinked images stay where they are; only export-local
				// sources move to the sibling images/ directory.
				if fileutil.IsURL(src) {
					return md.String(fmt.Sprintf("![%s](%s)", alt, src))
				}
				return md.String(fmt.Sprintf("![%s](../images/%s)", alt, path.Base(src)))
			},
		},
		md.Rule{
			Filter: []string{"iframe"},
			Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
				id := YouTubeID(selec.AttrOr("src", ""))
				if id == "" {
					return md.String("")
				}
				title := selec.AttrOr("title", "video")
				return md.String(fmt.Sprintf("!?[%s](https://www.youtube.com/watch?v=%s)", title, id))
			},
		},
	)
	return &Converter{conv: conv}
}

// Convert turns an HTML fragment or document into Markdown. Conversion
// failures degrade to a visible banner rather than an error, matching the
// soft-failure policy of the rest of the pipeline.
func (c *Converter) Convert(html string) string {
	html = strings.TrimSpace(html)
	if html == "" {
		return ""
	}
	out, err := c.conv.ConvertString(html)
	if err != nil {
		return "> **Unsupported content: html fragment omitted**"
	}
	return strings.TrimSpace(out)
}

// YouTubeID extracts a video identifier from embed, watch, and short URLs.
// Returns "" for anything that is not a YouTube URL.
func YouTubeID(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "youtube-nocookie.com":
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			return strings.Trim(rest, "/")
		}
		return u.Query().Get("v")
	case "youtu.be":
		return strings.Trim(u.Path, "/")
	}
	return ""
}
