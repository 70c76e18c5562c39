// internal/media/item.go
//
// Reward media items and the built-in fallback list.

package media

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/sachgames/assets"
)

// Kind separates still images from clips.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Item is one reward picture or clip.
type Item struct {
	URL          string  `json:"url" yaml:"url"`
	Title        string  `json:"title" yaml:"title"`
	Source       string  `json:"source" yaml:"source"`
	SourceURL    string  `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty" yaml:"thumbnailUrl,omitempty"`
	Author       string  `json:"author,omitempty" yaml:"author,omitempty"`
	Duration     float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Kind         Kind    `json:"kind" yaml:"kind,omitempty"`
}

// rawItem is the wire form used by the media service.
type rawItem struct {
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	Source       string  `json:"source"`
	SourceURL    string  `json:"source_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Author       string  `json:"author"`
	Duration     float64 `json:"duration"`
	ClipURL      string  `json:"clip_url"`
}

// strict strips every tag; text from the media service is shown verbatim.
var strict = bluemonday.StrictPolicy()

// clean converts a wire item, dropping it when it has no usable http(s) URL.
func (r rawItem) clean(kind Kind, defaultSource string) (Item, bool) {
	link := r.URL
	if kind == KindVideo && r.ClipURL != "" {
		link = r.ClipURL
	}
	if !httpURL(link) {
		return Item{}, false
	}
	it := Item{
		URL:      link,
		Title:    sanitize(r.Title),
		Source:   sanitize(r.Source),
		Author:   sanitize(r.Author),
		Duration: max(r.Duration, 0),
		Kind:     kind,
	}
	if it.Source == "" {
		it.Source = sanitize(defaultSource)
	}
	if httpURL(r.SourceURL) {
		it.SourceURL = r.SourceURL
	}
	if httpURL(r.ThumbnailURL) {
		it.ThumbnailURL = r.ThumbnailURL
	}
	return it, true
}

// sanitize strips markup and returns plain text.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

func httpURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type fallbackDoc struct {
	Images []Item `yaml:"images"`
}

// LoadFallback decodes a fallback media document.
func LoadFallback(data []byte) ([]Item, error) {
	var doc fallbackDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fallback media: %w", err)
	}
	out := make([]Item, 0, len(doc.Images))
	for _, it := range doc.Images {
		if !httpURL(it.URL) {
			continue
		}
		if it.Kind == "" {
			it.Kind = KindImage
		}
		out = append(out, it)
	}
	return out, nil
}

// Fallback returns the embedded fallback images. It panics if the embedded
// document is malformed, which a test guards against.
func Fallback() []Item {
	data, err := assets.FallbackMedia()
	if err != nil {
		panic(err)
	}
	items, err := LoadFallback(data)
	if err != nil {
		panic(err)
	}
	return items
}
