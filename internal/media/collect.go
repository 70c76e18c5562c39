// internal/media/collect.go
//
// Collector gathers reward media from the service with partial-failure
// tolerance.
//   - Every fetch is an independent task; a failing task records its error
//     and never cancels the others (all-settled).
//   - Fan-out is bounded by errgroup.SetLimit.
//   - When no image survives, the built-in fallback list is used.

package media

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const fanOut = 4

// Collection is the merged outcome of one Collect call.
type Collection struct {
	Images   []Item   `json:"images"`
	Videos   []Item   `json:"videos"`
	Fallback bool     `json:"fallback"`
	Errors   []string `json:"errors,omitempty"`
}

// outcome is one task's settled result.
type outcome struct {
	name  string
	kind  Kind
	items []Item
	err   error
}

type Collector struct {
	client     *Client
	maxSources int
	fallback   []Item
}

// NewCollector wires a client; maxSources bounds the per-source fetches
// (values below 1 mean 3).
func NewCollector(c *Client, maxSources int, fallback []Item) *Collector {
	if maxSources < 1 {
		maxSources = 3
	}
	return &Collector{client: c, maxSources: maxSources, fallback: fallback}
}

// Collect fetches all images and videos plus per-source images and videos,
// and merges them. It never fails.
func (c *Collector) Collect(ctx context.Context) Collection {
	tasks := []func(context.Context) outcome{
		func(ctx context.Context) outcome {
			items, err := c.client.AllImages(ctx)
			return outcome{name: "images", kind: KindImage, items: items, err: err}
		},
		func(ctx context.Context) outcome {
			items, err := c.client.AllVideos(ctx)
			return outcome{name: "videos", kind: KindVideo, items: items, err: err}
		},
	}
	var results, perSource []outcome
	var g errgroup.Group
	g.Go(func() error { results = settle(ctx, tasks); return nil })
	g.Go(func() error { perSource = c.perSource(ctx, true); return nil })
	_ = g.Wait()

	var col Collection
	seen := make(map[string]bool)
	add := func(dst *[]Item, items []Item) {
		for _, it := range items {
			if !seen[it.URL] {
				seen[it.URL] = true
				*dst = append(*dst, it)
			}
		}
	}
	for _, r := range append(results, perSource...) {
		if r.err != nil {
			col.Errors = append(col.Errors, r.name+": "+r.err.Error())
			continue
		}
		if r.kind == KindVideo {
			add(&col.Videos, r.items)
		} else {
			add(&col.Images, r.items)
		}
	}

	if len(col.Images) == 0 {
		log.Warn().Strs("errors", col.Errors).Msg("media: no images from service, using fallback")
		col.Images = append([]Item(nil), c.fallback...)
		col.Fallback = true
	}
	return col
}

// SourceImages lists sources and fetches images from the first maxSources
// of them. An empty result means nothing could be fetched.
func (c *Collector) SourceImages(ctx context.Context) []Item {
	var out []Item
	for _, r := range c.perSource(ctx, false) {
		if r.err != nil {
			log.Warn().Err(r.err).Str("task", r.name).Msg("media: fetch failed")
			continue
		}
		out = append(out, r.items...)
	}
	return out
}

// perSource fetches images, and videos when asked, from the first
// maxSources sources.
func (c *Collector) perSource(ctx context.Context, videos bool) []outcome {
	sources, err := c.client.Sources(ctx)
	if err != nil {
		return []outcome{{name: "sources", err: err}}
	}
	if len(sources) > c.maxSources {
		sources = sources[:c.maxSources]
	}
	tasks := make([]func(context.Context) outcome, 0, 2*len(sources))
	for _, name := range sources {
		tasks = append(tasks, func(ctx context.Context) outcome {
			items, err := c.client.Images(ctx, name)
			return outcome{name: "source " + name, kind: KindImage, items: items, err: err}
		})
		if videos {
			tasks = append(tasks, func(ctx context.Context) outcome {
				items, err := c.client.Videos(ctx, name)
				return outcome{name: "source " + name + " videos", kind: KindVideo, items: items, err: err}
			})
		}
	}
	return settle(ctx, tasks)
}

// settle runs every task with bounded concurrency and returns their outcomes
// in task order. Tasks report failure through outcome.err, so the group
// context is never cancelled by a sibling.
func settle(ctx context.Context, tasks []func(context.Context) outcome) []outcome {
	out := make([]outcome, len(tasks))
	var g errgroup.Group
	g.SetLimit(fanOut)
	for i, task := range tasks {
		g.Go(func() error {
			out[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
