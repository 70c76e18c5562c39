package media

import (
	"encoding/json"
	"sort"
)

// decodeItems extracts items of kind from a media service response.
// Accepted shapes, tried in order:
//
//	{"sources": [{"images": [...]}, ...]}
//	{"images": [...]}             (or "videos")
//	{"<source name>": [...], ...}
//
// Anything else yields no items.
func decodeItems(data []byte, kind Kind) []Item {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil
	}
	field := string(kind) + "s"

	if raw, ok := top["sources"]; ok {
		var groups []map[string]json.RawMessage
		if err := json.Unmarshal(raw, &groups); err == nil {
			var out []Item
			for _, g := range groups {
				var name string
				_ = json.Unmarshal(g["source"], &name)
				out = append(out, decodeList(g[field], kind, name)...)
			}
			return out
		}
	}

	if raw, ok := top[field]; ok {
		var name string
		_ = json.Unmarshal(top["source"], &name)
		return decodeList(raw, kind, name)
	}

	names := make([]string, 0, len(top))
	for k := range top {
		if k != "sources" && k != "images" && k != "videos" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	var out []Item
	for _, name := range names {
		out = append(out, decodeList(top[name], kind, name)...)
	}
	return out
}

func decodeList(raw json.RawMessage, kind Kind, source string) []Item {
	if len(raw) == 0 {
		return nil
	}
	var list []rawItem
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	out := make([]Item, 0, len(list))
	for _, r := range list {
		if it, ok := r.clean(kind, source); ok {
			out = append(out, it)
		}
	}
	return out
}

// decodeSources reads the /sources listing: {"sources": ["name", ...]}.
func decodeSources(data []byte) []string {
	var doc struct {
		Sources []string `json:"sources"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	out := make([]string, 0, len(doc.Sources))
	for _, s := range doc.Sources {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
