package media

import "math/rand/v2"

// Sample returns up to n items in random order. A nil rng uses the global
// source. items is not modified.
func Sample(rng *rand.Rand, items []Item, n int) []Item {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	out := append([]Item(nil), items...)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out[:min(n, len(out))]
}

// GalleryEntry is one tile of the reward gallery.
type GalleryEntry struct {
	Index    int  `json:"index"`
	Unlocked bool `json:"unlocked"`
	Item     Item `json:"item"`
}

// Gallery marks item i unlocked iff i < totalWins.
func Gallery(items []Item, totalWins int) []GalleryEntry {
	out := make([]GalleryEntry, len(items))
	for i, it := range items {
		out[i] = GalleryEntry{Index: i, Unlocked: i < totalWins, Item: it}
	}
	return out
}
