package game

// KeyboardHints maps a letter to the best verdict seen for it so far.
type KeyboardHints map[string]Verdict

// MergeHint returns the verdict a letter should show after a new observation.
// Hints only move up (absent < present < correct); a missing hint takes any verdict.
func MergeHint(current, next Verdict) Verdict {
	if next.Rank() > current.Rank() {
		return next
	}
	return current
}

// Apply folds one guess result into the hints, letter by letter.
func (h KeyboardHints) Apply(r GuessResult) {
	for _, l := range r {
		h[l.Letter] = MergeHint(h[l.Letter], l.Verdict)
	}
}
