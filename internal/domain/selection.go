package domain

import "slices"

// SelectionState is what the user typed into the search box and which tag
// toggles are on. An empty tag set means no tag filter.
type SelectionState struct {
	Search string        `json:"search"`
	Tags   []CategoryTag `json:"tags"`
}

// HasTag reports whether tag is selected.
func (s SelectionState) HasTag(tag CategoryTag) bool {
	return slices.Contains(s.Tags, tag)
}

// Toggle returns a copy with tag added when absent and removed when present.
// Selection order is kept.
func (s SelectionState) Toggle(tag CategoryTag) SelectionState {
	next := SelectionState{Search: s.Search}
	if s.HasTag(tag) {
		next.Tags = slices.DeleteFunc(slices.Clone(s.Tags), func(t CategoryTag) bool { return t == tag })
		return next
	}
	next.Tags = append(slices.Clone(s.Tags), tag)
	return next
}

// Empty reports whether the selection filters nothing.
func (s SelectionState) Empty() bool {
	return s.Search == "" && len(s.Tags) == 0
}

// Clone returns a copy that shares no memory with s.
func (s SelectionState) Clone() SelectionState {
	return SelectionState{Search: s.Search, Tags: slices.Clone(s.Tags)}
}
