package orders

import "sort"

// Selection is an immutable set of selected order identifiers, always scoped
// to the rows currently visible under the active filter. Every transition
// returns a new Selection; the receiver is never mutated.
type Selection map[int64]struct{}

// NewSelection returns an empty selection
func NewSelection() Selection {
	return Selection{}
}

// Has reports whether id is selected
func (s Selection) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Count returns the number of selected orders
func (s Selection) Count() int {
	return len(s)
}

// IDs returns the selected identifiers in ascending order
func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Toggle flips the selection state of a single id
func (s Selection) Toggle(id int64) Selection {
	next := s.clone()
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// ToggleAll flips between "nothing selected" and "all currently filtered
// rows selected". When every filtered id is already selected the result is
// empty; otherwise it is exactly the filtered set, discarding any ids that
// are no longer visible.
func (s Selection) ToggleAll(filtered []int64) Selection {
	if len(filtered) > 0 && s.containsAll(filtered) {
		return NewSelection()
	}
	next := make(Selection, len(filtered))
	for _, id := range filtered {
		next[id] = struct{}{}
	}
	return next
}

// Restrict drops any selected id that is not in the filtered set, keeping
// the selection scoped to visible rows after a filter change
func (s Selection) Restrict(filtered []int64) Selection {
	visible := make(map[int64]struct{}, len(filtered))
	for _, id := range filtered {
		visible[id] = struct{}{}
	}
	next := make(Selection, len(s))
	for id := range s {
		if _, ok := visible[id]; ok {
			next[id] = struct{}{}
		}
	}
	return next
}

func (s Selection) containsAll(ids []int64) bool {
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

func (s Selection) clone() Selection {
	next := make(Selection, len(s))
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}
