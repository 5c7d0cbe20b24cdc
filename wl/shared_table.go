package wl

// SharedTable assigns a fresh, dense uint64 id to each distinct
// refinement key on first sight — spec.md §4.4(b)'s "shared integer-
// assigning table". Ids are assigned in first-seen order starting at 1;
// 0 is reserved so callers can use it as an "unassigned" sentinel if
// needed.
//
// A SharedTable is local to one equivalence test, or to one bucket's
// worth of tests if the caller chooses to reuse it for speed (spec.md §9
// "Shared-table reuse across reactions"). Reset clears the table's id
// assignments — callers MUST call Reset between unrelated buckets, since
// color ids are not stable across populations (spec.md §5).
type SharedTable struct {
	next uint64
	ids  map[string]uint64
}

// NewSharedTable returns an empty SharedTable.
func NewSharedTable() *SharedTable {
	return &SharedTable{ids: make(map[string]uint64), next: 1}
}

// IDFor returns the dense id for key, assigning a new one if key has not
// been seen by this table before.
func (t *SharedTable) IDFor(key string) uint64 {
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := t.next
	t.ids[key] = id
	t.next++
	return id
}

// Reset clears every assignment, as if the table were newly constructed.
func (t *SharedTable) Reset() {
	t.ids = make(map[string]uint64)
	t.next = 1
}

// Len reports how many distinct keys the table has assigned ids to.
func (t *SharedTable) Len() int { return len(t.ids) }
