package board

// Tag annotates a square for presentation only.
type Tag int8

const (
	TagNone Tag = iota
	TagReachable
	TagLastMove
	TagSelected
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagReachable:
		return "Reachable"
	case TagLastMove:
		return "LastMove"
	case TagSelected:
		return "Selected"
	}
	return "Unknown"
}

// Highlights holds one tag per square, indexed in display space: when the
// board is rotated the map is stored rotated too.
type Highlights [Squares]Tag

func (h *Highlights) Clear() {
	*h = Highlights{}
}

// Mirror reverses the map in place. Mirroring twice is a no-op.
func (h *Highlights) Mirror() {
	for i, j := 0, Squares-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
}

// Count returns the number of squares carrying tag.
func (h Highlights) Count(tag Tag) int {
	n := 0
	for _, t := range h {
		if t == tag {
			n++
		}
	}
	return n
}

// Selection derives the map shown while origin is selected and the
// interactive side is choosing among reachable destinations.
func Selection(origin Square, reachable []Square, rotated bool) Highlights {
	var h Highlights
	for _, sq := range reachable {
		if sq.Valid() {
			h[sq] = TagReachable
		}
	}
	if origin.Valid() {
		h[origin] = TagSelected
	}
	if rotated {
		h.Mirror()
	}
	return h
}

// LastMove derives the map shown after a completed half-turn.
func LastMove(from, to Square, rotated bool) Highlights {
	var h Highlights
	if from.Valid() {
		h[from] = TagLastMove
	}
	if to.Valid() {
		h[to] = TagLastMove
	}
	if rotated {
		h.Mirror()
	}
	return h
}

// Tracker owns the highlight map, the display orientation and the
// selected origin of the interactive side.
type Tracker struct {
	highlights Highlights
	rotated    bool
	selected   Square
}

func NewTracker(rotated bool) *Tracker {
	return &Tracker{
		rotated:  rotated,
		selected: NoSquare,
	}
}

func (t *Tracker) Highlights() Highlights {
	return t.highlights
}

func (t *Tracker) Rotated() bool {
	return t.rotated
}

// Selected returns the selected origin, if any.
func (t *Tracker) Selected() (Square, bool) {
	return t.selected, t.selected != NoSquare
}

// Rotate toggles the display orientation and mirrors the existing tags so
// they stay on the squares they were computed for.
func (t *Tracker) Rotate() {
	t.rotated = !t.rotated
	t.highlights.Mirror()
}

// Select records origin and tags it along with its reachable destinations.
func (t *Tracker) Select(origin Square, reachable []Square) {
	t.selected = origin
	t.highlights = Selection(origin, reachable, t.rotated)
}

// Complete tags a finished move and drops the selection.
func (t *Tracker) Complete(from, to Square) {
	t.selected = NoSquare
	t.highlights = LastMove(from, to, t.rotated)
}

// Reset clears every tag and the selection.
func (t *Tracker) Reset() {
	t.selected = NoSquare
	t.highlights.Clear()
}
