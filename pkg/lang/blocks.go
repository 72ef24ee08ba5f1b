package lang

// BlockKind tags a nesting context tracked by indentation. Key classification
// depends on which blocks are active at the current indent.
type BlockKind int

const (
	BlockSchemaFields BlockKind = iota
	BlockSchemaField
	BlockBridge
	BlockAccess
	BlockRoutes
	BlockUIElement

	blockKindCount
)

// String returns the block kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockSchemaFields:
		return "schemaFields"
	case BlockSchemaField:
		return "schemaField"
	case BlockBridge:
		return "bridge"
	case BlockAccess:
		return "access"
	case BlockRoutes:
		return "routes"
	case BlockUIElement:
		return "uiElement"
	}
	return "unknown"
}

type blockEntry struct {
	indent int
	line   int
	data   any
}

// Tracker records which blocks are open at which indentation. One tracker is
// created per tokenize call and mutated line by line; it is not safe for
// concurrent use.
type Tracker struct {
	active [blockKindCount][]blockEntry
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Enter pushes a new block entry. Lines belong to the block while their
// indent is strictly greater than entryIndent.
func (t *Tracker) Enter(kind BlockKind, indent, line int) {
	t.active[kind] = append(t.active[kind], blockEntry{indent: indent, line: line})
}

// EnterSingle replaces any open entries of the kind with a single new one.
// Used for block kinds where only the innermost instance is meaningful.
func (t *Tracker) EnterSingle(kind BlockKind, indent, line int) {
	t.active[kind] = t.active[kind][:0]
	t.active[kind] = append(t.active[kind], blockEntry{indent: indent, line: line})
}

// IsInside reports whether a line at the given indent is inside an open block
// of the kind.
func (t *Tracker) IsInside(kind BlockKind, indent int) bool {
	entries := t.active[kind]
	if len(entries) == 0 {
		return false
	}
	return indent > entries[len(entries)-1].indent
}

// IsFirstLevel reports whether the indent is exactly one level below the
// innermost entry of the kind.
func (t *Tracker) IsFirstLevel(kind BlockKind, indent int) bool {
	entries := t.active[kind]
	if len(entries) == 0 {
		return false
	}
	return entries[len(entries)-1].indent+IndentUnit == indent
}

// IsAtDepth reports whether the indent is at least minDepth levels below the
// innermost entry of the kind.
func (t *Tracker) IsAtDepth(kind BlockKind, indent, minDepth int) bool {
	entries := t.active[kind]
	if len(entries) == 0 {
		return false
	}
	return (indent-entries[len(entries)-1].indent)/IndentUnit >= minDepth
}

// SetData attaches opaque data to the innermost entry of the kind.
func (t *Tracker) SetData(kind BlockKind, data any) {
	entries := t.active[kind]
	if len(entries) == 0 {
		return
	}
	entries[len(entries)-1].data = data
}

// Data returns the opaque data of the innermost entry of the kind.
func (t *Tracker) Data(kind BlockKind) any {
	entries := t.active[kind]
	if len(entries) == 0 {
		return nil
	}
	return entries[len(entries)-1].data
}

// EntryLine returns the line where the innermost entry of the kind was
// opened, or -1 when the kind is not open.
func (t *Tracker) EntryLine(kind BlockKind) int {
	entries := t.active[kind]
	if len(entries) == 0 {
		return -1
	}
	return entries[len(entries)-1].line
}

// CloseAt pops every entry no longer containing a line at the given indent.
// A block entered at indent e contains lines with indent > e only.
func (t *Tracker) CloseAt(indent int) {
	for kind := range t.active {
		entries := t.active[kind]
		for len(entries) > 0 && entries[len(entries)-1].indent >= indent {
			entries = entries[:len(entries)-1]
		}
		t.active[kind] = entries
	}
}

// ClearAll drops every open block. Called on return to root indent.
func (t *Tracker) ClearAll() {
	for kind := range t.active {
		t.active[kind] = t.active[kind][:0]
	}
}
