package domain

// MergeMode tells how a task record ended up in its collection.
type MergeMode int

const (
	// MergeCreated means a new collection was built around the record.
	MergeCreated MergeMode = iota
	// MergeReplaced means an entry with the same label was replaced in place.
	MergeReplaced
	// MergeAppended means the record was added after the existing entries.
	MergeAppended
)

// String returns the lowercase name of the mode.
func (m MergeMode) String() string {
	switch m {
	case MergeCreated:
		return "created"
	case MergeReplaced:
		return "replaced"
	case MergeAppended:
		return "appended"
	default:
		return "unknown"
	}
}

// MergeOutcome describes where a record was placed.
type MergeOutcome struct {
	Mode  MergeMode
	Index int
}
