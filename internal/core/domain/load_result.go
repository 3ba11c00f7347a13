package domain

// LoadState describes the outcome of reading an existing tasks file.
type LoadState int

const (
	// LoadNotFound means the destination does not exist and a fresh collection is built.
	LoadNotFound LoadState = iota
	// LoadInvalid means the destination exists but does not have the expected shape.
	LoadInvalid
	// LoadLoaded means the destination was decoded into a collection.
	LoadLoaded
)

// String returns the lowercase name of the state.
func (s LoadState) String() string {
	switch s {
	case LoadNotFound:
		return "not_found"
	case LoadInvalid:
		return "invalid"
	case LoadLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// LoadResult is the tri-state result of loading a tasks file.
// Collection is set only for LoadLoaded and Reason only for LoadInvalid.
type LoadResult struct {
	State      LoadState
	Collection *TaskCollection
	Reason     error
}

// NotFound returns a result for a missing destination.
func NotFound() LoadResult {
	return LoadResult{State: LoadNotFound}
}

// Invalid returns a result for a destination that failed validation.
func Invalid(reason error) LoadResult {
	return LoadResult{State: LoadInvalid, Reason: reason}
}

// Loaded returns a result wrapping a decoded collection.
func Loaded(c *TaskCollection) LoadResult {
	return LoadResult{State: LoadLoaded, Collection: c}
}
