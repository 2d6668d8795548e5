package domain

// Action is what the updater does with a document.
type Action uint8

const (
	// ActionSkip leaves both the document and the cache untouched.
	ActionSkip Action = iota
	// ActionRewrite rewrites the document header and stores a new cache entry.
	ActionRewrite
	// ActionUpdateCache stores a new cache entry without touching the document.
	ActionUpdateCache
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionRewrite:
		return "rewrite"
	case ActionUpdateCache:
		return "update-cache"
	default:
		return "unknown"
	}
}

// Reason explains why an action was chosen.
type Reason uint8

const (
	// ReasonUnchangedMtime means the cached modification time matched.
	ReasonUnchangedMtime Reason = iota
	// ReasonForced means the caller asked for an unconditional rewrite.
	ReasonForced
	// ReasonContentChanged means the body digest differs from the cached one.
	ReasonContentChanged
	// ReasonFirstSight means the document had no cache entry.
	ReasonFirstSight
	// ReasonMtimeOnly means the file was touched but its body is unchanged.
	ReasonMtimeOnly
)

// String returns a short human description.
func (r Reason) String() string {
	switch r {
	case ReasonUnchangedMtime:
		return "modification time unchanged"
	case ReasonForced:
		return "forced"
	case ReasonContentChanged:
		return "content changed"
	case ReasonFirstSight:
		return "first sight"
	case ReasonMtimeOnly:
		return "modification time changed, content unchanged"
	default:
		return "unknown"
	}
}

// Decision is the outcome of change detection for one document.
type Decision struct {
	Action Action
	Reason Reason
	// Entry is the cache entry to store. It is zero for ActionSkip.
	Entry CacheEntry
	// Prior is the cache entry found before detection, valid when PriorFound is set.
	Prior      CacheEntry
	PriorFound bool
}

// Rewrites reports whether the document header is rewritten.
func (d Decision) Rewrites() bool {
	return d.Action == ActionRewrite
}

// TouchesCache reports whether the cache entry changes.
func (d Decision) TouchesCache() bool {
	return d.Action != ActionSkip
}
