package registry

// Tag identifies which legacy table a source id belongs to.
type Tag string

const (
	TagEmployee    Tag = "emp"
	TagMember      Tag = "member"
	TagProduct     Tag = "prod"
	TagTransaction Tag = "txn"
)

type key struct {
	tag Tag
	id  int64
}

// Registry maps legacy auto-increment keys to the UUIDs minted for them
// during this run. It lives only in process memory; there is no removal
// and no persistence across runs.
type Registry struct {
	entries map[key]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[key]string)}
}

// Put records the target identifier minted for (tag, sourceID).
func (r *Registry) Put(tag Tag, sourceID int64, targetID string) {
	r.entries[key{tag, sourceID}] = targetID
}

// Get returns the target identifier for (tag, sourceID). The second
// return value distinguishes a migrated row from an unknown one; callers
// must never treat the zero value as a valid identifier.
func (r *Registry) Get(tag Tag, sourceID int64) (string, bool) {
	id, ok := r.entries[key{tag, sourceID}]
	return id, ok
}

// Count returns the number of mappings recorded under a tag.
func (r *Registry) Count(tag Tag) int {
	n := 0
	for k := range r.entries {
		if k.tag == tag {
			n++
		}
	}
	return n
}

// Len returns the total number of mappings.
func (r *Registry) Len() int {
	return len(r.entries)
}
