package domain

import "strings"

// DefaultScope partitions option keys when a declaration or reference omits
// an explicit scope.
const DefaultScope = "server"

// Registry accumulates option records for one build session. It is an
// explicit object constructed fresh per build, never a process-wide
// singleton: parallel builds give each worker its own instance and
// recombine them through Merge before index generation and resolution.
//
// Registry is not safe for concurrent mutation; the merge phase is the sole
// synchronization point by design.
type Registry struct {
	defaultScope string
	records      []Record
}

// NewRegistry constructs an empty registry. An empty defaultScope falls back
// to DefaultScope.
func NewRegistry(defaultScope string) *Registry {
	scope := strings.TrimSpace(defaultScope)
	if scope == "" {
		scope = DefaultScope
	}
	return &Registry{defaultScope: scope}
}

// DefaultScope returns the scope applied when declarations omit one.
func (r *Registry) DefaultScope() string {
	return r.defaultScope
}

// Add appends a record for (key, scope) declared in document. The scope
// defaults when empty. No uniqueness check is performed at insert time;
// duplicate anchors across documents are a known ambiguity surfaced later by
// the index and tolerated by resolution (first match wins).
func (r *Registry) Add(key, scope, document string) Record {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		scope = r.defaultScope
	}

	record := Record{
		Key:        key,
		DisplayKey: key,
		Kind:       KindOption,
		Document:   document,
		Anchor:     scope + ":" + key,
	}
	r.records = append(r.records, record)
	return record
}

// Objects returns every record in insertion order. The slice is a copy;
// callers can reorder or filter it freely.
func (r *Registry) Objects() []Record {
	if len(r.records) == 0 {
		return nil
	}
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len reports the number of stored records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Merge appends every record from other that is not already present, by
// full record equality. Workers build partial registries independently
// during a parallel read phase; Merge recombines them and stays idempotent
// so re-merging the same registry is a no-op.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for _, record := range other.records {
		if !r.contains(record) {
			r.records = append(r.records, record)
		}
	}
}

func (r *Registry) contains(record Record) bool {
	for _, existing := range r.records {
		if existing == record {
			return true
		}
	}
	return false
}
