package domain

// KindOption is the object kind recorded for configuration options. The
// registry only ever holds this kind today; the field exists so hosts that
// fold several object types into one domain can filter during resolution.
const KindOption = "option"

// Record is the unit stored in the registry, one per declared option.
type Record struct {
	// Key is the option identifier, unique within a (scope, key) pair but
	// not globally unique.
	Key string
	// DisplayKey is the name rendered in listings. It matches Key for
	// directive-declared options.
	DisplayKey string
	// Kind tags the object type; always KindOption for directive output.
	Kind string
	// Document identifies the source document where the option was declared.
	Document string
	// Anchor is scope + ":" + key, the cross-reference target and in-page
	// link fragment. Anchors are unique within a single document only;
	// duplicates across documents are tolerated (resolution picks the first
	// match in insertion order).
	Anchor string
	// Priority orders search results in hosts that rank matches.
	Priority int
}

// Link is a resolved cross-reference pointing at a declared option.
type Link struct {
	// Document is the target's declaring document.
	Document string
	// Anchor is the in-page fragment inside Document.
	Anchor string
	// Text is the link text, the target option's key.
	Text string
}

// Descriptor reports the registration metadata the extension exposes to a
// documentation host: the domain name grouping the directive, role, and
// index, plus the parallel build modes the extension supports.
type Descriptor struct {
	Name          string
	Label         string
	DirectiveName string
	RoleName      string
	IndexName     string
	ParallelRead  bool
	ParallelWrite bool
}
